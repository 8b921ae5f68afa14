// Package tcellhost runs a Pong session directly on a tcell screen, as an
// alternative to the Bubble Tea host.
package tcellhost

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/session"
)

// footerHeight is the number of rows below the playfield.
const footerHeight = 1

var namedKeys = map[tcell.Key]platform.Key{
	tcell.KeyEscape:     platform.KeyEscape,
	tcell.KeyEnter:      platform.KeyReturn,
	tcell.KeyTab:        platform.KeyTab,
	tcell.KeyBackspace:  platform.KeyBack,
	tcell.KeyBackspace2: platform.KeyBack,
	tcell.KeyDelete:     platform.KeyDelete,
	tcell.KeyInsert:     platform.KeyInsert,
	tcell.KeyHome:       platform.KeyHome,
	tcell.KeyEnd:        platform.KeyEnd,
	tcell.KeyPgUp:       platform.KeyPageUp,
	tcell.KeyPgDn:       platform.KeyPageDown,
	tcell.KeyUp:         platform.KeyUp,
	tcell.KeyDown:       platform.KeyDown,
	tcell.KeyLeft:       platform.KeyLeft,
	tcell.KeyRight:      platform.KeyRight,
	tcell.KeyF1:         platform.KeyF1,
	tcell.KeyF2:         platform.KeyF2,
	tcell.KeyF3:         platform.KeyF3,
	tcell.KeyF4:         platform.KeyF4,
	tcell.KeyF5:         platform.KeyF5,
	tcell.KeyF6:         platform.KeyF6,
	tcell.KeyF7:         platform.KeyF7,
	tcell.KeyF8:         platform.KeyF8,
	tcell.KeyF9:         platform.KeyF9,
	tcell.KeyF10:        platform.KeyF10,
	tcell.KeyF11:        platform.KeyF11,
	tcell.KeyF12:        platform.KeyF12,
	tcell.KeyF13:        platform.KeyF13,
	tcell.KeyF14:        platform.KeyF14,
	tcell.KeyF15:        platform.KeyF15,
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button platform.MouseButton
}{
	{tcell.Button1, platform.LeftButton},
	{tcell.Button2, platform.RightButton},
	{tcell.Button3, platform.MiddleButton},
}

// Host drives a session from tcell events and a frame ticker.
type Host struct {
	screen   tcell.Screen
	session  *session.Session
	tickRate int
	buttons  tcell.ButtonMask
	footer   string
	now      func() time.Time
}

// New opens the terminal screen.
func New(s *session.Session, tickRate int) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellhost: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellhost: cannot init screen: %w", err)
	}
	return NewWithScreen(screen, s, tickRate), nil
}

// NewWithScreen hosts a session on an initialized screen.
func NewWithScreen(screen tcell.Screen, s *session.Session, tickRate int) *Host {
	if tickRate <= 0 {
		tickRate = 60
	}
	var parts []string
	for _, e := range s.Remapper().Entries() {
		parts = append(parts, strings.ToLower(e.Input)+" "+e.Action.String())
	}
	return &Host{
		screen:   screen,
		session:  s,
		tickRate: tickRate,
		footer:   strings.Join(parts, " • "),
		now:      time.Now,
	}
}

// Run plays until the player quits or ctx is done. The screen is
// finalized on return.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()

	h.screen.EnableMouse()
	h.screen.EnableFocus()
	h.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			h.handle(ev)
		case t := <-ticker.C:
			h.session.Frame(t)
			if h.session.Quit() {
				return nil
			}
			h.draw()
		}
	}
}

// handle translates one tcell event into platform events.
func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.session.Push(platform.MouseMoved(float64(x), float64(y)))

		buttons := ev.Buttons()
		for _, b := range mouseButtons {
			was, is := h.buttons&b.mask != 0, buttons&b.mask != 0
			switch {
			case is && !was:
				h.session.Push(platform.MouseInput(platform.Pressed, b.button))
			case was && !is:
				h.session.Push(platform.MouseInput(platform.Released, b.button))
			}
		}
		h.buttons = buttons

	case *tcell.EventResize:
		w, ht := ev.Size()
		h.session.Push(platform.Resized(uint32(w), uint32(max(ht-footerHeight, 0))))

	case *tcell.EventFocus:
		h.session.Push(platform.Focused(ev.Focused))
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		h.session.Push(platform.Closed())
		return
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		h.session.Push(platform.ReceivedCharacter(r))
		if k := platform.KeyForRune(r); k != platform.KeyAbsent {
			h.session.PressKey(k, h.now())
		}
		return
	}
	if k, ok := namedKeys[ev.Key()]; ok {
		h.session.PressKey(k, h.now())
	}
}

// draw copies the session's cell buffer and the footer to the screen.
func (h *Host) draw() {
	h.screen.Clear()

	buf := h.session.Render()
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			h.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}

	footerStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(241))
	x := 0
	for _, r := range h.footer {
		h.screen.SetContent(x, buf.Height(), r, nil, footerStyle)
		x++
	}

	h.screen.Show()
}

func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}
