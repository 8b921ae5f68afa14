package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/platform"
)

// namedKeys maps Bubble Tea key types that have no rune to virtual keys.
var namedKeys = map[tea.KeyType]platform.Key{
	tea.KeyEsc:       platform.KeyEscape,
	tea.KeyEnter:     platform.KeyReturn,
	tea.KeySpace:     platform.KeySpace,
	tea.KeyTab:       platform.KeyTab,
	tea.KeyBackspace: platform.KeyBack,
	tea.KeyDelete:    platform.KeyDelete,
	tea.KeyInsert:    platform.KeyInsert,
	tea.KeyHome:      platform.KeyHome,
	tea.KeyEnd:       platform.KeyEnd,
	tea.KeyPgUp:      platform.KeyPageUp,
	tea.KeyPgDown:    platform.KeyPageDown,
	tea.KeyUp:        platform.KeyUp,
	tea.KeyDown:      platform.KeyDown,
	tea.KeyLeft:      platform.KeyLeft,
	tea.KeyRight:     platform.KeyRight,
	tea.KeyF1:        platform.KeyF1,
	tea.KeyF2:        platform.KeyF2,
	tea.KeyF3:        platform.KeyF3,
	tea.KeyF4:        platform.KeyF4,
	tea.KeyF5:        platform.KeyF5,
	tea.KeyF6:        platform.KeyF6,
	tea.KeyF7:        platform.KeyF7,
	tea.KeyF8:        platform.KeyF8,
	tea.KeyF9:        platform.KeyF9,
	tea.KeyF10:       platform.KeyF10,
	tea.KeyF11:       platform.KeyF11,
	tea.KeyF12:       platform.KeyF12,
	tea.KeyF13:       platform.KeyF13,
	tea.KeyF14:       platform.KeyF14,
	tea.KeyF15:       platform.KeyF15,
}

// KeyInput is a Bubble Tea key message translated for the platform layer.
type KeyInput struct {
	Key   platform.Key
	Char  rune // 0 when the key types nothing
	Close bool // ctrl+c: the terminal equivalent of closing the window
}

// MapKey translates a key message. Terminals only report presses.
func MapKey(msg tea.KeyMsg) KeyInput {
	switch msg.Type {
	case tea.KeyCtrlC:
		return KeyInput{Close: true}
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyInput{}
		}
		r := msg.Runes[0]
		return KeyInput{Key: platform.KeyForRune(r), Char: r}
	case tea.KeySpace:
		return KeyInput{Key: platform.KeySpace, Char: ' '}
	}
	return KeyInput{Key: namedKeys[msg.Type]}
}

// MapMouse translates a mouse message into platform events.
func MapMouse(msg tea.MouseMsg) []platform.Event {
	events := []platform.Event{platform.MouseMoved(float64(msg.X), float64(msg.Y))}

	var button platform.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = platform.LeftButton
	case tea.MouseButtonRight:
		button = platform.RightButton
	case tea.MouseButtonMiddle:
		button = platform.MiddleButton
	default:
		return events
	}

	switch msg.Action {
	case tea.MouseActionPress:
		events = append(events, platform.MouseInput(platform.Pressed, button))
	case tea.MouseActionRelease:
		events = append(events, platform.MouseInput(platform.Released, button))
	}
	return events
}
