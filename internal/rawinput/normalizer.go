package rawinput

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/platform"
)

// WindowState is the window size and the last known cursor position in
// pixel (or cell) coordinates.
type WindowState struct {
	Width, Height float64
	Cursor        *Point
}

// Normalizer converts platform events into device events. It owns its
// WindowState and must only be used from one goroutine.
type Normalizer struct {
	window WindowState
	clock  func() time.Duration
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces the monotonic timestamp source.
func WithClock(clock func() time.Duration) Option {
	return func(n *Normalizer) {
		n.clock = clock
	}
}

// NewNormalizer creates a normalizer for a window of the given size with
// no known cursor position.
func NewNormalizer(width, height float64, opts ...Option) *Normalizer {
	start := time.Now()
	n := &Normalizer{
		window: WindowState{Width: width, Height: height},
		clock:  func() time.Duration { return time.Since(start) },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Window returns a copy of the current window state.
func (n *Normalizer) Window() WindowState {
	w := n.window
	if w.Cursor != nil {
		c := *w.Cursor
		w.Cursor = &c
	}
	return w
}

// Process normalizes one frame of platform events in source order.
// The window state is updated as events are processed, so a resize
// affects the normalization of later events in the same batch.
func (n *Normalizer) Process(events []platform.Event) []DeviceEvent {
	var out []DeviceEvent
	for _, ev := range events {
		out = n.processEvent(ev, out)
	}
	return out
}

func (n *Normalizer) processEvent(ev platform.Event, out []DeviceEvent) []DeviceEvent {
	t := n.clock()

	switch ev.Kind {
	case platform.EventClosed:
		return append(out, DeviceEvent{Time: t, Device: DeviceWindow, Kind: KindClose})

	case platform.EventResized:
		n.window.Width = float64(ev.Width)
		n.window.Height = float64(ev.Height)
		return append(out, DeviceEvent{
			Time: t, Device: DeviceWindow, Kind: KindResize,
			Width: ev.Width, Height: ev.Height,
		})

	case platform.EventFocused:
		return append(out, DeviceEvent{Time: t, Device: DeviceWindow, Kind: KindFocus, Focused: ev.Focused})

	case platform.EventReceivedCharacter:
		return append(out, DeviceEvent{Time: t, Device: DeviceKeyboard, Kind: KindChar, Char: ev.Char})

	case platform.EventKeyboardInput:
		return append(out, DeviceEvent{
			Time: t, Device: DeviceKeyboard, Kind: KindKey,
			Key:    MapKeyCode(ev.Key),
			Action: mapAction(ev.State),
		})

	case platform.EventMouseInput:
		var pos Point
		if c := n.window.Cursor; c != nil {
			pos = Point{X: c.X / n.window.Width, Y: c.Y / n.window.Height}
		}
		return append(out, DeviceEvent{
			Time: t, Device: DeviceMouse, Kind: KindButton,
			Button:   MapMouseButton(ev.Button),
			Position: pos,
			Action:   mapAction(ev.State),
		})

	case platform.EventMouseMoved:
		w, h := n.window.Width, n.window.Height
		out = append(out, DeviceEvent{
			Time: t, Device: DeviceMouse, Kind: KindCursorPosition,
			Position: Point{X: ev.X / w, Y: ev.Y / h},
		})
		if prev := n.window.Cursor; prev != nil {
			out = append(out, DeviceEvent{
				Time: t, Device: DeviceMouse, Kind: KindMotion,
				Delta: Point{X: (ev.X - prev.X) / w, Y: (ev.Y - prev.Y) / h},
			})
		}
		n.window.Cursor = &Point{X: ev.X, Y: ev.Y}
		return out

	default:
		return out
	}
}

func mapAction(s platform.ElementState) Action {
	if s == platform.Pressed {
		return Press
	}
	return Release
}

// MapMouseButton converts a native button into its portable id:
// left=1, right=2, middle=3, others keep their native id.
func MapMouseButton(b platform.MouseButton) uint32 {
	switch b.Kind {
	case platform.ButtonLeft:
		return 1
	case platform.ButtonRight:
		return 2
	case platform.ButtonMiddle:
		return 3
	default:
		return uint32(b.ID)
	}
}
