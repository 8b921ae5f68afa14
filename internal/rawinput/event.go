// Package rawinput normalizes platform window and device events into a
// uniform, timestamped device event stream. It tracks the window size and
// the last cursor position so mouse coordinates can be reported in the
// [0,1] range and as motion deltas.
package rawinput

import (
	"fmt"
	"time"
)

// DeviceClass tags the kind of device that produced an event.
type DeviceClass int

const (
	DeviceWindow DeviceClass = iota
	DeviceKeyboard
	DeviceMouse
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceWindow:
		return "window"
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Kind discriminates DeviceEvent payloads.
type Kind int

const (
	KindClose Kind = iota
	KindResize
	KindFocus
	KindChar
	KindKey
	KindButton
	KindCursorPosition
	KindMotion
)

func (k Kind) String() string {
	switch k {
	case KindClose:
		return "Close"
	case KindResize:
		return "Resize"
	case KindFocus:
		return "Focus"
	case KindChar:
		return "Char"
	case KindKey:
		return "Key"
	case KindButton:
		return "Button"
	case KindCursorPosition:
		return "CursorPosition"
	case KindMotion:
		return "Motion"
	default:
		return "Unknown"
	}
}

// Action is the press state carried by Key and Button events.
type Action int

const (
	Press Action = iota
	Release
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Point is a normalized 2D coordinate or delta.
type Point struct {
	X, Y float64
}

// DeviceEvent is one normalized input occurrence.
type DeviceEvent struct {
	Time     time.Duration // monotonic, since the normalizer was created
	Device   DeviceClass
	DeviceID int // always 0, a single device of each class is assumed

	Kind Kind

	Width, Height uint32    // KindResize
	Focused       bool      // KindFocus
	Char          rune      // KindChar
	Key           KeyCode   // KindKey
	Button        uint32    // KindButton
	Action        Action    // KindKey, KindButton
	Modifiers     Modifiers // KindKey, KindButton
	Position      Point     // KindButton, KindCursorPosition
	Delta         Point     // KindMotion
}

func (e DeviceEvent) String() string {
	switch e.Kind {
	case KindResize:
		return fmt.Sprintf("%s(%dx%d)", e.Kind, e.Width, e.Height)
	case KindFocus:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Focused)
	case KindChar:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
	case KindKey:
		return fmt.Sprintf("%s(%s,%d)", e.Kind, e.Key, e.Action)
	case KindButton:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Button, e.Action)
	case KindCursorPosition:
		return fmt.Sprintf("%s(%.3f,%.3f)", e.Kind, e.Position.X, e.Position.Y)
	case KindMotion:
		return fmt.Sprintf("%s(%.3f,%.3f)", e.Kind, e.Delta.X, e.Delta.Y)
	default:
		return e.Kind.String()
	}
}
