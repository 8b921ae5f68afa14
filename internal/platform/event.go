// Package platform defines the window and device events a host toolkit
// delivers each frame. Terminal backends (Bubble Tea, tcell) translate
// their own messages into these events; the rawinput package normalizes
// them further.
package platform

// EventKind discriminates Event payloads.
type EventKind int

const (
	EventRefresh EventKind = iota // redraw request, carries nothing useful for input
	EventClosed
	EventResized
	EventFocused
	EventReceivedCharacter
	EventKeyboardInput
	EventMouseInput
	EventMouseMoved
	EventMouseWheel
	EventSuspended
)

// ElementState is the press state of a key or button.
type ElementState int

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// ButtonKind names the well-known mouse buttons.
type ButtonKind int

const (
	ButtonLeft ButtonKind = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// MouseButton identifies a mouse button. ID is only set for ButtonOther.
type MouseButton struct {
	Kind ButtonKind
	ID   uint8
}

// Well-known buttons.
var (
	LeftButton   = MouseButton{Kind: ButtonLeft}
	RightButton  = MouseButton{Kind: ButtonRight}
	MiddleButton = MouseButton{Kind: ButtonMiddle}
)

// OtherButton returns an extra button by its native id.
func OtherButton(id uint8) MouseButton {
	return MouseButton{Kind: ButtonOther, ID: id}
}

// Event is one raw occurrence from the host toolkit. Kind selects which of
// the remaining fields are meaningful.
type Event struct {
	Kind EventKind

	Width, Height uint32 // EventResized
	Focused       bool   // EventFocused
	Char          rune   // EventReceivedCharacter

	State  ElementState // EventKeyboardInput, EventMouseInput
	Key    Key          // EventKeyboardInput, KeyAbsent when the toolkit has no virtual key
	Button MouseButton  // EventMouseInput

	X, Y float64 // EventMouseMoved, pixel or cell coordinates
}

// Closed is the window close request.
func Closed() Event {
	return Event{Kind: EventClosed}
}

// Resized reports a new window size.
func Resized(w, h uint32) Event {
	return Event{Kind: EventResized, Width: w, Height: h}
}

// Focused reports focus gained (true) or lost (false).
func Focused(focused bool) Event {
	return Event{Kind: EventFocused, Focused: focused}
}

// ReceivedCharacter reports typed text.
func ReceivedCharacter(r rune) Event {
	return Event{Kind: EventReceivedCharacter, Char: r}
}

// KeyboardInput reports a key press or release.
func KeyboardInput(state ElementState, key Key) Event {
	return Event{Kind: EventKeyboardInput, State: state, Key: key}
}

// MouseInput reports a mouse button press or release.
func MouseInput(state ElementState, button MouseButton) Event {
	return Event{Kind: EventMouseInput, State: state, Button: button}
}

// MouseMoved reports the cursor position.
func MouseMoved(x, y float64) Event {
	return Event{Kind: EventMouseMoved, X: x, Y: y}
}
