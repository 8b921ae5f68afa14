package core

// ActionID identifies a semantic gameplay action, abstracted from the
// physical key or button that produced it.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionExit
	ActionLeftPaddleUp
	ActionLeftPaddleDown
	ActionRightPaddleUp
	ActionRightPaddleDown
	ActionStartRound
)

// ActionKind classifies how an action is delivered.
type ActionKind int

const (
	KindNone     ActionKind = iota
	KindDiscrete            // fires once per occurrence
	KindState               // has an on/off duration
	KindRange               // carries a continuous value
)

// Kind returns the fixed delivery kind of an action.
func (a ActionID) Kind() ActionKind {
	switch a {
	case ActionExit, ActionStartRound:
		return KindDiscrete
	case ActionLeftPaddleUp, ActionLeftPaddleDown, ActionRightPaddleUp, ActionRightPaddleDown:
		return KindState
	default:
		return KindNone
	}
}

// String returns a human-readable name for the action.
// The names are the identifiers used in binding files.
func (a ActionID) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionExit:
		return "Exit"
	case ActionLeftPaddleUp:
		return "LeftPaddleUp"
	case ActionLeftPaddleDown:
		return "LeftPaddleDown"
	case ActionRightPaddleUp:
		return "RightPaddleUp"
	case ActionRightPaddleDown:
		return "RightPaddleDown"
	case ActionStartRound:
		return "StartRound"
	default:
		return "Unknown"
	}
}

// ParseAction resolves an action name from a binding file.
func ParseAction(name string) (ActionID, bool) {
	for a := ActionExit; a <= ActionStartRound; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// StateTransition is the phase of a State action.
type StateTransition int

const (
	StateActivated StateTransition = iota
	StateActive
	StateDeactivated
)

func (s StateTransition) String() string {
	switch s {
	case StateActivated:
		return "Activated"
	case StateActive:
		return "Active"
	case StateDeactivated:
		return "Deactivated"
	default:
		return "Unknown"
	}
}

// ActionEvent is one semantic action occurrence. Kind selects which of the
// remaining fields are meaningful.
type ActionEvent struct {
	ID    ActionID
	Kind  ActionKind
	State StateTransition // KindState only
	Value float64         // KindRange only
	Args  []float64       // KindRange only
}

// Discrete builds a discrete action event.
func Discrete(id ActionID) ActionEvent {
	return ActionEvent{ID: id, Kind: KindDiscrete}
}

// State builds a state transition event.
func State(id ActionID, st StateTransition) ActionEvent {
	return ActionEvent{ID: id, Kind: KindState, State: st}
}

// Range builds a range value event.
func Range(id ActionID, value float64, args ...float64) ActionEvent {
	return ActionEvent{ID: id, Kind: KindRange, Value: value, Args: args}
}

// ActionReader is a consumer's position in an ActionQueue.
// Each consumer owns its reader and resumes where it left off.
type ActionReader struct {
	offset uint64
}

// Offset returns the absolute index of the next unread event.
func (r *ActionReader) Offset() uint64 {
	return r.offset
}

// ActionQueue is a single-threaded append-only event channel with
// per-consumer cursors. Events stay buffered until every registered reader
// has consumed them.
type ActionQueue struct {
	events  []ActionEvent
	base    uint64 // absolute index of events[0]
	readers []*ActionReader
}

// NewActionQueue creates an empty queue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Register creates a reader positioned at the current end of the queue.
// Events written before registration are not visible to it.
func (q *ActionQueue) Register() *ActionReader {
	r := &ActionReader{offset: q.base + uint64(len(q.events))}
	q.readers = append(q.readers, r)
	return r
}

// Write appends events in order.
func (q *ActionQueue) Write(events ...ActionEvent) {
	q.events = append(q.events, events...)
}

// Len returns the number of buffered events.
func (q *ActionQueue) Len() int {
	return len(q.events)
}

// Read returns the events the reader has not seen yet and advances it.
// The returned slice is only valid until the next Write or Compact.
func (q *ActionQueue) Read(r *ActionReader) []ActionEvent {
	if r.offset < q.base {
		r.offset = q.base
	}
	start := int(r.offset - q.base)
	if start >= len(q.events) {
		return nil
	}
	out := q.events[start:]
	r.offset = q.base + uint64(len(q.events))
	return out
}

// Compact drops events that every registered reader has consumed.
func (q *ActionQueue) Compact() {
	if len(q.readers) == 0 {
		q.base += uint64(len(q.events))
		q.events = q.events[:0]
		return
	}

	minOffset := q.readers[0].offset
	for _, r := range q.readers[1:] {
		if r.offset < minOffset {
			minOffset = r.offset
		}
	}
	if minOffset <= q.base {
		return
	}

	drop := int(minOffset - q.base)
	if drop > len(q.events) {
		drop = len(q.events)
	}
	n := copy(q.events, q.events[drop:])
	q.events = q.events[:n]
	q.base += uint64(drop)
}
