package platform

import (
	"sort"
	"time"
)

// DefaultHoldTimeout is how long a key stays held after its last press
// report when the toolkit never reports releases.
const DefaultHoldTimeout = 250 * time.Millisecond

// HoldTracker synthesizes key releases for terminals, which only report
// presses (repeated while the key is held down).
type HoldTracker struct {
	timeout time.Duration
	held    map[Key]time.Time
}

// NewHoldTracker creates a tracker. A non-positive timeout selects
// DefaultHoldTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout: timeout,
		held:    make(map[Key]time.Time),
	}
}

// Press records a press report and returns the keyboard event for it.
// Repeats of a held key are reported as presses as well.
func (h *HoldTracker) Press(key Key, now time.Time) Event {
	if key != KeyAbsent {
		h.held[key] = now
	}
	return KeyboardInput(Pressed, key)
}

// Held reports whether key is currently considered down.
func (h *HoldTracker) Held(key Key) bool {
	_, ok := h.held[key]
	return ok
}

// Expire releases every key whose last press is older than the timeout.
func (h *HoldTracker) Expire(now time.Time) []Event {
	var expired []Key
	for k, last := range h.held {
		if now.Sub(last) >= h.timeout {
			expired = append(expired, k)
		}
	}
	return h.release(expired)
}

// ReleaseAll releases every held key, e.g. when focus is lost.
func (h *HoldTracker) ReleaseAll() []Event {
	keys := make([]Key, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	return h.release(keys)
}

func (h *HoldTracker) release(keys []Key) []Event {
	if len(keys) == 0 {
		return nil
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	events := make([]Event, 0, len(keys))
	for _, k := range keys {
		delete(h.held, k)
		events = append(events, KeyboardInput(Released, k))
	}
	return events
}
