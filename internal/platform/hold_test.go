package platform

import (
	"testing"
	"time"
)

func TestHoldTrackerExpire(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	ev := h.Press(KeyW, t0)
	if ev.Kind != EventKeyboardInput || ev.State != Pressed || ev.Key != KeyW {
		t.Fatalf("Press() = %+v, expected W pressed", ev)
	}
	h.Press(KeyUp, t0.Add(80*time.Millisecond))

	if got := h.Expire(t0.Add(50 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() too early released %d keys", len(got))
	}

	got := h.Expire(t0.Add(120 * time.Millisecond))
	if len(got) != 1 || got[0].Key != KeyW || got[0].State != Released {
		t.Fatalf("Expire() = %+v, expected W released", got)
	}
	if h.Held(KeyW) {
		t.Error("W should no longer be held")
	}
	if !h.Held(KeyUp) {
		t.Error("Up should still be held")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(KeyS, t0)
	h.Press(KeyS, t0.Add(90*time.Millisecond))

	if got := h.Expire(t0.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat should extend the hold, got %d releases", len(got))
	}
}

func TestHoldTrackerReleaseAllSorted(t *testing.T) {
	h := NewHoldTracker(0)
	now := time.Now()
	h.Press(KeyDown, now)
	h.Press(KeyA, now)
	h.Press(KeyAbsent, now)

	got := h.ReleaseAll()
	if len(got) != 2 {
		t.Fatalf("ReleaseAll() returned %d events, expected 2", len(got))
	}
	if got[0].Key != KeyA || got[1].Key != KeyDown {
		t.Errorf("ReleaseAll() order = %v, %v", got[0].Key, got[1].Key)
	}
	if got := h.ReleaseAll(); len(got) != 0 {
		t.Errorf("second ReleaseAll() returned %d events", len(got))
	}
}
