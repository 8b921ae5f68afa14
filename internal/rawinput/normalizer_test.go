package rawinput

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/platform"
)

func fixedClock() Option {
	return WithClock(func() time.Duration { return time.Second })
}

func TestProcessWindowEvents(t *testing.T) {
	n := NewNormalizer(100, 50, fixedClock())

	got := n.Process([]platform.Event{
		platform.Focused(true),
		platform.Resized(200, 80),
		platform.ReceivedCharacter('x'),
		platform.Closed(),
		{Kind: platform.EventRefresh},
		{Kind: platform.EventMouseWheel},
	})

	if len(got) != 4 {
		t.Fatalf("Process() returned %d events, expected 4: %v", len(got), got)
	}

	expected := []Kind{KindFocus, KindResize, KindChar, KindClose}
	for i, k := range expected {
		if got[i].Kind != k {
			t.Errorf("event %d kind = %v, expected %v", i, got[i].Kind, k)
		}
		if got[i].DeviceID != 0 {
			t.Errorf("event %d device id = %d, expected 0", i, got[i].DeviceID)
		}
		if got[i].Time != time.Second {
			t.Errorf("event %d time = %v, expected 1s", i, got[i].Time)
		}
	}

	if got[0].Device != DeviceWindow || !got[0].Focused {
		t.Errorf("Focus event = %+v", got[0])
	}
	if got[1].Width != 200 || got[1].Height != 80 {
		t.Errorf("Resize event = %dx%d, expected 200x80", got[1].Width, got[1].Height)
	}
	if got[2].Device != DeviceKeyboard || got[2].Char != 'x' {
		t.Errorf("Char event = %+v", got[2])
	}

	w := n.Window()
	if w.Width != 200 || w.Height != 80 {
		t.Errorf("Window() size = %vx%v, expected 200x80", w.Width, w.Height)
	}
}

func TestProcessKeyEvents(t *testing.T) {
	n := NewNormalizer(100, 50)

	got := n.Process([]platform.Event{
		platform.KeyboardInput(platform.Pressed, platform.KeyW),
		platform.KeyboardInput(platform.Released, platform.KeyW),
		platform.KeyboardInput(platform.Pressed, platform.KeyAbsent),
	})

	if len(got) != 3 {
		t.Fatalf("Process() returned %d events, expected 3", len(got))
	}
	if got[0].Key != KeyW || got[0].Action != Press || got[0].Device != DeviceKeyboard {
		t.Errorf("press event = %+v", got[0])
	}
	if got[1].Key != KeyW || got[1].Action != Release {
		t.Errorf("release event = %+v", got[1])
	}
	if got[2].Key != KeyNone {
		t.Errorf("absent key mapped to %v, expected None", got[2].Key)
	}
	if got[0].Modifiers != 0 {
		t.Errorf("modifiers = %v, expected empty", got[0].Modifiers)
	}
}

func TestCursorMotion(t *testing.T) {
	n := NewNormalizer(100, 50)

	// First move: position only.
	got := n.Process([]platform.Event{platform.MouseMoved(50, 25)})
	if len(got) != 1 || got[0].Kind != KindCursorPosition {
		t.Fatalf("first move produced %v, expected a single CursorPosition", got)
	}
	if got[0].Position != (Point{X: 0.5, Y: 0.5}) {
		t.Errorf("normalized position = %+v, expected (0.5, 0.5)", got[0].Position)
	}

	// Second move: position then motion.
	got = n.Process([]platform.Event{platform.MouseMoved(60, 20)})
	if len(got) != 2 {
		t.Fatalf("second move produced %d events, expected 2", len(got))
	}
	if got[0].Kind != KindCursorPosition || got[1].Kind != KindMotion {
		t.Fatalf("order = %v, %v; expected CursorPosition then Motion", got[0].Kind, got[1].Kind)
	}
	if math.Abs(got[1].Delta.X-0.1) > 1e-12 || math.Abs(got[1].Delta.Y+0.1) > 1e-12 {
		t.Errorf("motion delta = %+v, expected (0.1, -0.1)", got[1].Delta)
	}

	w := n.Window()
	if w.Cursor == nil || w.Cursor.X != 60 || w.Cursor.Y != 20 {
		t.Errorf("cursor = %+v, expected pixel (60, 20)", w.Cursor)
	}
}

func TestResizeAffectsSameBatch(t *testing.T) {
	n := NewNormalizer(100, 100)
	got := n.Process([]platform.Event{
		platform.Resized(200, 50),
		platform.MouseMoved(100, 25),
	})
	if len(got) != 2 {
		t.Fatalf("Process() returned %d events, expected 2", len(got))
	}
	if got[1].Position != (Point{X: 0.5, Y: 0.5}) {
		t.Errorf("position after resize = %+v, expected (0.5, 0.5)", got[1].Position)
	}
}

func TestNormalizedPositionInUnitSquare(t *testing.T) {
	sizes := [][2]float64{{1, 1}, {80, 24}, {1920, 1080}, {3, 7}}
	for _, size := range sizes {
		n := NewNormalizer(size[0], size[1])
		for _, f := range []float64{0, 0.25, 0.5, 1} {
			got := n.Process([]platform.Event{platform.MouseMoved(size[0]*f, size[1]*(1-f))})
			p := got[0].Position
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Errorf("size %v: position %+v outside unit square", size, p)
			}
		}
	}
}

func TestZeroSizedWindow(t *testing.T) {
	n := NewNormalizer(0, 0)
	got := n.Process([]platform.Event{
		platform.MouseMoved(10, 0),
		platform.MouseMoved(20, 0),
	})
	if len(got) != 3 {
		t.Fatalf("Process() returned %d events, expected 3", len(got))
	}
	if !math.IsInf(got[0].Position.X, 1) {
		t.Errorf("x/0 = %v, expected +Inf", got[0].Position.X)
	}
	if !math.IsNaN(got[0].Position.Y) {
		t.Errorf("0/0 = %v, expected NaN", got[0].Position.Y)
	}
}

func TestButtonEvents(t *testing.T) {
	n := NewNormalizer(100, 50)

	got := n.Process([]platform.Event{platform.MouseInput(platform.Pressed, platform.LeftButton)})
	if got[0].Position != (Point{}) {
		t.Errorf("button before any move = %+v, expected (0, 0)", got[0].Position)
	}

	got = n.Process([]platform.Event{
		platform.MouseMoved(25, 10),
		platform.MouseInput(platform.Released, platform.RightButton),
		platform.MouseInput(platform.Pressed, platform.MiddleButton),
		platform.MouseInput(platform.Pressed, platform.OtherButton(8)),
	})
	if len(got) != 4 {
		t.Fatalf("Process() returned %d events, expected 4", len(got))
	}
	if got[1].Button != 2 || got[1].Action != Release {
		t.Errorf("right button = %+v", got[1])
	}
	if got[1].Position != (Point{X: 0.25, Y: 0.2}) {
		t.Errorf("button position = %+v, expected (0.25, 0.2)", got[1].Position)
	}
	if got[2].Button != 3 {
		t.Errorf("middle button id = %d, expected 3", got[2].Button)
	}
	if got[3].Button != 8 {
		t.Errorf("other button id = %d, expected 8", got[3].Button)
	}
	if MapMouseButton(platform.LeftButton) != 1 {
		t.Error("left button should map to 1")
	}
}

func TestKeyTableIsTotal(t *testing.T) {
	if len(nativeKeys) != platform.KeyCount() {
		t.Fatalf("key table has %d entries, platform defines %d", len(nativeKeys), platform.KeyCount())
	}
	seen := make(map[KeyCode]platform.Key)
	for k := platform.Key(1); int(k) < platform.KeyCount(); k++ {
		code := MapKeyCode(k)
		if code == KeyNone {
			t.Errorf("native key %d maps to None", k)
			continue
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("native keys %d and %d both map to %v", prev, k, code)
		}
		seen[code] = k
	}
	if MapKeyCode(platform.KeyAbsent) != KeyNone {
		t.Error("absent key should map to None")
	}
	if MapKeyCode(platform.Key(-1)) != KeyNone {
		t.Error("out of range key should map to None")
	}
}

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name string
		code KeyCode
	}{
		{"W", KeyW},
		{"Space", KeySpace},
		{"Up", KeyUp},
		{"1", Key1},
		{"Escape", KeyEscape},
	}
	for _, tc := range tests {
		got, ok := ParseKeyCode(tc.name)
		if !ok || got != tc.code {
			t.Errorf("ParseKeyCode(%q) = %v, %v", tc.name, got, ok)
		}
		if tc.code.String() != tc.name {
			t.Errorf("%v.String() = %q", tc.code, tc.code.String())
		}
	}
	if _, ok := ParseKeyCode("Hyper"); ok {
		t.Error("ParseKeyCode should reject unknown names")
	}
}
