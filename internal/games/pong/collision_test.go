package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestCollisionPlaneTest(t *testing.T) {
	right := CollisionPlane{Side: Right, X: 0.5, YTop: 0.2, YBottom: -0.2}
	left := CollisionPlane{Side: Left, X: -0.5, YTop: 0.2, YBottom: -0.2}

	tests := []struct {
		name    string
		plane   CollisionPlane
		start   core.Vec2
		end     core.Vec2
		wantHit bool
		newX    float64
	}{
		{
			name:    "right plane crossed",
			plane:   right,
			start:   core.Vec2{0, 0},
			end:     core.Vec2{0.7, 0},
			wantHit: true,
			newX:    0.3,
		},
		{
			name:    "right plane crossed from left side only",
			plane:   right,
			start:   core.Vec2{0.7, 0},
			end:     core.Vec2{0, 0},
			wantHit: false,
		},
		{
			name:    "right plane missed above",
			plane:   right,
			start:   core.Vec2{0, 0.5},
			end:     core.Vec2{0.7, 0.5},
			wantHit: false,
		},
		{
			name:    "right plane not reached",
			plane:   right,
			start:   core.Vec2{0, 0},
			end:     core.Vec2{0.4, 0},
			wantHit: false,
		},
		{
			name:    "left plane crossed",
			plane:   left,
			start:   core.Vec2{-0.4, 0.1},
			end:     core.Vec2{-0.6, 0.05},
			wantHit: true,
			newX:    -0.4,
		},
		{
			name:    "left plane moving away",
			plane:   left,
			start:   core.Vec2{-0.6, 0},
			end:     core.Vec2{-0.4, 0},
			wantHit: false,
		},
		{
			name:    "left plane starting on the plane",
			plane:   left,
			start:   core.Vec2{-0.5, 0},
			end:     core.Vec2{-0.55, 0},
			wantHit: true,
			newX:    -0.45,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := tc.plane.Test(tc.start, tc.end)
			if ok != tc.wantHit {
				t.Fatalf("Test() hit = %v, expected %v", ok, tc.wantHit)
			}
			if ok && math.Abs(hit.NewX-tc.newX) > 1e-9 {
				t.Errorf("NewX = %v, expected %v", hit.NewX, tc.newX)
			}
		})
	}
}

func TestCollisionPlaneSteepTunneling(t *testing.T) {
	// A fast, steep ball is pushed back by the overshoot only, which can
	// leave it past the plane's y range; the correction must still be the
	// plain mirror of the x overshoot.
	plane := CollisionPlane{Side: Right, X: 0.5, YTop: 0.2, YBottom: -0.2}
	hit, ok := plane.Test(core.Vec2{0.45, 0.15}, core.Vec2{2.5, 0.19})
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.NewX-(0.5-(2.5-0.5))) > 1e-9 {
		t.Errorf("NewX = %v, expected %v", hit.NewX, 0.5-(2.5-0.5))
	}
}

func TestPaddleCollisionPlane(t *testing.T) {
	bounds := core.Bounds{Left: -1.5, Right: 1.5, Top: 1, Bottom: -1}

	p := Paddle{Side: Left, Position: 0.2, Width: 0.01, Height: 0.3}
	plane := p.CollisionPlane(bounds)
	if math.Abs(plane.X-(-1.49)) > 1e-9 {
		t.Errorf("left plane X = %v, expected -1.49", plane.X)
	}
	if math.Abs(plane.YTop-0.35) > 1e-9 || math.Abs(plane.YBottom-0.05) > 1e-9 {
		t.Errorf("plane y = [%v, %v], expected [0.05, 0.35]", plane.YBottom, plane.YTop)
	}

	p.Side = Right
	if plane := p.CollisionPlane(bounds); math.Abs(plane.X-1.49) > 1e-9 || plane.Side != Right {
		t.Errorf("right plane = %+v, expected X 1.49", plane)
	}
}
