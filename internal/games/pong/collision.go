package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// CollisionPlane is the vertical segment a paddle presents to the ball
// during one frame.
type CollisionPlane struct {
	Side    Side
	X       float64
	YTop    float64
	YBottom float64
}

// PlaneHit is the response to a ball crossing a collision plane.
type PlaneHit struct {
	NewX float64
}

// Test checks the ball's displacement from start to end against the
// plane. Only crossings toward the owning side's goal count. The corrected
// x mirrors the overshoot past the plane; it does not reflect the whole
// displacement and can still tunnel at steep angles.
func (c CollisionPlane) Test(start, end core.Vec2) (PlaneHit, bool) {
	switch c.Side {
	case Left:
		if !(start.X() >= c.X && end.X() < c.X) {
			return PlaneHit{}, false
		}
	case Right:
		if !(start.X() <= c.X && end.X() > c.X) {
			return PlaneHit{}, false
		}
	default:
		return PlaneHit{}, false
	}

	ray := core.NewRay(start, end)
	seg := core.Segment{
		A: core.Vec2{c.X, c.YBottom},
		B: core.Vec2{c.X, c.YTop},
	}
	if _, ok := ray.Intersection(seg); !ok {
		return PlaneHit{}, false
	}
	return PlaneHit{NewX: c.X - (end.X() - c.X)}, true
}
