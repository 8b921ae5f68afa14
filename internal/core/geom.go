// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no terminal dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2D vector type used for positions and velocities.
type Vec2 = mgl64.Vec2

// Ray is a half-line starting at Origin and extending along Dir.
// Dir is expected to be normalized.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// NewRay creates a ray from start toward end with a normalized direction.
// A zero displacement yields a zero direction, which never intersects.
func NewRay(start, end Vec2) Ray {
	d := end.Sub(start)
	if d.Len() == 0 {
		return Ray{Origin: start}
	}
	return Ray{Origin: start, Dir: d.Normalize()}
}

// Segment is a finite line segment between A and B.
type Segment struct {
	A, B Vec2
}

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Intersect reports where the ray through origin along dir crosses the
// segment [a, b]. Parallel rays and a zero direction never intersect.
func Intersect(origin, dir, a, b Vec2) (Vec2, bool) {
	if dir.X() == 0 && dir.Y() == 0 {
		return Vec2{}, false
	}

	s := b.Sub(a)
	denom := cross(dir, s)
	if denom == 0 || math.IsNaN(denom) {
		return Vec2{}, false
	}

	ao := a.Sub(origin)
	t := cross(ao, s) / denom // distance along the ray
	u := cross(ao, dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return Vec2{}, false
	}

	return origin.Add(dir.Mul(t)), true
}

// Intersection is Intersect for a Ray and a Segment.
func (r Ray) Intersection(seg Segment) (Vec2, bool) {
	return Intersect(r.Origin, r.Dir, seg.A, seg.B)
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
