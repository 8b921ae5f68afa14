package core

// RuntimeConfig contains configuration passed to the host loop at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for serve directions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds is the visible playfield in world units, as seen by the camera.
// Top is greater than Bottom (y grows upward).
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// OrthoBounds returns the orthographic camera bounds for the given aspect
// ratio: x spans [-aspect, aspect] and y spans [-1, 1].
func OrthoBounds(aspect float64) Bounds {
	return Bounds{
		Left:   -aspect,
		Right:  aspect,
		Top:    1,
		Bottom: -1,
	}
}

// Center returns the midpoint of the playfield.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2}
}

// Width returns the horizontal extent of the playfield.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the playfield.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// TerminalAspect converts a cell grid size into a world aspect ratio.
// Terminal cells are roughly twice as tall as they are wide.
func TerminalAspect(cols, rows int) float64 {
	if rows <= 0 {
		return 1
	}
	return float64(cols) / (2 * float64(rows))
}
