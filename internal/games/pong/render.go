package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Display characters.
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// IdleHint is shown between rounds.
const IdleHint = "Press SPACE to serve"

// Transform places an entity in world space: Translation is its center,
// Scale its full extent.
type Transform struct {
	Translation core.Vec2
	Scale       core.Vec2
}

// Transforms holds the placement of every drawable entity for one frame.
type Transforms struct {
	Paddles [2]Transform
	Ball    Transform
}

// ComputeTransforms derives entity placement from the simulation state.
// Paddles sit flush against their side of the playfield.
func ComputeTransforms(st *State, bounds core.Bounds) Transforms {
	var t Transforms
	for i, p := range st.Paddles {
		x := bounds.Left + p.Width/2
		if p.Side == Right {
			x = bounds.Right - p.Width/2
		}
		t.Paddles[i] = Transform{
			Translation: core.Vec2{x, p.Position},
			Scale:       core.Vec2{p.Width, p.Height},
		}
	}
	d := st.Ball.Radius * 2
	t.Ball = Transform{
		Translation: st.Ball.Position,
		Scale:       core.Vec2{d, d},
	}
	return t
}

// Viewport maps world coordinates onto a grid of cells.
type Viewport struct {
	Bounds core.Bounds
	Cols   int
	Rows   int
}

// Cell returns the cell containing world point p, clamped to the grid.
func (v Viewport) Cell(p core.Vec2) (x, y int) {
	fx := (p.X() - v.Bounds.Left) / v.Bounds.Width() * float64(v.Cols)
	fy := (v.Bounds.Top - p.Y()) / v.Bounds.Height() * float64(v.Rows)
	return v.clamp(fx, v.Cols), v.clamp(fy, v.Rows)
}

func (v Viewport) clamp(f float64, n int) int {
	if math.IsNaN(f) || n <= 0 {
		return 0
	}
	return core.Clamp(int(math.Floor(f)), 0, n-1)
}

// Rect returns the cells touched by t, corners included.
func (v Viewport) Rect(t Transform) core.Rect {
	half := t.Scale.Mul(0.5)
	x0, y0 := v.Cell(core.Vec2{t.Translation.X() - half.X(), t.Translation.Y() + half.Y()})
	x1, y1 := v.Cell(core.Vec2{t.Translation.X() + half.X(), t.Translation.Y() - half.Y()})
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// Render draws the playfield, both paddles, the ball and the score line.
func Render(st *State, bounds core.Bounds, dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	centerX := w / 2
	for y := 1; y < h; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	vp := Viewport{Bounds: bounds, Cols: w, Rows: h}
	t := ComputeTransforms(st, bounds)
	dst.DrawRect(vp.Rect(t.Paddles[Left]), PaddleChar, core.ColorCyan)
	dst.DrawRect(vp.Rect(t.Paddles[Right]), PaddleChar, core.ColorYellow)
	// The ball is smaller than a cell at any sane terminal size.
	bx, by := vp.Cell(t.Ball.Translation)
	dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)

	m := st.Match
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", m.LeftScore), core.ColorCyan)
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", m.RightScore), core.ColorYellow)
	dst.DrawText(1, 0, fmt.Sprintf("Round %d", m.Round), core.ColorWhite)

	if !m.RoundActive {
		dst.DrawTextCentered(h/2-2, IdleHint, core.ColorGray)
	}
}
