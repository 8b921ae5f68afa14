// Package pong implements the two-player Pong simulation: paddles, ball,
// match state and the per-frame step that advances them.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies a player's half of the playfield.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Direction is a paddle movement intent.
type Direction int

const (
	Up Direction = iota
	Down
)

// Paddle is one player's paddle. Position is the vertical offset of its
// center; the two velocities are independent and non-negative.
type Paddle struct {
	Side         Side
	Position     float64
	VelocityUp   float64
	VelocityDown float64
	Width        float64
	Height       float64
}

// NewPaddle creates a paddle at rest at vertical offset y.
func NewPaddle(side Side, y float64, cfg config.PongPaddles) Paddle {
	return Paddle{
		Side:     side,
		Position: y,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
}

// Top returns the y coordinate of the paddle's upper edge.
func (p Paddle) Top() float64 {
	return p.Position + p.Height/2
}

// Bottom returns the y coordinate of the paddle's lower edge.
func (p Paddle) Bottom() float64 {
	return p.Position - p.Height/2
}

// CollisionPlane projects the paddle's ball-facing edge for this frame.
func (p Paddle) CollisionPlane(bounds core.Bounds) CollisionPlane {
	x := bounds.Left + p.Width
	if p.Side == Right {
		x = bounds.Right - p.Width
	}
	return CollisionPlane{
		Side:    p.Side,
		X:       x,
		YTop:    p.Top(),
		YBottom: p.Bottom(),
	}
}

// Ball is the single ball. Velocity is zero while no round is active.
type Ball struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
}

// MatchState tracks the score and the round lifecycle.
type MatchState struct {
	LeftScore   int
	RightScore  int
	RoundActive bool
	Round       int // starts at 1, incremented on every miss
}

// Score returns the score of the given side.
func (m MatchState) Score(side Side) int {
	if side == Left {
		return m.LeftScore
	}
	return m.RightScore
}

// State is everything the simulation mutates. Renderers read it after a
// step completes; only Sim.Step writes it.
type State struct {
	Paddles [2]Paddle // indexed by Side
	Ball    Ball
	Match   MatchState
}

// NewState creates a match at round 1 with both paddles centered and the
// ball idle at the playfield center.
func NewState(cfg config.PongConfig, bounds core.Bounds) *State {
	center := bounds.Center()
	return &State{
		Paddles: [2]Paddle{
			NewPaddle(Left, center.Y(), cfg.Paddles),
			NewPaddle(Right, center.Y(), cfg.Paddles),
		},
		Ball: Ball{
			Position: center,
			Radius:   cfg.Ball.Radius,
		},
		Match: MatchState{Round: 1},
	}
}

// Paddle returns the paddle on the given side.
func (s *State) Paddle(side Side) *Paddle {
	return &s.Paddles[side]
}

// Snapshot returns a copy safe to hand to a concurrent renderer.
func (s *State) Snapshot() State {
	return *s
}
