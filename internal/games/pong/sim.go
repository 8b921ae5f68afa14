package pong

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// EventKind discriminates MatchEvent.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventPaddleHit
	EventMissed
)

// MatchEvent reports a round lifecycle change for display and logging.
type MatchEvent struct {
	Kind       EventKind
	Side       Side // the returning paddle, or the side that let the ball through
	LeftScore  int
	RightScore int
	Round      int // round number after the event
}

// StepResult is returned by Sim.Step after each frame.
type StepResult struct {
	Events []MatchEvent
}

// Sim advances a State one frame at a time. It owns its cursor into the
// action queue, so every action is applied exactly once.
type Sim struct {
	cfg    config.PongConfig
	queue  *core.ActionQueue
	reader *core.ActionReader
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Sim.
type Option func(*Sim)

// WithSeed seeds the serve direction generator.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger receiving miss notifications.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		s.logger = l
	}
}

// NewSim creates a simulation reading actions from queue.
func NewSim(cfg config.PongConfig, queue *core.ActionQueue, opts ...Option) *Sim {
	s := &Sim{
		cfg:    cfg,
		queue:  queue,
		reader: queue.Register(),
		rng:    rand.New(rand.NewSource(1)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the simulation constants.
func (s *Sim) Config() config.PongConfig {
	return s.cfg
}

// Step advances st by dt seconds. The phases run in a fixed order: input,
// paddle movement, ball movement, collision response, scoring.
// dt must not be negative; negative values are not checked and give
// undefined results.
func (s *Sim) Step(dt float64, bounds core.Bounds, st *State) StepResult {
	var res StepResult

	serve := s.applyInput(st, &res)

	// Planes live for this frame only.
	var planes [2]CollisionPlane
	for i := range st.Paddles {
		p := &st.Paddles[i]
		movePaddle(p, dt, bounds)
		planes[i] = p.CollisionPlane(bounds)
	}

	start, end := s.moveBall(&st.Ball, serve, dt)
	s.collide(st, start, end, planes[:], bounds, &res)
	s.score(st, bounds, &res)

	return res
}

// applyInput consumes unread actions. It reports whether the ball must be
// served this frame; repeated start actions in one frame serve once.
func (s *Sim) applyInput(st *State, res *StepResult) bool {
	serve := false
	for _, ev := range s.queue.Read(s.reader) {
		switch ev.Kind {
		case core.KindState:
			side, dir, ok := paddleControl(ev.ID)
			if !ok {
				continue
			}
			v := s.cfg.Physics.PaddleSpeed
			if ev.State == core.StateDeactivated {
				v = 0
			}
			setVelocity(st.Paddle(side), dir, v)

		case core.KindDiscrete:
			if ev.ID != core.ActionStartRound || st.Match.RoundActive {
				continue
			}
			st.Match.RoundActive = true
			serve = true
			res.Events = append(res.Events, MatchEvent{
				Kind:       EventRoundStarted,
				LeftScore:  st.Match.LeftScore,
				RightScore: st.Match.RightScore,
				Round:      st.Match.Round,
			})
		}
	}
	return serve
}

// paddleControl resolves which paddle and direction an action drives.
func paddleControl(id core.ActionID) (Side, Direction, bool) {
	switch id {
	case core.ActionLeftPaddleUp:
		return Left, Up, true
	case core.ActionLeftPaddleDown:
		return Left, Down, true
	case core.ActionRightPaddleUp:
		return Right, Up, true
	case core.ActionRightPaddleDown:
		return Right, Down, true
	default:
		return Left, Up, false
	}
}

func setVelocity(p *Paddle, dir Direction, v float64) {
	if dir == Up {
		p.VelocityUp = v
	} else {
		p.VelocityDown = v
	}
}

// movePaddle integrates the paddle and clamps it inside the playfield.
// Touching a boundary stops the paddle.
func movePaddle(p *Paddle, dt float64, bounds core.Bounds) {
	p.Position += p.VelocityUp * dt
	p.Position -= p.VelocityDown * dt

	if p.Top() >= bounds.Top {
		p.Position = bounds.Top - p.Height/2
		p.VelocityUp = 0
		p.VelocityDown = 0
	}
	if p.Bottom() <= bounds.Bottom {
		p.Position = bounds.Bottom + p.Height/2
		p.VelocityUp = 0
		p.VelocityDown = 0
	}
}

// moveBall serves if requested, then integrates the ball position.
// It returns the positions before and after the move.
func (s *Sim) moveBall(b *Ball, serve bool, dt float64) (start, end core.Vec2) {
	if serve {
		b.Velocity = s.serveVelocity()
	}
	start = b.Position
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	return start, b.Position
}

// serveVelocity picks a random direction toward either side with a
// vertical component in [-1, 1), scaled to the serve speed.
func (s *Sim) serveVelocity() core.Vec2 {
	x := 1.0
	if s.rng.Intn(2) == 0 {
		x = -1
	}
	y := s.rng.Float64()*2 - 1
	return core.Vec2{x, y}.Normalize().Mul(s.cfg.Physics.ServeSpeed)
}

// collide applies paddle bounces for the start->end displacement, then
// mirrors the ball back inside the top and bottom walls.
func (s *Sim) collide(st *State, start, end core.Vec2, planes []CollisionPlane, bounds core.Bounds, res *StepResult) {
	b := &st.Ball
	for _, plane := range planes {
		hit, ok := plane.Test(start, end)
		if !ok {
			continue
		}
		b.Velocity[0] = -b.Velocity[0]
		b.Velocity = b.Velocity.Mul(s.cfg.Physics.BounceFactor)
		b.Position[0] = hit.NewX
		res.Events = append(res.Events, MatchEvent{
			Kind:       EventPaddleHit,
			Side:       plane.Side,
			LeftScore:  st.Match.LeftScore,
			RightScore: st.Match.RightScore,
			Round:      st.Match.Round,
		})
	}

	if b.Position.Y()+b.Radius >= bounds.Top {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] -= (b.Position.Y() + b.Radius - bounds.Top) * 2
	}
	if b.Position.Y()-b.Radius <= bounds.Bottom {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] -= (b.Position.Y() - b.Radius - bounds.Bottom) * 2
	}
}

// score ends the round when the ball leaves the playfield on the left or
// the right. At most one side misses per frame.
func (s *Sim) score(st *State, bounds core.Bounds, res *StepResult) {
	var missed Side
	switch {
	case st.Ball.Position.X() < bounds.Left:
		missed = Left
		st.Match.RightScore++
	case st.Ball.Position.X() > bounds.Right:
		missed = Right
		st.Match.LeftScore++
	default:
		return
	}

	st.Ball.Position = bounds.Center()
	st.Ball.Velocity = core.Vec2{}
	st.Match.Round++
	st.Match.RoundActive = false

	s.logger.Info(missed.String()+" player missed the ball",
		"left", st.Match.LeftScore,
		"right", st.Match.RightScore,
		"round", st.Match.Round,
	)
	res.Events = append(res.Events, MatchEvent{
		Kind:       EventMissed,
		Side:       missed,
		LeftScore:  st.Match.LeftScore,
		RightScore: st.Match.RightScore,
		Round:      st.Match.Round,
	})
}
