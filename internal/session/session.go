// Package session runs one Pong match for a host loop. Hosts feed it
// platform events and frame ticks; the session normalizes input, maps it
// to actions, steps the simulation, records the match and renders the
// playfield into a cell buffer.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/binding"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/rawinput"
	"github.com/vovakirdan/tui-pong/internal/sound"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxFrameStep caps dt so a stalled host does not teleport the ball.
const maxFrameStep = 100 * time.Millisecond

// Recorder persists match progress. *storage.Store implements it.
type Recorder interface {
	BeginMatch(player, difficulty string) (string, error)
	RecordMiss(m storage.Miss) error
	FinishMatch(id string, left, right, rounds int, reason string) error
}

// Speaker plays sound cues. *sound.Player implements it.
type Speaker interface {
	Play(cue sound.Cue)
}

// Options configures a Session.
type Options struct {
	Pong        config.PongConfig
	Bindings    config.BindingsConfig
	Runtime     core.RuntimeConfig
	Player      string
	Difficulty  string
	HoldTimeout time.Duration
	Recorder    Recorder // optional
	Speaker     Speaker  // optional
	Logger      *log.Logger
}

// Session owns every per-match object. It is not safe for concurrent use;
// hosts call it from their event loop only.
type Session struct {
	opts Options

	queue      *core.ActionQueue
	sim        *pong.Sim
	state      *pong.State
	bounds     core.Bounds
	normalizer *rawinput.Normalizer
	remapper   *binding.Remapper
	hold       *platform.HoldTracker
	screen     *core.Screen
	logger     *log.Logger

	pending  []platform.Event
	last     time.Time
	matchID  string
	quit     bool
	finished bool
}

// New creates a session sized to the runtime screen.
func New(opts Options) (*Session, error) {
	remapper, err := binding.New(opts.Bindings)
	if err != nil {
		return nil, err
	}
	if err := opts.Pong.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts:       opts,
		queue:      core.NewActionQueue(),
		normalizer: rawinput.NewNormalizer(float64(opts.Runtime.ScreenW), float64(opts.Runtime.ScreenH)),
		remapper:   remapper,
		hold:       platform.NewHoldTracker(opts.HoldTimeout),
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		logger:     logger,
	}
	s.sim = pong.NewSim(opts.Pong, s.queue, pong.WithSeed(seed), pong.WithLogger(logger))
	s.bounds = s.boundsFor(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	s.state = pong.NewState(opts.Pong, s.bounds)

	if opts.Recorder != nil {
		id, err := opts.Recorder.BeginMatch(opts.Player, opts.Difficulty)
		if err != nil {
			logger.Warn("match will not be recorded", "error", err)
		} else {
			s.matchID = id
		}
	}
	logger.Info("match started", "match", s.matchID, "player", opts.Player, "difficulty", opts.Difficulty)

	return s, nil
}

func (s *Session) boundsFor(cols, rows int) core.Bounds {
	aspect := s.opts.Pong.Playfield.Aspect
	if aspect <= 0 {
		aspect = core.TerminalAspect(cols, rows)
	}
	return core.OrthoBounds(aspect)
}

// MatchID returns the recorded match id, or "" when not recording.
func (s *Session) MatchID() string {
	return s.matchID
}

// Remapper exposes the active bindings, e.g. for help output.
func (s *Session) Remapper() *binding.Remapper {
	return s.remapper
}

// Push queues platform events for the next frame.
func (s *Session) Push(events ...platform.Event) {
	s.pending = append(s.pending, events...)
}

// PressKey queues a key press reported by a terminal. The matching
// release is synthesized once the key stops repeating.
func (s *Session) PressKey(key platform.Key, now time.Time) {
	s.pending = append(s.pending, s.hold.Press(key, now))
}

// Frame runs one simulation step at host time now and returns the match
// events it produced.
func (s *Session) Frame(now time.Time) []pong.MatchEvent {
	if s.quit {
		return nil
	}

	s.pending = append(s.pending, s.hold.Expire(now)...)
	devices := s.normalizer.Process(s.pending)
	s.pending = s.pending[:0]

	for _, ev := range devices {
		if ev.Kind == rawinput.KindResize {
			s.resize(int(ev.Width), int(ev.Height))
		}
	}

	mapped := s.remapper.Map(devices)
	s.queue.Write(mapped.Actions...)

	var dt float64
	if !s.last.IsZero() {
		dt = min(now.Sub(s.last), maxFrameStep).Seconds()
	}
	s.last = now

	res := s.sim.Step(dt, s.bounds, s.state)
	s.queue.Compact()

	for _, ev := range res.Events {
		s.handle(ev)
	}
	if mapped.Quit {
		s.quit = true
	}
	return res.Events
}

func (s *Session) resize(cols, rows int) {
	s.screen.Resize(cols, rows)
	b := s.boundsFor(cols, rows)
	if b == s.bounds {
		return
	}
	// Rescale horizontal positions so the ball keeps its relative place.
	if s.bounds.Width() > 0 {
		k := b.Width() / s.bounds.Width()
		s.state.Ball.Position[0] *= k
	}
	s.bounds = b
}

func (s *Session) handle(ev pong.MatchEvent) {
	switch ev.Kind {
	case pong.EventRoundStarted:
		s.play(sound.CueServe)
	case pong.EventPaddleHit:
		s.play(sound.CueHit)
	case pong.EventMissed:
		s.play(sound.CueMiss)
		if s.matchID == "" {
			return
		}
		err := s.opts.Recorder.RecordMiss(storage.Miss{
			MatchID:    s.matchID,
			Round:      ev.Round - 1,
			Side:       ev.Side.String(),
			LeftScore:  ev.LeftScore,
			RightScore: ev.RightScore,
		})
		if err != nil {
			s.logger.Warn("could not record miss", "error", err)
		}
	}
}

func (s *Session) play(cue sound.Cue) {
	if s.opts.Speaker != nil {
		s.opts.Speaker.Play(cue)
	}
}

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool {
	return s.quit
}

// State returns a copy of the simulation state.
func (s *Session) State() pong.State {
	return s.state.Snapshot()
}

// Bounds returns the current playfield bounds.
func (s *Session) Bounds() core.Bounds {
	return s.bounds
}

// Render draws the current state and returns the cell buffer.
func (s *Session) Render() *core.Screen {
	pong.Render(s.state, s.bounds, s.screen)
	return s.screen
}

// Close finishes the match record. It is safe to call more than once.
func (s *Session) Close(reason string) error {
	if s.finished {
		return nil
	}
	s.finished = true

	m := s.state.Match
	s.logger.Info("match ended", "match", s.matchID, "left", m.LeftScore, "right", m.RightScore, "reason", reason)
	if s.matchID == "" {
		return nil
	}
	if err := s.opts.Recorder.FinishMatch(s.matchID, m.LeftScore, m.RightScore, m.Round-1, reason); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
