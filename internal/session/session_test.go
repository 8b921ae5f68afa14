package session

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/sound"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

type fakeRecorder struct {
	beginErr error
	misses   []storage.Miss
	finished []string
	rounds   int
}

func (f *fakeRecorder) BeginMatch(player, difficulty string) (string, error) {
	if f.beginErr != nil {
		return "", f.beginErr
	}
	return "match-1", nil
}

func (f *fakeRecorder) RecordMiss(m storage.Miss) error {
	f.misses = append(f.misses, m)
	return nil
}

func (f *fakeRecorder) FinishMatch(id string, left, right, rounds int, reason string) error {
	f.finished = append(f.finished, reason)
	f.rounds = rounds
	return nil
}

type fakeSpeaker struct {
	cues []sound.Cue
}

func (f *fakeSpeaker) Play(cue sound.Cue) {
	f.cues = append(f.cues, cue)
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, rec Recorder, spk Speaker) *Session {
	t.Helper()
	s, err := New(Options{
		Pong:     config.DefaultPongConfig(),
		Bindings: config.DefaultBindings(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Player:   "tester",
		Recorder: rec,
		Speaker:  spk,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestServeOnSpace(t *testing.T) {
	spk := &fakeSpeaker{}
	s := newTestSession(t, nil, spk)

	s.PressKey(platform.KeySpace, t0)
	events := s.Frame(t0)

	if len(events) != 1 || events[0].Kind != pong.EventRoundStarted {
		t.Fatalf("events = %+v, expected RoundStarted", events)
	}
	if !s.State().Match.RoundActive {
		t.Error("round should be active")
	}
	if len(spk.cues) != 1 || spk.cues[0] != sound.CueServe {
		t.Errorf("cues = %v, expected serve", spk.cues)
	}

	s.Frame(t0.Add(16 * time.Millisecond))
	if s.State().Ball.Position == s.Bounds().Center() {
		t.Error("ball should move after the serve")
	}
}

func TestHeldKeyReleases(t *testing.T) {
	s := newTestSession(t, nil, nil)

	s.PressKey(platform.KeyW, t0)
	s.Frame(t0)
	if v := s.State().Paddles[pong.Left].VelocityUp; v != 2 {
		t.Fatalf("VelocityUp = %v while held, expected 2", v)
	}

	// Repeats keep the key down.
	s.PressKey(platform.KeyW, t0.Add(100*time.Millisecond))
	s.Frame(t0.Add(200 * time.Millisecond))
	if v := s.State().Paddles[pong.Left].VelocityUp; v != 2 {
		t.Errorf("VelocityUp = %v after a repeat, expected 2", v)
	}

	s.Frame(t0.Add(400 * time.Millisecond))
	if v := s.State().Paddles[pong.Left].VelocityUp; v != 0 {
		t.Errorf("VelocityUp = %v after the key went quiet, expected 0", v)
	}
}

func TestMissIsRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	spk := &fakeSpeaker{}
	s := newTestSession(t, rec, spk)
	if s.MatchID() != "match-1" {
		t.Fatalf("MatchID = %q", s.MatchID())
	}

	s.PressKey(platform.KeySpace, t0)
	s.Frame(t0)
	s.state.Paddle(pong.Left).Position = 0.8
	s.state.Ball.Velocity = core.Vec2{-100, 0}

	events := s.Frame(t0.Add(50 * time.Millisecond))
	if len(events) != 1 || events[0].Kind != pong.EventMissed {
		t.Fatalf("events = %+v, expected a miss", events)
	}
	if len(rec.misses) != 1 {
		t.Fatalf("recorded %d misses, expected 1", len(rec.misses))
	}
	m := rec.misses[0]
	if m.MatchID != "match-1" || m.Round != 1 || m.Side != "left" || m.RightScore != 1 {
		t.Errorf("miss = %+v", m)
	}
	if spk.cues[len(spk.cues)-1] != sound.CueMiss {
		t.Errorf("cues = %v, expected a miss cue last", spk.cues)
	}

	if err := s.Close(storage.EndQuit); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(storage.EndQuit); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if len(rec.finished) != 1 || rec.rounds != 1 {
		t.Errorf("finished = %v rounds = %d, expected one finish after 1 round", rec.finished, rec.rounds)
	}
}

func TestRecorderFailureDisablesRecording(t *testing.T) {
	rec := &fakeRecorder{beginErr: errors.New("disk full")}
	s := newTestSession(t, rec, nil)

	if s.MatchID() != "" {
		t.Errorf("MatchID = %q, expected none", s.MatchID())
	}
	if err := s.Close(storage.EndQuit); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if len(rec.finished) != 0 {
		t.Error("an unrecorded match must not be finished")
	}
}

func TestExitAndClose(t *testing.T) {
	s := newTestSession(t, nil, nil)

	s.PressKey(platform.KeyEscape, t0)
	s.Frame(t0)
	if !s.Quit() {
		t.Error("Escape should quit")
	}
	if events := s.Frame(t0.Add(time.Second)); events != nil {
		t.Errorf("frame after quit produced %+v", events)
	}

	s = newTestSession(t, nil, nil)
	s.Push(platform.Closed())
	s.Frame(t0)
	if !s.Quit() {
		t.Error("window close should quit")
	}
}

func TestResize(t *testing.T) {
	s := newTestSession(t, nil, nil)

	s.Push(platform.Resized(120, 30))
	s.Frame(t0)

	screen := s.Render()
	if screen.Width() != 120 || screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 120x30", screen.Width(), screen.Height())
	}
	if want := core.OrthoBounds(2); s.Bounds() != want {
		t.Errorf("bounds = %+v, expected %+v", s.Bounds(), want)
	}
}

func TestFixedAspect(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Playfield.Aspect = 1.5
	s, err := New(Options{
		Pong:     cfg,
		Bindings: config.DefaultBindings(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Bounds() != core.OrthoBounds(1.5) {
		t.Errorf("bounds = %+v, expected aspect 1.5", s.Bounds())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Ball.Radius = 0
	_, err := New(Options{Pong: cfg, Bindings: config.DefaultBindings()})
	if err == nil {
		t.Error("expected invalid config to be rejected")
	}
}
