// Package sound plays short tones for match events through the system
// speaker. Audio is optional: when no device is available the player
// stays silent.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound effect.
type Cue int

const (
	CueServe Cue = iota
	CueHit
	CueMiss
)

// tone describes a cue as a single sine burst.
type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue]tone{
	CueServe: {freq: 660, duration: 40 * time.Millisecond},
	CueHit:   {freq: 880, duration: 50 * time.Millisecond},
	CueMiss:  {freq: 220, duration: 250 * time.Millisecond},
}

// Tone returns a streamer for cue at the given sample rate. It ends after
// the cue's duration.
func Tone(cue Cue, sr beep.SampleRate) (beep.Streamer, error) {
	t, ok := cues[cue]
	if !ok {
		return nil, fmt.Errorf("sound: unknown cue %d", cue)
	}
	sine, err := generators.SineTone(sr, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	return beep.Take(sr.N(t.duration), quiet), nil
}

// Player mixes cues into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue. It does nothing before Init succeeds.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Tone(cue, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
