package pong

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect tones.
const (
	bounceFreq = 440.0
	paddleFreq = 880.0
	scoreFreq  = 220.0

	blipDuration  = 40 * time.Millisecond
	scoreDuration = 180 * time.Millisecond
)

// SoundPlayer plays short synthesized blips through the system speaker.
// A nil or uninitialized player is silent, so the game runs unchanged when
// no audio device is available.
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundPlayer creates a player. Call Init before any sound is audible.
func NewSoundPlayer() *SoundPlayer {
	return &SoundPlayer{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Calling Init again is a no-op.
func (p *SoundPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("pong: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *SoundPlayer) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// PlayBounce plays the wall bounce blip.
func (p *SoundPlayer) PlayBounce() { p.play(bounceFreq, blipDuration) }

// PlayPaddle plays the paddle hit blip.
func (p *SoundPlayer) PlayPaddle() { p.play(paddleFreq, blipDuration) }

// PlayScore plays the point tone.
func (p *SoundPlayer) PlayScore() { p.play(scoreFreq, scoreDuration) }

func (p *SoundPlayer) play(freq float64, d time.Duration) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := tone(sampleRate, freq, d)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// tone returns a sine wave of freq Hz lasting d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(d), sine), nil
}
