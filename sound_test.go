package pong

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSoundPlayerNilSafe(t *testing.T) {
	var p *SoundPlayer
	p.PlayBounce()
	p.PlayPaddle()
	p.PlayScore()
	p.Close()
}

func TestSoundPlayerUninitializedSilent(t *testing.T) {
	p := NewSoundPlayer()
	p.PlayBounce()
	p.PlayPaddle()
	p.PlayScore()
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer holds %d streamers before Init", n)
	}
	p.Close()
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		freq float64
		d    time.Duration
	}{
		{bounceFreq, blipDuration},
		{paddleFreq, blipDuration},
		{scoreFreq, scoreDuration},
	}
	for _, tt := range tests {
		s, err := tone(sampleRate, tt.freq, tt.d)
		if err != nil {
			t.Fatalf("tone(%v): %v", tt.freq, err)
		}
		want := sampleRate.N(tt.d)
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total != want {
			t.Errorf("tone(%v, %v) produced %d samples, want %d", tt.freq, tt.d, total, want)
		}
	}
}

func TestToneRejectsNyquist(t *testing.T) {
	if _, err := tone(beep.SampleRate(1000), 600, blipDuration); err == nil {
		t.Error("expected error for a frequency above half the sample rate")
	}
}

func TestGameSilentWithoutSounds(t *testing.T) {
	g := newTestGame()
	press(t, g, confirmKeys[0])
	g.Score(SideLeft)
	if g.Scores().Left != 1 {
		t.Errorf("Scores = %v", g.Scores())
	}
}
