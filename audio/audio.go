// Package audio plays short tone cues through the system speaker using the
// beep library. Speaker initialization failure is non-fatal: an uninitialized
// Speaker satisfies game.Chime as a no-op, so the game runs fine on machines
// without an audio device.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/snek/game"
)

const sampleRate = beep.SampleRate(44100)

// Speaker produces the gameplay cues. The zero value is silent until
// NewSpeaker initializes the audio device.
type Speaker struct {
	ready bool
}

var _ game.Chime = (*Speaker)(nil)

// NewSpeaker initializes the audio device. The returned error is
// informational; the Speaker is usable (silently) either way.
func NewSpeaker() (*Speaker, error) {
	s := &Speaker{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, fmt.Errorf("audio: speaker init failed: %w", err)
	}
	s.ready = true
	return s, nil
}

// Eat plays a short high blip.
func (s *Speaker) Eat() {
	s.tone(880, 50*time.Millisecond)
}

// GameOver plays a longer low tone.
func (s *Speaker) GameOver() {
	s.tone(220, 400*time.Millisecond)
}

func (s *Speaker) tone(freq float64, d time.Duration) {
	if s == nil || !s.ready {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	if s.ready {
		speaker.Close()
	}
}
