package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeTone     = 880
	chimeDuration = 50 * time.Millisecond
)

// Chime plays a short tone each time the snake eats.
type Chime struct {
	tone beep.Streamer
}

// NewChime opens the speaker.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	sine, err := generators.SineTone(sampleRate, chimeTone)
	if err != nil {
		speaker.Close()
		return nil, fmt.Errorf("build tone: %w", err)
	}
	return &Chime{tone: sine}, nil
}

// Play queues one chime and returns immediately.
func (c *Chime) Play() {
	speaker.Play(beep.Take(sampleRate.N(chimeDuration), c.tone))
}

func (c *Chime) Close() {
	speaker.Close()
}
