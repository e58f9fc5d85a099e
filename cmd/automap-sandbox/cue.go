package main

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-automap/parameter"
)

// cue plays a short tone when zoom runs into a limit
type cue struct {
	enabled    bool
	sampleRate beep.SampleRate
	logger     *slog.Logger
}

// newCue opens the speaker; failure leaves the cue silent
func newCue(enabled bool, logger *slog.Logger) *cue {
	c := &cue{sampleRate: beep.SampleRate(parameter.CueSampleRate), logger: logger}
	if !enabled {
		return c
	}

	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the sandbox runs without sound
		logger.Warn("audio initialization failed", "error", err)
		return c
	}
	c.enabled = true
	return c
}

func (c *cue) play() {
	if !c.enabled {
		return
	}

	tone, err := generators.SineTone(c.sampleRate, parameter.CueFrequency)
	if err != nil {
		c.logger.Warn("tone generation failed", "error", err)
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(parameter.CueDuration), tone))
}

func (c *cue) close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
