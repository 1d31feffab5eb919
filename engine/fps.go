package engine

import (
	"time"
)

// FPSCounter smoothes the frame rate exponentially
type FPSCounter struct {
	ratio float64
	fps   float64
}

func NewFPSCounter(target float64) *FPSCounter {
	return &FPSCounter{
		ratio: 0.01,
		fps:   target,
	}
}

func (c *FPSCounter) Tick(delta time.Duration) float64 {
	if ds := delta.Seconds(); ds > 0 {
		c.fps = c.fps*(1-c.ratio) + (1.0/ds)*c.ratio
	}
	return c.fps
}

func (c *FPSCounter) FPS() float64 {
	return c.fps
}
