package ecs

import "time"

// Clock converts frame timestamps into delta-time. The first tick, a repeated
// timestamp and any tick while paused all yield zero.
type Clock struct {
	last    time.Time
	started bool
	paused  bool

	// MaxDelta caps a single step, in seconds, so a stalled frame does not
	// push entities through walls. Zero disables the cap.
	MaxDelta float64
	// Scale multiplies every step. Zero is treated as one.
	Scale float64
}

func NewClock(maxDelta float64) *Clock {
	return &Clock{MaxDelta: maxDelta, Scale: 1}
}

func (c *Clock) Tick(now time.Time) float64 {
	if c == nil {
		return 0
	}
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	if dt <= 0 {
		return 0
	}
	c.last = now
	if c.paused {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	if c.Scale > 0 {
		dt *= c.Scale
	}
	return dt
}

func (c *Clock) SetPaused(paused bool) {
	if c == nil {
		return
	}
	c.paused = paused
}

func (c *Clock) Paused() bool {
	return c != nil && c.paused
}
