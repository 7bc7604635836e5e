package core

import "time"

// DefaultInterval is the stepping cadence used when no interval is given.
const DefaultInterval = 100 * time.Millisecond

// StepClock gates generation updates to a fixed wall-clock interval. The
// backlog is capped at a single interval, so there is never more than one
// pending tick and a stalled frame does not burst several generations.
type StepClock struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepClock constructs a clock firing once per interval.
func NewStepClock(interval time.Duration) *StepClock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &StepClock{interval: interval}
}

// Reset re-arms the clock so the next tick fires one full interval from
// the next observation. Called whenever the run state changes.
func (c *StepClock) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}

// ShouldStep reports whether a tick boundary has been crossed since the
// last call.
func (c *StepClock) ShouldStep() bool { return c.stepAt(time.Now()) }

func (c *StepClock) stepAt(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator > c.interval {
		c.accumulator = c.interval
	}
	if c.accumulator >= c.interval {
		c.accumulator = 0
		return true
	}
	return false
}
