package core

import "time"

// FrameClock measures wall-clock seconds between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns 0 so the first frame never integrates an arbitrary interval.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Reset forgets the previous frame time, e.g. after a pause.
func (c *FrameClock) Reset() { c.last = time.Time{} }
