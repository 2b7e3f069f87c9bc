package app

import "time"

// FrameClock measures per-frame delta time from a monotonic source.
type FrameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	index uint64
}

func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	t := now()
	return &FrameClock{now: now, start: t, last: t}
}

// Tick advances to the next frame. Delta is clamped to zero if the clock
// reads earlier than the previous tick.
func (c *FrameClock) Tick() Frame {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	} else {
		c.last = t
	}
	c.index++
	return Frame{
		Index:   c.index,
		Delta:   dt,
		Elapsed: c.last.Sub(c.start).Seconds(),
	}
}
