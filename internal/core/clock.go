package core

import "time"

// Clock supplies the elapsed time consumed by one simulation tick.
type Clock interface {
	// ElapsedSeconds returns a non-negative delta since the previous call.
	ElapsedSeconds() float64
}

// FixedClock returns the same step every tick.
type FixedClock struct {
	Step float64
}

// NewFixedClock creates a clock that advances 1/tickRate seconds per tick.
func NewFixedClock(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return FixedClock{Step: 1.0 / float64(tickRate)}
}

// ElapsedSeconds implements Clock.
func (c FixedClock) ElapsedSeconds() float64 {
	return c.Step
}

// WallClock measures real time between calls using the monotonic clock.
// Deltas are capped at MaxStep so a stalled terminal does not teleport
// objects through each other on the next frame.
type WallClock struct {
	MaxStep float64
	now     func() time.Time
	last    time.Time
}

// NewWallClock creates a wall clock capped at maxStep seconds per tick.
func NewWallClock(maxStep float64) *WallClock {
	return &WallClock{MaxStep: maxStep, now: time.Now}
}

// ElapsedSeconds implements Clock. The first call returns 0.
func (c *WallClock) ElapsedSeconds() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if c.MaxStep > 0 {
		return Clamp(dt, 0, c.MaxStep)
	}
	if dt < 0 {
		return 0
	}
	return dt
}
