package core

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(60)
	for i := 0; i < 3; i++ {
		if got := c.ElapsedSeconds(); got != 1.0/60.0 {
			t.Errorf("ElapsedSeconds() = %f, expected %f", got, 1.0/60.0)
		}
	}

	if NewFixedClock(0).Step != 1.0/60.0 {
		t.Error("Non-positive tick rate should fall back to 60")
	}
}

func TestWallClock(t *testing.T) {
	base := time.Unix(1000, 0)
	times := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(2 * time.Second), // stall
	}
	i := 0

	c := NewWallClock(0.1)
	c.now = func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	if got := c.ElapsedSeconds(); got != 0 {
		t.Errorf("first call should return 0, got %f", got)
	}
	if got := c.ElapsedSeconds(); got < 0.0159 || got > 0.0161 {
		t.Errorf("second call = %f, expected ~0.016", got)
	}
	if got := c.ElapsedSeconds(); got != 0.1 {
		t.Errorf("stall should be capped at 0.1, got %f", got)
	}
}

func TestRuntimeConfigTickClock(t *testing.T) {
	if got := DefaultConfig().TickClock().ElapsedSeconds(); got != 1.0/60 {
		t.Errorf("default clock dt = %v, expected 1/60", got)
	}

	cfg := RuntimeConfig{TickRate: 30}
	if got := cfg.TickClock().ElapsedSeconds(); got != 1.0/30.0 {
		t.Errorf("TickClock() step = %f, expected 1/30", got)
	}

	fixed := NewFixedClock(10)
	cfg.Clock = fixed
	if got, ok := cfg.TickClock().(FixedClock); !ok || got != fixed {
		t.Error("TickClock should return the configured clock")
	}

	cfg.Clock = FixedClock{Step: 0.5}
	if got := cfg.TickClock().ElapsedSeconds(); got != 0.5 {
		t.Errorf("explicit clock should win, got %f", got)
	}
}
