package core

import "time"

// DefaultTickRate is used whenever a RuntimeConfig leaves TickRate unset.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // steps per second
	Seed     int64 // 0 lets the platform pick one

	// Clock supplies dt per step. Nil means a FixedClock at TickRate,
	// which keeps runs reproducible.
	Clock Clock
}

// DefaultConfig returns an 80x24, 60 Hz config with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Rate returns TickRate, or DefaultTickRate when it is not positive.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// TickInterval is the wall time between two steps.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Rate())
}

// TickClock returns the configured clock or a fixed step at Rate.
func (c RuntimeConfig) TickClock() Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return NewFixedClock(c.Rate())
}

// GameState is the platform's view of a game after a step.
type GameState struct {
	Score     int
	HighScore int    // best known to the game, persisted or not
	Phase     string // game-specific, e.g. "idle", "active"
	GameOver  bool
	Paused    bool
}

// StepResult is what Game.Step returns.
type StepResult struct {
	State GameState
}
