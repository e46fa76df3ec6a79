package flappy

import (
	"sync"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Rand is the random source used for gap placement.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// InputSource reports whether a flap was triggered this tick.
// It must be edge-triggered: true for one tick per press.
type InputSource interface {
	FlapTriggered() bool
}

// FrameInput adapts a platform input frame to InputSource.
type FrameInput core.InputFrame

// FlapTriggered implements InputSource.
func (f FrameInput) FlapTriggered() bool {
	return core.InputFrame(f).Has(core.ActionJump)
}

// HighScoreStore persists the best score between matches.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryHighScores is an in-process HighScoreStore.
type MemoryHighScores struct {
	mu    sync.Mutex
	best  int
	saves int
}

// LoadHighScore implements HighScoreStore.
func (m *MemoryHighScores) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveHighScore implements HighScoreStore.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = score
	m.saves++
	return nil
}

// Saves returns how many times SaveHighScore was called.
func (m *MemoryHighScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// EventSink receives discrete simulation events for presentation.
// Implementations must not block the caller.
type EventSink interface {
	HandleEvent(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// HandleEvent implements EventSink.
func (f EventSinkFunc) HandleEvent(e Event) {
	f(e)
}
