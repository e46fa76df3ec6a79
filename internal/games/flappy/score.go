package flappy

import (
	"io"

	"github.com/charmbracelet/log"
)

// ScoreTracker counts passed pairs and keeps the high-water mark.
type ScoreTracker struct {
	score  int
	high   int
	store  HighScoreStore
	logger *log.Logger
}

// NewScoreTracker loads the previous high score from store.
// A nil store or a failed load starts from 0.
func NewScoreTracker(store HighScoreStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &ScoreTracker{store: store, logger: logger}
	if store == nil {
		return t
	}
	high, err := store.LoadHighScore()
	if err != nil {
		logger.Warn("cannot load high score", "err", err)
		return t
	}
	if high > 0 {
		t.high = high
	}
	return t
}

// OnScoreEvent adds count passed pairs to the score.
func (t *ScoreTracker) OnScoreEvent(count int) {
	if count > 0 {
		t.score += count
	}
}

// Score returns the current match score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// HighScore returns the best score seen.
func (t *ScoreTracker) HighScore() int {
	return t.high
}

// CommitHighScoreIfBeaten raises the high score to the current score when
// it is higher and saves it. Save failures are logged and ignored.
func (t *ScoreTracker) CommitHighScoreIfBeaten() bool {
	if t.score <= t.high {
		return false
	}
	t.high = t.score
	if t.store != nil {
		if err := t.store.SaveHighScore(t.high); err != nil {
			t.logger.Warn("cannot save high score", "score", t.high, "err", err)
		}
	}
	return true
}

// Reset clears the match score. The high score is kept.
func (t *ScoreTracker) Reset() {
	t.score = 0
}
