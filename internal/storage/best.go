package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// LoadBest returns the persisted best score of gameID, 0 when none.
func (s *Store) LoadBest(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT score FROM best WHERE game_id = ?`, gameID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: load best %s: %w", gameID, err)
	}
	return score, nil
}

// SaveBest replaces the persisted best score of gameID. It does not
// compare; the caller decides when a score is a new best.
func (s *Store) SaveBest(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score)
	if err != nil {
		return fmt.Errorf("storage: save best %s: %w", gameID, err)
	}
	return nil
}

// HighScores is the flappy.HighScoreStore for one game id.
type HighScores struct {
	store  *Store
	gameID string
}

var _ flappy.HighScoreStore = (*HighScores)(nil)

// NewHighScores binds store to the best score of gameID.
func NewHighScores(store *Store, gameID string) *HighScores {
	return &HighScores{store: store, gameID: gameID}
}

// LoadHighScore implements flappy.HighScoreStore.
func (h *HighScores) LoadHighScore() (int, error) { return h.store.LoadBest(h.gameID) }

// SaveHighScore implements flappy.HighScoreStore.
func (h *HighScores) SaveHighScore(score int) error { return h.store.SaveBest(h.gameID, score) }
