package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultRoundLimit is used by TopRounds for a non-positive limit.
const DefaultRoundLimit = 10

// Round is one finished round.
type Round struct {
	ID       int64
	GameID   string
	Score    int
	PlayedAt time.Time
}

// Stats aggregates the history of one game.
type Stats struct {
	Rounds     int
	Best       int
	Mean       float64
	Total      int64
	LastPlayed time.Time // zero when nothing was played
}

// RecordRound appends a finished round and returns its row id.
func (s *Store) RecordRound(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO rounds (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: record round: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: record round: %w", err)
	}
	return id, nil
}

// TopRounds returns up to limit rounds of gameID, best first. Ties keep
// the order they were played in.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = DefaultRoundLimit
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, played_at FROM rounds
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var (
			r  Round
			at any
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: top rounds: %w", err)
		}
		r.PlayedAt = asTime(at)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: top rounds: %w", err)
	}
	return out, nil
}

// HistoryBest is the best recorded round of gameID, 0 without history.
func (s *Store) HistoryBest(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM rounds WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: history best: %w", err)
	}
	return int(best.Int64), nil
}

// Stats aggregates the history of gameID.
func (s *Store) Stats(gameID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM rounds WHERE game_id = ?`, gameID,
	).Scan(&st.Rounds, &st.Best, &st.Mean, &st.Total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: stats: %w", err)
	}

	var at any
	err = s.db.QueryRow(
		`SELECT played_at FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT 1`, gameID,
	).Scan(&at)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Stats{}, fmt.Errorf("storage: stats: %w", err)
	default:
		st.LastPlayed = asTime(at)
	}
	return st, nil
}

// sqliteTime is how CURRENT_TIMESTAMP reads back when the driver does not
// hand out a time.Time.
const sqliteTime = "2006-01-02 15:04:05"

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{sqliteTime, time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
