// Package storage persists finished rounds and best scores in SQLite
// through the pure-Go modernc.org/sqlite driver, so builds need no cgo.
package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store is one open score database. It is safe for concurrent use; SSH
// sessions share a single Store.
type Store struct {
	db *sql.DB
}

// migrations are applied in order; PRAGMA user_version records how many
// have run. Append only.
var migrations = []string{
	`CREATE TABLE rounds (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id   TEXT    NOT NULL,
		score     INTEGER NOT NULL,
		played_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX rounds_by_score ON rounds(game_id, score DESC);`,

	`CREATE TABLE best (
		game_id    TEXT PRIMARY KEY,
		score      INTEGER NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: resolve home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Open opens or creates the database at path, creating parent
// directories and bringing the schema up to date.
func Open(path string) (*Store, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir for %s: %w", path, err)
	}

	// Concurrent sessions wait on the write lock instead of failing.
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	db, err := sql.Open("sqlite", path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("storage: read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: migration %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaVersion returns the number of applied migrations.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow(`PRAGMA user_version`).Scan(&v)
	return v, err
}

// Close releases the database. Closing a nil Store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Clear removes the history and the best score of gameID in one
// transaction.
func (s *Store) Clear(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM rounds WHERE game_id = ?`,
		`DELETE FROM best WHERE game_id = ?`,
	} {
		if _, err := tx.Exec(stmt, gameID); err != nil {
			return fmt.Errorf("storage: clear %s: %w", gameID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}
