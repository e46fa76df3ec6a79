package storage

import "testing"

func TestBestUpsert(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.LoadBest("flappy"); err != nil || best != 0 {
		t.Fatalf("unsaved LoadBest() = %d, %v", best, err)
	}

	steps := []struct {
		game  string
		score int
	}{
		{"flappy", 5},
		{"flappy", 9},
		{"flappy", 4}, // SaveBest overwrites, it does not compare
		{"flappy_lite", 3},
	}
	for _, s := range steps {
		if err := store.SaveBest(s.game, s.score); err != nil {
			t.Fatalf("SaveBest(%s, %d) error: %v", s.game, s.score, err)
		}
	}

	if best, _ := store.LoadBest("flappy"); best != 4 {
		t.Errorf("flappy best = %d, expected 4", best)
	}
	if best, _ := store.LoadBest("flappy_lite"); best != 3 {
		t.Errorf("flappy_lite best = %d, expected 3", best)
	}
}

func TestBestIsApartFromHistory(t *testing.T) {
	store := openTestStore(t)
	store.RecordRound("flappy", 40)

	if best, _ := store.LoadBest("flappy"); best != 0 {
		t.Errorf("recording a round should not touch the best, got %d", best)
	}
}

func TestHighScoresAdapter(t *testing.T) {
	store := openTestStore(t)
	hs := NewHighScores(store, "flappy")

	if best, err := hs.LoadHighScore(); err != nil || best != 0 {
		t.Fatalf("LoadHighScore() = %d, %v", best, err)
	}
	if err := hs.SaveHighScore(12); err != nil {
		t.Fatalf("SaveHighScore() error: %v", err)
	}
	if best, _ := store.LoadBest("flappy"); best != 12 {
		t.Errorf("store best = %d, expected 12", best)
	}

	other := NewHighScores(store, "flappy_lite")
	if best, _ := other.LoadHighScore(); best != 0 {
		t.Errorf("flappy_lite best = %d, expected 0", best)
	}
}
