package flappy

import "testing"

func TestScoreTrackerLoadsHighScore(t *testing.T) {
	st := NewScoreTracker(&MemoryHighScores{best: 5}, nil)
	if st.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected 5", st.HighScore())
	}
	if st.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", st.Score())
	}
}

func TestScoreTrackerNilStore(t *testing.T) {
	st := NewScoreTracker(nil, nil)
	st.OnScoreEvent(2)
	if !st.CommitHighScoreIfBeaten() || st.HighScore() != 2 {
		t.Errorf("commit without store failed, high = %d", st.HighScore())
	}
}

func TestScoreTrackerCommit(t *testing.T) {
	tests := []struct {
		name      string
		high      int
		score     int
		committed bool
		wantHigh  int
	}{
		{"beaten", 5, 7, true, 7},
		{"tied", 5, 5, false, 5},
		{"lower", 5, 3, false, 5},
		{"first score", 0, 1, true, 1},
		{"zero run", 0, 0, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &MemoryHighScores{best: tc.high}
			st := NewScoreTracker(store, nil)
			st.OnScoreEvent(tc.score)

			if got := st.CommitHighScoreIfBeaten(); got != tc.committed {
				t.Errorf("CommitHighScoreIfBeaten() = %v, expected %v", got, tc.committed)
			}
			if st.HighScore() != tc.wantHigh {
				t.Errorf("HighScore() = %d, expected %d", st.HighScore(), tc.wantHigh)
			}

			wantSaves := 0
			if tc.committed {
				wantSaves = 1
			}
			if store.Saves() != wantSaves {
				t.Errorf("saves = %d, expected %d", store.Saves(), wantSaves)
			}
		})
	}
}

func TestScoreTrackerIgnoresNonPositive(t *testing.T) {
	st := NewScoreTracker(nil, nil)
	st.OnScoreEvent(0)
	st.OnScoreEvent(-3)
	st.OnScoreEvent(2)
	if st.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", st.Score())
	}
}

func TestScoreTrackerResetKeepsHigh(t *testing.T) {
	st := NewScoreTracker(nil, nil)
	st.OnScoreEvent(4)
	st.CommitHighScoreIfBeaten()
	st.Reset()

	if st.Score() != 0 || st.HighScore() != 4 {
		t.Errorf("after Reset score=%d high=%d, expected 0 and 4", st.Score(), st.HighScore())
	}
}

func TestScoreTrackerAbsorbsStoreFailures(t *testing.T) {
	store := &failingStore{}
	st := NewScoreTracker(store, nil)
	if st.HighScore() != 0 {
		t.Errorf("failed load should start at 0, got %d", st.HighScore())
	}

	st.OnScoreEvent(3)
	if !st.CommitHighScoreIfBeaten() {
		t.Error("commit should succeed in memory when save fails")
	}
	if st.HighScore() != 3 || store.saves != 1 {
		t.Errorf("high=%d saves=%d, expected 3 and 1", st.HighScore(), store.saves)
	}
}
