package storage

import (
	"testing"
	"time"
)

func TestTopRoundsOrder(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{100, 50, 200, 100} {
		if _, err := store.RecordRound("flappy", s); err != nil {
			t.Fatalf("RecordRound() error: %v", err)
		}
	}
	store.RecordRound("flappy_lite", 500)

	rounds, err := store.TopRounds("flappy", 10)
	if err != nil {
		t.Fatalf("TopRounds() error: %v", err)
	}
	want := []int{200, 100, 100, 50}
	if len(rounds) != len(want) {
		t.Fatalf("got %d rounds, expected %d", len(rounds), len(want))
	}
	for i, w := range want {
		if rounds[i].Score != w || rounds[i].GameID != "flappy" {
			t.Errorf("rounds[%d] = %+v, expected score %d", i, rounds[i], w)
		}
		if rounds[i].PlayedAt.IsZero() {
			t.Errorf("rounds[%d].PlayedAt not set", i)
		}
	}
	if rounds[1].ID > rounds[2].ID {
		t.Error("equal scores should keep play order")
	}
}

func TestTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		store.RecordRound("flappy", i)
	}

	tests := []struct {
		limit, want int
	}{
		{3, 3},
		{0, DefaultRoundLimit},
		{-1, DefaultRoundLimit},
		{100, 15},
	}
	for _, tc := range tests {
		rounds, err := store.TopRounds("flappy", tc.limit)
		if err != nil {
			t.Fatalf("TopRounds(%d) error: %v", tc.limit, err)
		}
		if len(rounds) != tc.want {
			t.Errorf("TopRounds(%d) returned %d, expected %d", tc.limit, len(rounds), tc.want)
		}
	}
}

func TestHistoryBest(t *testing.T) {
	store := openTestStore(t)
	if best, err := store.HistoryBest("flappy"); err != nil || best != 0 {
		t.Errorf("empty HistoryBest() = %d, %v", best, err)
	}
	for _, s := range []int{10, 30, 20} {
		store.RecordRound("flappy", s)
	}
	if best, _ := store.HistoryBest("flappy"); best != 30 {
		t.Errorf("HistoryBest() = %d, expected 30", best)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty Stats() = %+v", st)
	}

	for _, s := range []int{2, 4, 9} {
		store.RecordRound("flappy", s)
	}
	st, err = store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if st.Rounds != 3 || st.Best != 9 || st.Total != 15 || st.Mean != 5 {
		t.Errorf("Stats() = %+v, expected 3 rounds, best 9, total 15, mean 5", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestAsTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want time.Time
	}{
		{want, want},
		{"2024-03-01 12:30:00", want},
		{"2024-03-01T12:30:00Z", want},
		{"garbage", time.Time{}},
		{int64(5), time.Time{}},
		{nil, time.Time{}},
	}
	for _, tc := range tests {
		if got := asTime(tc.in); !got.Equal(tc.want) {
			t.Errorf("asTime(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
