package flappy

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

const tick = 1.0 / 60.0

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// failingStore fails every load and save.
type failingStore struct {
	saves int
}

var errDiskGone = errors.New("disk gone")

func (f *failingStore) LoadHighScore() (int, error) { return 0, errDiskGone }

func (f *failingStore) SaveHighScore(int) error {
	f.saves++
	return errDiskGone
}

// recordingSink keeps every event it receives.
type recordingSink struct {
	events []Event
}

func (r *recordingSink) HandleEvent(e Event) { r.events = append(r.events, e) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func defaultGeometry() *PairGeometry {
	g := PairGeometryFrom(config.DefaultFlappyConfig())
	return &g
}

func newTestSim(t testing.TB, rng Rand, store HighScoreStore) *Simulation {
	t.Helper()
	sim, err := NewSimulation(config.DefaultFlappyConfig(), Options{Rand: rng, Store: store})
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	return sim
}
