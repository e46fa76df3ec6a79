// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling body airborne with flaps and scores by passing
// through the gaps of a recycled stream of pipe pairs.
package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Registered game IDs.
const (
	ID     = "flappy"
	LiteID = "flappy_lite"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the effective config for a variant: file, then
// difficulty preset, then the variant's rotation switch.
func LoadConfig(rotation bool) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, difficultyPreset)
	if !rotation {
		cfg.Physics.Rotation = false
	}
	return cfg, nil
}

// Game adapts a Simulation to the platform's registry.Game contract.
// It adds pause on top of the three match phases.
type Game struct {
	id       string
	title    string
	rotation bool

	sim     *Simulation
	runtime core.RuntimeConfig
	clock   core.Clock
	paused  bool
	palette Palette
	err     error // Config error from the last Reset

	store  HighScoreStore
	sink   EventSink
	logger *log.Logger
}

// New creates the feature-parity variant with cosmetic rotation.
func New() *Game {
	return &Game{id: ID, title: "Flappy Bird", rotation: true}
}

// NewLite creates the minimal variant without rotation.
func NewLite() *Game {
	return &Game{id: LiteID, title: "Flappy Lite", rotation: false}
}

// Description summarizes the variant for menus and listings.
func (g *Game) Description() string {
	if g.rotation {
		return "classic rules, body tilts with its flight"
	}
	return "classic rules, no rotation"
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetHighScoreStore sets where the best score is loaded from and saved to.
// It takes effect on the next Reset.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	g.store = s
}

// SetEventSink sets the receiver of flap, score and death events.
func (g *Game) SetEventSink(s EventSink) {
	g.sink = s
}

// SetLogger sets the logger passed to the simulation.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Reset builds a fresh simulation from the current config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = runtime.TickClock()
	g.paused = false
	g.sim = nil

	if g.store == nil {
		g.store = &MemoryHighScores{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	cfg, err := LoadConfig(g.rotation)
	if err != nil {
		g.err = err
		g.logger.Error("cannot load config", "game", g.id, "err", err)
		return
	}

	sim, err := NewSimulation(cfg, Options{
		Rand:   rand.New(rand.NewSource(runtime.Seed)),
		Store:  g.store,
		Sink:   g.sink,
		Logger: g.logger.With("game", g.id),
	})
	if err != nil {
		g.err = err
		g.logger.Error("cannot start simulation", "game", g.id, "err", err)
		return
	}
	g.palette, _ = PaletteFrom(cfg.Theme)
	g.err = nil
	g.sim = sim
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	// Pause only makes sense mid-match
	if in.Has(core.ActionPause) && g.sim.Phase() == PhaseActive {
		g.paused = !g.paused
	}

	// Always drain the clock so resuming does not replay the pause
	dt := g.clock.ElapsedSeconds()
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.TickFrom(dt, FrameInput(in))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Phase: "error", GameOver: g.err != nil}
	}
	return core.GameState{
		Score:     g.sim.Score(),
		HighScore: g.sim.HighScore(),
		Phase:     g.sim.Phase().String(),
		GameOver:  g.sim.Phase() == PhaseTerminated,
		Paused:    g.paused,
	}
}

// Snapshot returns the current frame, or false before a successful Reset.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.sim == nil {
		return Snapshot{}, false
	}
	return g.sim.Snapshot(), true
}

// Err returns the error that prevented the last Reset from starting a match.
func (g *Game) Err() error {
	return g.err
}

// Register both variants with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(LiteID, func() registry.Game {
		return NewLite()
	})
}
