package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Options carries the collaborators of a Simulation. All fields are optional.
type Options struct {
	Rand   Rand           // Defaults to a time-seeded *rand.Rand
	Store  HighScoreStore // Defaults to no persistence
	Sink   EventSink      // Receives every event Tick returns
	Logger *log.Logger    // Defaults to discard
}

// Simulation is one Flappy match loop. It is owned by a single goroutine.
type Simulation struct {
	cfg        config.FlappyConfig
	params     BodyParams
	body       Body
	stream     *Stream
	ground     Ground
	score      *ScoreTracker
	difficulty config.Difficulty
	phase      Phase
	ticks      int // Active ticks in the current match

	sink   EventSink
	logger *log.Logger
}

// NewSimulation validates cfg and builds a match in the Idle phase.
func NewSimulation(cfg config.FlappyConfig, opts Options) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Simulation{
		cfg:        cfg,
		params:     BodyParamsFrom(cfg),
		stream:     NewStream(PairGeometryFrom(cfg), cfg.Obstacles.PairSpacing, cfg.World.Width, rng),
		ground:     NewGround(cfg.World.Width),
		score:      NewScoreTracker(opts.Store, logger),
		difficulty: config.NewDifficulty(cfg.Difficulty),
		sink:       opts.Sink,
		logger:     logger,
	}
	s.body = s.spawnBody()
	return s, nil
}

func (s *Simulation) spawnBody() Body {
	cx, cy := s.cfg.SpawnCenter()
	return NewBody(cx, cy, s.params)
}

// Tick consumes one frame: the flap event first, then the phase-gated
// pipeline. It returns the events raised, which are also sent to the sink.
func (s *Simulation) Tick(dt float64, flap bool) Event {
	if dt < 0 {
		dt = 0
	}

	var ev Event
	switch s.phase {
	case PhaseIdle:
		if !flap {
			s.ground.Advance(dt, s.speed())
			return 0
		}
		s.setPhase(PhaseActive)
		ev |= EventStart
		ev |= s.advance(dt, true)

	case PhaseActive:
		ev |= s.advance(dt, flap)

	case PhaseTerminated:
		if flap {
			s.restart()
			ev |= EventRestart
		}
	}

	s.emit(ev)
	return ev
}

// TickFrom reads the flap trigger from in.
func (s *Simulation) TickFrom(dt float64, in InputSource) Event {
	return s.Tick(dt, in.FlapTriggered())
}

// advance runs one Active tick in fixed order: flap, body, stream, ground,
// collision, scoring, then the phase transition.
func (s *Simulation) advance(dt float64, flap bool) Event {
	var ev Event
	s.ticks++

	if flap {
		s.body.ApplyFlapImpulse()
		ev |= EventFlap
	}
	s.body.Integrate(dt)

	speed := s.speed()
	s.stream.SetSpeed(speed)
	if rec := s.stream.Tick(dt); rec.Count() > 0 {
		s.logger.Debug("pairs recycled", "count", rec.Count(), "tick", s.ticks)
	}
	s.ground.Advance(dt, speed)

	hit := Collides(s.body, s.stream, s.cfg.World.GroundTopY)

	if n := s.stream.CheckScoring(s.body.X); n > 0 {
		s.score.OnScoreEvent(n)
		ev |= EventScore
	}

	if hit {
		s.setPhase(PhaseTerminated)
		if s.score.CommitHighScoreIfBeaten() {
			s.logger.Info("new high score", "score", s.score.HighScore())
		}
		ev |= EventHit | EventDie
	}
	return ev
}

func (s *Simulation) speed() float64 {
	return s.difficulty.PipeSpeed(s.cfg.Physics.PipeSpeed, config.Progress{Score: s.score.Score(), Ticks: s.ticks})
}

// restart returns to Idle with a fresh body, fresh pairs and score 0.
func (s *Simulation) restart() {
	s.body = s.spawnBody()
	s.stream.Reset()
	s.ground.Reset()
	s.score.Reset()
	s.ticks = 0
	s.stream.SetSpeed(s.speed())
	s.setPhase(PhaseIdle)
}

func (s *Simulation) setPhase(p Phase) {
	s.logger.Debug("phase change", "from", s.phase, "to", p, "score", s.score.Score())
	s.phase = p
}

func (s *Simulation) emit(ev Event) {
	if s.sink == nil || ev == 0 {
		return
	}
	ev.Each(s.sink.HandleEvent)
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Score returns the current match score.
func (s *Simulation) Score() int {
	return s.score.Score()
}

// HighScore returns the best score known to the simulation.
func (s *Simulation) HighScore() int {
	return s.score.HighScore()
}

// Body returns a copy of the controlled body.
func (s *Simulation) Body() Body {
	return s.body
}

// Pairs returns a copy of both obstacle pairs.
func (s *Simulation) Pairs() [2]Pair {
	return s.stream.Pairs()
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// Snapshot is a read-only view of one frame for renderers.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int

	Body     core.Box
	Rotation float64
	Pipes    [2]PipeView
	GroundX  float64 // Floor scroll offset in [0, W)

	Width, Height, GroundTopY float64
}

// PipeView is the drawable part of a Pair.
type PipeView struct {
	Lower, Upper core.Box
	Scored       bool
}

// Snapshot captures the current frame.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Score:      s.score.Score(),
		HighScore:  s.score.HighScore(),
		Body:       s.body.Bounds(),
		Rotation:   s.body.Rotation,
		GroundX:    s.ground.Offset(),
		Width:      s.cfg.World.Width,
		Height:     s.cfg.World.Height,
		GroundTopY: s.cfg.World.GroundTopY,
	}
	for i, p := range s.stream.Pairs() {
		snap.Pipes[i] = PipeView{Lower: p.LowerZone(), Upper: p.UpperZone(), Scored: p.Scored}
	}
	return snap
}
