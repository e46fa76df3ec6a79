package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// PairGeometry holds the constants shared by every obstacle pair.
type PairGeometry struct {
	PipeWidth  float64
	PipeHeight float64
	GapHeight  float64
	Speed      float64 // Negative, units per second

	// Closed range the gap centre is drawn from
	MinGapCenter float64
	MaxGapCenter float64
}

// PairGeometryFrom extracts pair constants from a game config.
func PairGeometryFrom(cfg config.FlappyConfig) PairGeometry {
	lo, hi := cfg.GapCenterRange()
	return PairGeometry{
		PipeWidth:    cfg.Obstacles.PipeWidth,
		PipeHeight:   cfg.Obstacles.PipeHeight,
		GapHeight:    cfg.Obstacles.GapHeight,
		Speed:        cfg.Physics.PipeSpeed,
		MinGapCenter: lo,
		MaxGapCenter: hi,
	}
}

// Pair is one passable gap between a lower and an upper solid zone.
// Both zones share X and move together.
type Pair struct {
	X          float64
	GapCenterY float64
	Scored     bool

	geom *PairGeometry
}

// NewPair creates an unspawned pair bound to shared geometry.
func NewPair(geom *PairGeometry) Pair {
	return Pair{geom: geom}
}

// SpawnAt moves the pair to x with a fresh random gap and clears Scored.
func (p *Pair) SpawnAt(x float64, rng Rand) {
	p.X = x
	p.GapCenterY = p.geom.MinGapCenter + rng.Float64()*(p.geom.MaxGapCenter-p.geom.MinGapCenter)
	p.Scored = false
}

// Advance scrolls the pair by dt seconds.
func (p *Pair) Advance(dt float64) {
	p.X += p.geom.Speed * dt
}

// IsOffscreen reports whether the pair's right edge has passed the left boundary.
func (p Pair) IsOffscreen() bool {
	return p.X+p.geom.PipeWidth < 0
}

// LowerZone returns the solid zone below the gap.
func (p Pair) LowerZone() core.Box {
	gapBottom := p.GapCenterY - p.geom.GapHeight/2
	return core.NewBox(p.X, gapBottom-p.geom.PipeHeight, p.geom.PipeWidth, p.geom.PipeHeight)
}

// UpperZone returns the solid zone above the gap.
func (p Pair) UpperZone() core.Box {
	gapTop := p.GapCenterY + p.geom.GapHeight/2
	return core.NewBox(p.X, gapTop, p.geom.PipeWidth, p.geom.PipeHeight)
}

// Overlaps reports whether box intersects either solid zone.
func (p Pair) Overlaps(box core.Box) bool {
	return box.Overlaps(p.LowerZone()) || box.Overlaps(p.UpperZone())
}

// CheckAndMarkScored returns true the first time bodyX passes the pair's
// midpoint after a spawn, and false on every later call until the next
// SpawnAt.
func (p *Pair) CheckAndMarkScored(bodyX float64) bool {
	if p.Scored || bodyX <= p.X+p.geom.PipeWidth/2 {
		return false
	}
	p.Scored = true
	return true
}
