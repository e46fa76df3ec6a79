package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// RecycleEvents reports which pairs were respawned during a Stream tick.
type RecycleEvents struct {
	Recycled [2]bool
}

// Count returns how many pairs were respawned.
func (r RecycleEvents) Count() int {
	n := 0
	for _, ok := range r.Recycled {
		if ok {
			n++
		}
	}
	return n
}

// Stream owns exactly two obstacle pairs and recycles them in place.
type Stream struct {
	pairs   [2]Pair
	geom    PairGeometry
	spacing float64
	width   float64 // World width; canonical spawns are at W and 2W
	rng     Rand
}

// NewStream creates a stream with both pairs at their canonical offsets.
func NewStream(geom PairGeometry, spacing, worldWidth float64, rng Rand) *Stream {
	s := &Stream{
		geom:    geom,
		spacing: spacing,
		width:   worldWidth,
		rng:     rng,
	}
	for i := range s.pairs {
		s.pairs[i].geom = &s.geom
	}
	s.Reset()
	return s
}

// Reset respawns both pairs at W and 2W.
func (s *Stream) Reset() {
	s.pairs[0].SpawnAt(s.width, s.rng)
	s.pairs[1].SpawnAt(2*s.width, s.rng)
}

// SetSpeed changes the scroll speed of both pairs.
func (s *Stream) SetSpeed(speed float64) {
	s.geom.Speed = speed
}

// Speed returns the current scroll speed.
func (s *Stream) Speed() float64 {
	return s.geom.Speed
}

// Tick advances both pairs, then respawns any offscreen pair one spacing
// behind the other pair's advanced position.
func (s *Stream) Tick(dt float64) RecycleEvents {
	var ev RecycleEvents
	for i := range s.pairs {
		s.pairs[i].Advance(dt)
	}
	for i := range s.pairs {
		if !s.pairs[i].IsOffscreen() {
			continue
		}
		other := s.pairs[1-i]
		s.pairs[i].SpawnAt(other.X+s.spacing, s.rng)
		ev.Recycled[i] = true
	}
	return ev
}

// CollidesWith reports whether box hits either pair.
func (s *Stream) CollidesWith(box core.Box) bool {
	return s.pairs[0].Overlaps(box) || s.pairs[1].Overlaps(box)
}

// CheckScoring returns the number of pairs passed for the first time.
func (s *Stream) CheckScoring(bodyX float64) int {
	n := 0
	for i := range s.pairs {
		if s.pairs[i].CheckAndMarkScored(bodyX) {
			n++
		}
	}
	return n
}

// Pairs returns a copy of both pairs.
func (s *Stream) Pairs() [2]Pair {
	return s.pairs
}
