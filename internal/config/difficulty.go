package config

// Progress is how far a match has come.
type Progress struct {
	Score int // Pairs passed
	Ticks int // Active ticks
}

// Difficulty maps match progress to a level in [0, 1] and scales the pipe
// speed by it. A disabled Difficulty stays at its initial level.
type Difficulty struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficulty creates a difficulty curve from its config.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg, start: clampUnit(cfg.InitialLevel)}
}

// Progressive reports whether the level rises during a match.
func (d Difficulty) Progressive() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case "score", "time":
		return true
	default:
		return false
	}
}

// Level returns the difficulty level for p, rising linearly from the
// initial level to 1 as p approaches progression.max_at.
func (d Difficulty) Level(p Progress) float64 {
	if !d.Progressive() {
		return d.start
	}
	return d.start + d.fraction(p)*(1-d.start)
}

// fraction is the share of max_at reached, in [0, 1].
func (d Difficulty) fraction(p Progress) float64 {
	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		return 1
	}
	v := p.Score
	if d.cfg.Progression.Type == "time" {
		v = p.Ticks
	}
	return clampUnit(float64(v) / float64(maxAt))
}

// PipeSpeed scales base by 1 + level*speed_multiplier. The sign of base is
// kept, so a leftward speed only gets faster.
func (d Difficulty) PipeSpeed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
