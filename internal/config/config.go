// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure so callers can
// tell misconfiguration apart from I/O errors.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the Flappy game.
// All lengths are world units (y-up), speeds are units per second.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Theme      FlappyTheme      `yaml:"theme"`
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width      float64 `yaml:"width"`        // W
	Height     float64 `yaml:"height"`       // H
	GroundTopY float64 `yaml:"ground_top_y"` // Body dies at or below this line
}

// FlappyPhysics defines physics parameters for the controlled body.
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Negative, units/s^2
	FlapForce     float64 `yaml:"flap_force"`     // Velocity set by a flap
	PipeSpeed     float64 `yaml:"pipe_speed"`     // Negative, leftward scroll
	Rotation      bool    `yaml:"rotation"`       // Feature-parity rotation on/off
	MaxUpAngle    float64 `yaml:"max_up_angle"`   // Degrees while rising
	RotationAccel float64 `yaml:"rotation_accel"` // Degrees/s^2 while falling
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	PipeWidth   float64 `yaml:"pipe_width"`
	PipeHeight  float64 `yaml:"pipe_height"`
	GapHeight   float64 `yaml:"gap_height"`
	PairSpacing float64 `yaml:"pair_spacing"`
	Margin      float64 `yaml:"margin"` // Minimum clearance between a gap edge and ground/ceiling
}

// FlappyPlayer defines the body's size and spawn point.
// The spawn point is the body's centre; zero values mean (W/4, H/2+100).
type FlappyPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// FlappyTheme names the terminal colour of each drawn element.
// Values are core colour names such as "green" or "bright_yellow".
type FlappyTheme struct {
	Body    string `yaml:"body"`
	Nose    string `yaml:"nose"`
	Pipe    string `yaml:"pipe"`
	PipeCap string `yaml:"pipe_cap"`
	Ground  string `yaml:"ground"`
	Dirt    string `yaml:"dirt"`
	Score   string `yaml:"score"`
	Best    string `yaml:"best"`
}

// Colors resolves every theme entry. The first unknown name is an error.
func (t FlappyTheme) Colors() (map[string]core.Color, error) {
	entries := []struct {
		key, name string
	}{
		{"body", t.Body},
		{"nose", t.Nose},
		{"pipe", t.Pipe},
		{"pipe_cap", t.PipeCap},
		{"ground", t.Ground},
		{"dirt", t.Dirt},
		{"score", t.Score},
		{"best", t.Best},
	}
	out := make(map[string]core.Color, len(entries))
	for _, e := range entries {
		c, err := core.ParseColor(e.name)
		if err != nil {
			return nil, fmt.Errorf("theme.%s: %w", e.key, err)
		}
		out[e.key] = c
	}
	return out, nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// SpawnCenter returns the body's spawn centre, applying defaults.
func (c FlappyConfig) SpawnCenter() (x, y float64) {
	x, y = c.Player.SpawnX, c.Player.SpawnY
	if x == 0 {
		x = c.World.Width / 4
	}
	if y == 0 {
		y = c.World.Height/2 + 100
	}
	return x, y
}

// GapCenterRange returns the closed interval the gap centre is drawn from.
func (c FlappyConfig) GapCenterRange() (lo, hi float64) {
	half := c.Obstacles.GapHeight / 2
	lo = c.World.GroundTopY + c.Obstacles.Margin + half
	hi = c.World.Height - c.Obstacles.Margin - half
	return lo, hi
}

// MinPipeHeight is the shortest pipe that spans from any gap edge to the
// ceiling or the ground.
func (c FlappyConfig) MinPipeHeight() float64 {
	lo, _ := c.GapCenterRange()
	return c.World.Height - (lo + c.Obstacles.GapHeight/2)
}

// Validate checks that the configuration describes a playable world.
// It fails fast on values that would otherwise produce an unspawnable
// gap range or a body that cannot fall.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"physics.flap_force", c.Physics.FlapForce},
		{"obstacles.pipe_width", c.Obstacles.PipeWidth},
		{"obstacles.pipe_height", c.Obstacles.PipeHeight},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.pair_spacing", c.Obstacles.PairSpacing},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Physics.Gravity >= 0 {
		return fmt.Errorf("%w: physics.gravity must be negative, got %v", ErrInvalidConfig, c.Physics.Gravity)
	}
	if c.Physics.PipeSpeed >= 0 {
		return fmt.Errorf("%w: physics.pipe_speed must be negative, got %v", ErrInvalidConfig, c.Physics.PipeSpeed)
	}
	if c.Obstacles.Margin < 0 {
		return fmt.Errorf("%w: obstacles.margin must not be negative, got %v", ErrInvalidConfig, c.Obstacles.Margin)
	}
	if c.World.GroundTopY < 0 || c.World.GroundTopY >= c.World.Height {
		return fmt.Errorf("%w: world.ground_top_y %v must be inside [0, %v)", ErrInvalidConfig, c.World.GroundTopY, c.World.Height)
	}
	if c.Obstacles.GapHeight >= c.World.Height {
		return fmt.Errorf("%w: obstacles.gap_height %v must be less than world.height %v",
			ErrInvalidConfig, c.Obstacles.GapHeight, c.World.Height)
	}
	if c.Player.Height >= c.World.Height-c.World.GroundTopY {
		return fmt.Errorf("%w: player.height %v does not fit above the ground", ErrInvalidConfig, c.Player.Height)
	}
	if c.Obstacles.PairSpacing <= c.Obstacles.PipeWidth {
		return fmt.Errorf("%w: obstacles.pair_spacing %v must exceed pipe_width %v",
			ErrInvalidConfig, c.Obstacles.PairSpacing, c.Obstacles.PipeWidth)
	}

	lo, hi := c.GapCenterRange()
	if hi < lo {
		return fmt.Errorf("%w: no room for a %v gap between ground %v and ceiling %v with margin %v",
			ErrInvalidConfig, c.Obstacles.GapHeight, c.World.GroundTopY, c.World.Height, c.Obstacles.Margin)
	}
	// The upper pipe of the lowest gap must reach the ceiling; the gap range
	// is symmetric, so the lower pipe of the highest gap then reaches the ground.
	if need := c.MinPipeHeight(); c.Obstacles.PipeHeight < need {
		return fmt.Errorf("%w: obstacles.pipe_height %v must be at least %v to close the sky and the ground",
			ErrInvalidConfig, c.Obstacles.PipeHeight, need)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q is not one of score, time, none",
			ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must not be negative, got %v",
			ErrInvalidConfig, c.Difficulty.Scaling.SpeedMultiplier)
	}

	if _, err := c.Theme.Colors(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
