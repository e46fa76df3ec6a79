package config

import (
	"bytes"
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig is the built-in Flappy tuning. defaults/flappy.yaml
// carries the same values for users to copy.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:      480,
			Height:     853,
			GroundTopY: 120,
		},
		Physics: FlappyPhysics{
			Gravity:       -900,
			FlapForce:     450,
			PipeSpeed:     -250,
			Rotation:      true,
			MaxUpAngle:    25,
			RotationAccel: -200,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:   104,
			PipeHeight:  640,
			GapHeight:   200,
			PairSpacing: 480,
			Margin:      40,
		},
		Player: FlappyPlayer{
			Width:  68,
			Height: 48,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
		Theme: FlappyTheme{
			Body:    "bright_yellow",
			Nose:    "orange",
			Pipe:    "green",
			PipeCap: "bright_green",
			Ground:  "yellow",
			Dirt:    "orange",
			Score:   "bright_white",
			Best:    "bright_green",
		},
	}
}

// DefaultFlappyYAML returns the embedded defaults file.
func DefaultFlappyYAML() []byte {
	return bytes.Clone(defaultFlappyYAML)
}
