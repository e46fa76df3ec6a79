package config

import "testing"

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficulty(DefaultFlappyConfig().Difficulty)

	if d.Progressive() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.PipeSpeed(-250, Progress{Score: 100, Ticks: 10000}); got != -250 {
		t.Errorf("PipeSpeed() = %f, expected -250", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score int
		level float64
		speed float64
	}{
		{0, 0.0, -100},
		{25, 0.5, -150},
		{50, 1.0, -200},
		{500, 1.0, -200}, // clamped
	}

	for _, tc := range tests {
		p := Progress{Score: tc.score, Ticks: 99999}
		if got := d.Level(p); got != tc.level {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.level)
		}
		if got := d.PipeSpeed(-100, p); got != tc.speed {
			t.Errorf("PipeSpeed(%d) = %f, expected %f", tc.score, got, tc.speed)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(Progress{}); got != 0.5 {
		t.Errorf("Level at start = %f, expected 0.5", got)
	}
	if got := d.Level(Progress{Score: 1000, Ticks: 50}); got != 0.75 {
		t.Errorf("Level halfway = %f, expected 0.75", got)
	}
}

func TestDifficultyEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		expected float64
	}{
		{"none progression holds initial", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none", MaxAt: 10}}, 0.3},
		{"zero max_at jumps to max", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score"}}, 1},
		{"initial level clamped", DifficultyConfig{InitialLevel: 4}, 1},
		{"negative initial clamped", DifficultyConfig{InitialLevel: -1}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewDifficulty(tc.cfg).Level(Progress{Score: 5}); got != tc.expected {
				t.Errorf("Level() = %f, expected %f", got, tc.expected)
			}
		})
	}
}
