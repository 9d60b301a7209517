package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakerConfig().Difficulty)
	for _, level := range []int{1, 5, 10} {
		if got := d.BallSpeed(6.9, level, 1000); got != 6.9 {
			t.Errorf("BallSpeed(level %d) = %v, want 6.9", level, got)
		}
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultBreakerConfig().Difficulty
	cfg.Enabled = true

	tests := []struct {
		name    string
		ptype   string
		initial float64
		level   int
		score   int
		want    float64
	}{
		{"level start", "level", 0.0, 1, 0, 0.0},
		{"level half", "level", 0.0, 5, 0, 4.0 / 9.0},
		{"level max", "level", 0.0, 10, 0, 1.0},
		{"level beyond max", "level", 0.0, 12, 0, 1.0},
		{"level from initial", "level", 0.5, 1, 0, 0.5},
		{"score half", "score", 0.0, 1, 5, 0.5},
		{"none uses initial", "none", 0.3, 10, 10, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Progression.Type = tt.ptype
			c.InitialLevel = tt.initial
			d := NewDifficultyManager(c)
			if got := d.Level(tt.level, tt.score); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level(%d, %d) = %v, want %v", tt.level, tt.score, got, tt.want)
			}
		})
	}
}

func TestDifficultyBallSpeedScales(t *testing.T) {
	cfg := DefaultBreakerConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if got := d.BallSpeed(6.0, 1, 0); got != 6.0 {
		t.Errorf("BallSpeed(level 1) = %v, want 6.0", got)
	}
	if got := d.BallSpeed(6.0, 10, 0); math.Abs(got-9.0) > 1e-9 {
		t.Errorf("BallSpeed(level 10) = %v, want 9.0", got)
	}

	cfg.Enabled = false
	d = NewDifficultyManager(cfg)
	if got := d.BallSpeed(6.0, 10, 0); got != 6.0 {
		t.Errorf("disabled BallSpeed = %v, want 6.0", got)
	}
}
