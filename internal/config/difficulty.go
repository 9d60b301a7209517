package config

import "math"

// DifficultyManager calculates the serve speed from the current level or
// score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// game level and score.
func (d *DifficultyManager) Level(level, score int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		// Level 1 is the starting point.
		if maxAt > 1 {
			progress = float64(level-1) / (maxAt - 1)
		} else {
			progress = 1
		}
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BallSpeed returns the vertical serve speed. A disabled manager always
// returns base.
func (d *DifficultyManager) BallSpeed(base float64, level, score int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base * (1.0 + d.Level(level, score)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
