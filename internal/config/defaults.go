package config

import (
	_ "embed"
)

//go:embed defaults/ballbreaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the built-in configuration. It matches the
// embedded defaults/ballbreaker.yaml.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Arena: ArenaConfig{
			Width:        800,
			Height:       600,
			HeaderHeight: 72,
			WallMargin:   36,
		},
		Paddle: PaddleConfig{
			Y:            525,
			Width:        150,
			Height:       15,
			Acceleration: 0.8,
			Damping:      0.9,
			MaxSpeed:     15.0,
			RightMargin:  15,
			SpinDivisor:  15.0,
		},
		Ball: BallConfig{
			Size:          20,
			Speed:         6.9,
			ServeSpread:   2.0,
			SpawnOffset:   72,
			RespawnOffset: 77,
		},
		Blocks: BlockConfig{
			Columns: 10,
			Width:   65,
			Height:  25,
			Padding: 10,
			OriginX: 20,
			OriginY: 100,
			Points:  10,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			MaxLevel: 10,
		},
		Input: InputConfig{
			HoldTicks: 36,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakerYAML
}
