// Package config provides YAML/TOML configuration loading and difficulty
// management for the ball breaker game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakerConfig contains every tunable constant of the simulation.
// The embedded defaults reproduce the classic 800x600 game.
type BreakerConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Blocks     BlockConfig      `yaml:"blocks" toml:"blocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ArenaConfig defines the play area in pixels.
type ArenaConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	HeaderHeight int `yaml:"header_height" toml:"header_height"` // HUD band; the ball reflects off its lower edge
	WallMargin   int `yaml:"wall_margin" toml:"wall_margin"`     // right wall sits this far left of Width
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Y            int     `yaml:"y" toml:"y"`
	Width        int     `yaml:"width" toml:"width"`
	Height       int     `yaml:"height" toml:"height"`
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"`
	Damping      float64 `yaml:"damping" toml:"damping"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`
	RightMargin  int     `yaml:"right_margin" toml:"right_margin"` // extra gap kept at the right edge
	SpinDivisor  float64 `yaml:"spin_divisor" toml:"spin_divisor"` // hit offset / divisor = new vx
}

// BallConfig defines ball size and serve parameters.
type BallConfig struct {
	Size          int     `yaml:"size" toml:"size"`
	Speed         float64 `yaml:"speed" toml:"speed"`                 // vertical speed on every serve
	ServeSpread   float64 `yaml:"serve_spread" toml:"serve_spread"`   // serve vx drawn from [-spread, spread)
	SpawnOffset   int     `yaml:"spawn_offset" toml:"spawn_offset"`   // first serve: pixels above centre
	RespawnOffset int     `yaml:"respawn_offset" toml:"respawn_offset"` // later serves: pixels above centre
}

// BlockConfig defines the block grid layout.
type BlockConfig struct {
	Columns int `yaml:"columns" toml:"columns"`
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	Padding int `yaml:"padding" toml:"padding"`
	OriginX int `yaml:"origin_x" toml:"origin_x"`
	OriginY int `yaml:"origin_y" toml:"origin_y"`
	Points  int `yaml:"points" toml:"points"`
}

// GameplayConfig defines lives and campaign length.
type GameplayConfig struct {
	Lives    int `yaml:"lives" toml:"lives"`
	MaxLevel int `yaml:"max_level" toml:"max_level"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldTicks is how long a direction stays pressed after the last key
	// repeat. Terminals never report key releases.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// DifficultyConfig defines optional ball speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level", "score", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string selects
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBreakerPreset modifies the config based on a difficulty preset.
func ApplyBreakerPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 180
		cfg.Ball.Speed = 5.5
	case DifficultyHard:
		cfg.Paddle.Width = 120
		cfg.Ball.Speed = 8.0
	}
}

// Validate checks that the configuration describes a playable game.
func (c BreakerConfig) Validate() error {
	a, p, b, bl := c.Arena, c.Paddle, c.Ball, c.Blocks

	checks := []struct {
		ok  bool
		msg string
	}{
		{a.Width > 0 && a.Height > 0, "arena dimensions must be positive"},
		{a.HeaderHeight >= 0 && a.HeaderHeight < a.Height, "header must fit inside the arena"},
		{a.WallMargin >= 0 && a.WallMargin < a.Width, "wall margin must fit inside the arena"},
		{p.Width > 0 && p.Height > 0, "paddle dimensions must be positive"},
		{p.Width+p.RightMargin <= a.Width, "paddle does not fit the arena"},
		{p.Y > a.HeaderHeight && p.Y < a.Height, "paddle must sit between header and floor"},
		{p.Acceleration > 0 && p.MaxSpeed > 0, "paddle acceleration and max speed must be positive"},
		{p.Damping > 0 && p.Damping <= 1, "paddle damping must be in (0, 1]"},
		{p.SpinDivisor > 0, "paddle spin divisor must be positive"},
		{b.Size > 0 && b.Speed > 0, "ball size and speed must be positive"},
		{b.ServeSpread >= 0, "ball serve spread must not be negative"},
		{bl.Columns > 0 && bl.Width > 0 && bl.Height > 0, "block grid must be non-empty"},
		{bl.Padding >= 0 && bl.Points >= 0, "block padding and points must not be negative"},
		{bl.OriginX+bl.Columns*(bl.Width+bl.Padding)-bl.Padding <= a.Width, "block columns exceed arena width"},
		{c.Gameplay.MaxLevel >= 1, "max level must be at least 1"},
		{bl.OriginY+c.Gameplay.MaxLevel*(bl.Height+bl.Padding) <= p.Y, "block rows of the last level reach the paddle"},
		{c.Gameplay.Lives >= 1 && c.Gameplay.Lives <= 9, "lives must be between 1 and 9"},
		{c.Input.HoldTicks >= 1, "input hold ticks must be at least 1"},
		{validProgression(c.Difficulty.Progression.Type), "difficulty progression type must be level, score or none"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

func validProgression(kind string) bool {
	switch kind {
	case "level", "score", "none":
		return true
	default:
		return false
	}
}
