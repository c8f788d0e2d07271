// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all configuration for the side-scrolling shooter.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    SpawnConfig      `yaml:"enemies"`
	Clouds     SpawnConfig      `yaml:"clouds"`
	Session    SessionConfig    `yaml:"session"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield. Coordinates are in world
// pixels with the origin at the bottom-left corner.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin int     `yaml:"spawn_margin"` // How far past the right edge entities may appear
	SpeedScale  float64 `yaml:"speed_scale"`  // Converts per-frame speeds to per-second speeds
}

// PlayerConfig defines the player's jet.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StartLeft float64 `yaml:"start_left"`
	MoveSpeed float64 `yaml:"move_speed"` // Per-frame speed while a direction key is held
}

// SpawnConfig defines one periodic spawner (enemies or clouds).
type SpawnConfig struct {
	Interval  float64 `yaml:"interval"` // Seconds between spawns
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinSpeed  int     `yaml:"min_speed"` // Most negative horizontal speed
	MaxSpeed  int     `yaml:"max_speed"` // Least negative horizontal speed
	TopMargin int     `yaml:"top_margin"`
}

// SessionConfig defines session-wide timings.
type SessionConfig struct {
	CollisionDelay float64 `yaml:"collision_delay"` // Seconds between collision and game over
}

// InputConfig defines frontend input behavior.
type InputConfig struct {
	// HoldWindowMS is how long a terminal key counts as held after its last
	// repeat. Terminals never report releases, so one is synthesized.
	HoldWindowMS int `yaml:"hold_window_ms"`
	// RepeatDelayMS is how long a fresh press counts as held before the
	// terminal starts auto-repeating it.
	RepeatDelayMS int `yaml:"repeat_delay_ms"`
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a CLI string to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("world.spawn_margin must not be negative"))
	}
	if c.World.SpeedScale <= 0 {
		errs = append(errs, fmt.Errorf("world.speed_scale must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive"))
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("player does not fit in the world"))
	}
	spawners := []struct {
		name string
		s    SpawnConfig
	}{{"enemies", c.Enemies}, {"clouds", c.Clouds}}
	for _, sp := range spawners {
		name, s := sp.name, sp.s
		if s.Interval <= 0 {
			errs = append(errs, fmt.Errorf("%s.interval must be positive", name))
		}
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive", name))
		}
		if s.MinSpeed > s.MaxSpeed {
			errs = append(errs, fmt.Errorf("%s.min_speed %d exceeds max_speed %d", name, s.MinSpeed, s.MaxSpeed))
		}
		if float64(2*s.TopMargin) > c.World.Height {
			errs = append(errs, fmt.Errorf("%s.top_margin leaves no room to spawn", name))
		}
	}
	if c.Input.HoldWindowMS < 0 || c.Input.RepeatDelayMS < 0 {
		errs = append(errs, fmt.Errorf("input windows must not be negative"))
	}
	if c.Session.CollisionDelay < 0 {
		errs = append(errs, fmt.Errorf("session.collision_delay must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid shooter config: %w", err)
	}
	return nil
}
