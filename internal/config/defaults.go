package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			SpawnMargin: 80,
			SpeedScale:  60, // Speeds are tuned per frame at 60 FPS
		},
		Player: PlayerConfig{
			Width:     60,
			Height:    30,
			StartLeft: 10,
			MoveSpeed: 5,
		},
		Enemies: SpawnConfig{
			Interval:  0.25,
			Width:     50,
			Height:    16,
			MinSpeed:  -20,
			MaxSpeed:  -5,
			TopMargin: 10,
		},
		Clouds: SpawnConfig{
			Interval:  1.0,
			Width:     90,
			Height:    36,
			MinSpeed:  -10,
			MaxSpeed:  -5,
			TopMargin: 10,
		},
		Session: SessionConfig{
			CollisionDelay: 1.0,
		},
		Input: InputConfig{
			HoldWindowMS:  350,
			RepeatDelayMS: 700,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
