package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	shooterFile       = "shooter.yaml"
	hardMaxEnemySpeed = -8
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Only an explicit customPath can fail; the fallbacks are best effort.
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseShooter(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ShooterConfig{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(shooterFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", shooterFile)); ok {
		return cfg, nil
	}

	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultShooterConfig(), nil
	}
	return cfg, nil
}

// parseShooter decodes YAML on top of the built-in defaults, so a partial
// file only overrides the keys it names.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

func tryLoad(path string) (ShooterConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShooterConfig{}, false
	}
	cfg, err := parseShooter(data)
	if err != nil || cfg.Validate() != nil {
		return ShooterConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "time"
	}

	// Hard mode drops the slowest missiles.
	if preset == DifficultyHard && cfg.Enemies.MaxSpeed > hardMaxEnemySpeed && cfg.Enemies.MinSpeed <= hardMaxEnemySpeed {
		cfg.Enemies.MaxSpeed = hardMaxEnemySpeed
	}
}
