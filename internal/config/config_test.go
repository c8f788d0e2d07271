package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseShooter(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded YAML and DefaultShooterConfig() disagree:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := "enemies:\n  min_speed: -15\n  max_speed: -5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Enemies.MinSpeed != -15 {
		t.Errorf("min_speed = %d, expected -15", cfg.Enemies.MinSpeed)
	}
	// Keys absent from the file keep their defaults
	if cfg.Enemies.Interval != 0.25 || cfg.World.Width != 800 {
		t.Errorf("partial file should keep defaults, got interval=%g width=%g", cfg.Enemies.Interval, cfg.World.Width)
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing explicit config should be an error")
	}
}

func TestLoadShooterInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "clouds:\n  min_speed: -2\n  max_speed: -9\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadShooter(path)
	if err == nil || !strings.Contains(err.Error(), "clouds.min_speed") {
		t.Errorf("expected clouds speed validation error, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyShooterPreset(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyNormal)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.3 {
		t.Errorf("normal preset should enable progression at 0.3, got %+v", cfg.Difficulty)
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyHard)
	if cfg.Enemies.MaxSpeed != hardMaxEnemySpeed {
		t.Errorf("hard preset max_speed = %d, expected %d", cfg.Enemies.MaxSpeed, hardMaxEnemySpeed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	cfg = DefaultShooterConfig()
	cfg.Difficulty.Enabled = true
	ApplyShooterPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultShooterConfig()
	ApplyShooterPreset(&cfg, "")
	if cfg != DefaultShooterConfig() {
		t.Error("empty preset should not change the config")
	}
}

func TestDifficultySpeedFactor(t *testing.T) {
	disabled := NewDifficultyManager(DefaultShooterConfig().Difficulty)
	if f := disabled.SpeedFactor(1000, 100000); f != 1.0 {
		t.Errorf("disabled progression should keep factor 1, got %f", f)
	}

	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})
	if f := d.SpeedFactor(0, 0); f != 1.0 {
		t.Errorf("factor at start = %f, expected 1", f)
	}
	if f := d.SpeedFactor(0, 50); f != 1.25 {
		t.Errorf("factor halfway = %f, expected 1.25", f)
	}
	if f := d.SpeedFactor(0, 500); f != 1.5 {
		t.Errorf("factor past max = %f, expected 1.5", f)
	}
}
