package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-shooter/internal/audio"
	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/core"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

// env holds everything a command needs, built from the global flags.
type env struct {
	shooter  config.ShooterConfig
	preset   config.DifficultyPreset
	runtime  core.RuntimeConfig
	store    *storage.Store
	sound    *audio.SoundManager
	logger   *log.Logger
	logFile  *os.File
	profiler interface{ Stop() }
}

// envOptions selects the optional parts of an env.
type envOptions struct {
	audio bool
	store bool
}

// newEnv loads configuration and opens the collaborators. Bad flags, a bad
// config file or missing sound assets are errors; a missing database or
// audio device only disables that feature.
func newEnv(opts envOptions) (*env, error) {
	e := &env{sound: audio.NewSoundManager()}

	if err := e.openLogger(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.shooter = cfg
	e.preset = preset
	e.runtime = runtimeConfig()

	if opts.audio && !flagMute {
		if err := e.openAudio(); err != nil {
			e.Close()
			return nil, err
		}
	}

	if opts.store {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			e.logger.Warn("could not open scores database", "error", err)
		} else {
			e.store = store
		}
	}

	if err := e.startProfile(); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func (e *env) openLogger() error {
	if flagLogFile == "" {
		e.logger = log.New(io.Discard)
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	e.logFile = f
	e.logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           log.DebugLevel,
	})
	return nil
}

func (e *env) openAudio() error {
	if flagAssets != "" {
		if err := e.sound.LoadAssets(flagAssets); err != nil {
			return err
		}
	}
	if err := e.sound.Initialize(); err != nil {
		// No audio device: play on in silence
		e.logger.Warn("audio disabled", "error", err)
	}
	return nil
}

func (e *env) startProfile() error {
	switch flagProfile {
	case "":
	case "cpu":
		e.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		e.profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}
	return nil
}

// holdWindow returns the configured terminal key hold window.
func (e *env) holdWindow() time.Duration {
	return time.Duration(e.shooter.Input.HoldWindowMS) * time.Millisecond
}

func (e *env) repeatDelay() time.Duration {
	return time.Duration(e.shooter.Input.RepeatDelayMS) * time.Millisecond
}

// Close releases everything newEnv opened.
func (e *env) Close() {
	if e.profiler != nil {
		e.profiler.Stop()
	}
	e.sound.Cleanup()
	if e.store != nil {
		e.store.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
