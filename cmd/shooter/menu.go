package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/platform/tui"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a flight.
After a flight ends, you return to the menu to fly again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start flight
  Tab          - High scores
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30
  shooter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := newEnv(envOptions{audio: true, store: true})
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.runtime

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(e.store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game := shooter.NewPreset(e.shooter, menuPreset(menuResult.Preset))

		// Fresh seed for each flight unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if _, err := tui.Run(game, cfg, tui.Options{
			Store:       e.store,
			Sound:       e.sound,
			Logger:      e.logger,
			HoldWindow:  e.holdWindow(),
			RepeatDelay: e.repeatDelay(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}

// menuPreset lets --difficulty stand in for the menu's Classic entry.
func menuPreset(picked config.DifficultyPreset) config.DifficultyPreset {
	if picked == "" {
		return config.DifficultyPreset(flagDifficulty)
	}
	return picked
}
