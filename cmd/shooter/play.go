package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-shooter/internal/platform/tui"
	"github.com/vovakirdan/sky-shooter/internal/platform/window"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a flight",
	Long: `Start flying right away.

Controls:
  W/S or Up/Down     - Climb / dive
  A/D or Left/Right  - Slow down / speed up
  P                  - Pause
  O                  - Show hit boxes
  Esc/Q              - Quit

Difficulty options:
  easy   - Start at lowest difficulty, missiles speed up over time
  normal - Start at 30% difficulty, missiles speed up over time
  hard   - Start at 70% difficulty, no slow missiles
  fixed  - Missiles keep their configured speeds

Examples:
  shooter play
  shooter play --window
  shooter play --difficulty hard
  shooter play --config ./my-shooter.yaml --assets ./resources`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	e, err := newEnv(envOptions{audio: true, store: true})
	if err != nil {
		return err
	}
	defer e.Close()

	game := shooter.NewPreset(e.shooter, e.preset)

	if flagWindow {
		state, err := window.Run(game, e.runtime, window.Options{
			Store:  e.store,
			Sound:  e.sound,
			Logger: e.logger,
		})
		if err != nil {
			return err
		}
		printResult(state.Score, state.GameOver)
		return nil
	}

	state, err := tui.Run(game, e.runtime, tui.Options{
		Store:       e.store,
		Sound:       e.sound,
		Logger:      e.logger,
		HoldWindow:  e.holdWindow(),
		RepeatDelay: e.repeatDelay(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	printResult(state.Score, state.GameOver)
	return nil
}

func printResult(score int, over bool) {
	if over {
		fmt.Printf("Game over! Score: %d\n", score)
	}
}
