// shooter is a side-scrolling sky shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter play             - Fly in the terminal (--window for a desktop window)
//	shooter menu             - Pick a difficulty interactively
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show high scores
//	shooter config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/shooter.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--assets <dir>        - Load sounds/*.wav from dir instead of synthesizing them
//	--log-file <path>     - Write logs to a file
//	--profile <kind>      - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagAssets     string
	flagLogFile    string
	flagProfile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Sky Shooter - dodge missiles in your terminal",
	Long: `Sky Shooter is a side-scrolling arcade game. Steer your jet through
the sky and dodge the missiles flying in from the right.

Available commands:
  play     - Start a flight directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the game configuration

Examples:
  shooter play
  shooter play --window
  shooter menu --difficulty hard
  shooter serve --ssh :2222
  shooter scores --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.arcade/shooter.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound")
	flags.StringVar(&flagAssets, "assets", "", "Directory containing sounds/*.wav")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagProfile, "profile", "", "Profile mode: cpu or mem")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
