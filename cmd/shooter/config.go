package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sky-shooter/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a flight would use, as YAML. The output is a
complete file that can be edited and passed back with --config.

Examples:
  shooter config
  shooter config --difficulty hard
  shooter config --defaults > ~/.arcade/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyShooterPreset(&cfg, preset)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
