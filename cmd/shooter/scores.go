package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/shooter"
	"github.com/vovakirdan/sky-shooter/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresFull  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores (--full lists every flight). Each difficulty keeps its own
leaderboard; pick one with --difficulty.

Examples:
  shooter scores
  shooter scores --difficulty hard
  shooter scores --all
  shooter scores --full
  shooter scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresFull, "full", false, "List every recorded flight instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected leaderboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresAll {
		return printAllStats(store)
	}

	gameID := shooter.ScoreID(preset)
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresFull {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, storage.DefaultTopLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - Sky Shooter (%s)\n", gameID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Dodged", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %s\n", i+1, entry.Score, entry.Dodged,
			fmt.Sprintf("%d:%02d", entry.Seconds/60, entry.Seconds%60),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Flights: %d  |  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-6s  %-8s  %s\n", "Board", "Flights", "Best", "Average", "Last played")
	ids := []string{shooter.ScoreID("")}
	for _, p := range config.Presets {
		ids = append(ids, shooter.ScoreID(p))
	}
	for _, id := range ids {
		s, ok := all[id]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-7d  %-6d  %-8.1f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
