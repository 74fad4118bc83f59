package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the score ledger",
	Long: `Display the best recorded games and overall statistics.

Examples:
  term2048 scores
  term2048 scores --limit 25
  term2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded game")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagLimit <= 0 {
		return fmt.Errorf("scores: --limit must be positive, got %d", flagLimit)
	}

	store, err := storage.Open(cfg.ResolveDBPath())
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("scores: %w", err)
		}
		fmt.Println("Score ledger cleared.")
		return nil
	}

	results, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'term2048' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "Rank", "Score", "Max tile", "Moves", "2048", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "----", "-----", "--------", "-----", "----", "----")

	for i, r := range results {
		reached := ""
		if r.Reached {
			reached = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-4s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, reached, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Best tile: %d  Reached 2048: %d\n",
			stats.Games, stats.HighScore, stats.AvgScore, stats.BestTile, stats.Wins)
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
