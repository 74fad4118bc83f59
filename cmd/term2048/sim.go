package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/sim"
)

var (
	flagGames    int
	flagMaxMoves int
	flagBoard    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless games with random moves",
	Long: `Play games without a terminal, choosing a random legal move each turn,
and print a summary. With --seed the batch is reproducible. --board starts
every game from the given position (rows separated by '/').

Examples:
  term2048 sim
  term2048 sim --games 1000 --seed 42
  term2048 sim --max-moves 200
  term2048 sim --board "1024 1024 0 0/0 0 0 0/0 0 0 0/0 0 0 0"`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = until lost)")
	simCmd.Flags().StringVar(&flagBoard, "board", "", "Start position, e.g. \"2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 0\"")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagGames <= 0 {
		return fmt.Errorf("sim: --games must be positive, got %d", flagGames)
	}

	opts := sim.Options{
		Games:    flagGames,
		Seed:     flagSeed,
		MaxMoves: flagMaxMoves,
	}
	if flagBoard != "" {
		start, err := engine.ParseBoard(flagBoard)
		if err != nil {
			return fmt.Errorf("sim: --board: %w", err)
		}
		opts.Start = &start
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Debug("simulating", "games", flagGames, "seed", flagSeed, "max_moves", flagMaxMoves, "board", flagBoard)
	sum, err := sim.Run(ctx, opts)
	if err != nil {
		logger.Warn("simulation interrupted", "games", sum.Games)
	}

	fmt.Printf("Games:        %d\n", sum.Games)
	fmt.Printf("Best score:   %d\n", sum.BestScore)
	fmt.Printf("Avg score:    %.1f\n", sum.AvgScore)
	fmt.Printf("Avg moves:    %.1f\n", sum.AvgMoves)
	fmt.Printf("Reached 2048: %d\n", sum.Reached)
	fmt.Println()
	fmt.Println("Max tile distribution:")
	for _, tc := range sum.TileCounts() {
		fmt.Printf("  %5d  %d\n", tc[0], tc[1])
	}
	return nil
}
