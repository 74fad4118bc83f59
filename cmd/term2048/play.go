package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/classic"
	"github.com/vovakirdan/term2048/internal/platform/palette"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var flagClassic bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD - Slide the tiles
  R           - Start a new game
  H/I         - Toggle the controls panel
  Q/Ctrl+C    - Quit

The frontend comes from the config file ("tui" by default).
--classic forces the raw-terminal frontend.

Examples:
  term2048 play
  term2048 play --classic
  term2048 --seed 7 play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	const usage = "Use the raw-terminal frontend"
	playCmd.Flags().BoolVar(&flagClassic, "classic", false, usage)
	rootCmd.Flags().BoolVar(&flagClassic, "classic", false, usage)
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	frontend := cfg.Frontend
	if flagClassic {
		frontend = config.FrontendClassic
	}

	restoreLog := fileLogger()
	var (
		snap game.Snapshot
		err  error
	)
	switch frontend {
	case config.FrontendClassic:
		snap, err = classic.Run(classic.Options{
			Seed:   flagSeed,
			Config: cfg,
			Store:  store,
			Logger: logger,
		})
	default:
		width, height := terminalSize()
		snap, err = tui.Run(tui.Options{
			Seed:    flagSeed,
			Width:   width,
			Height:  height,
			Store:   store,
			Palette: palette.New(cfg, nil),
			Logger:  logger,
		})
	}
	restoreLog()

	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	printSummary(snap)
	return nil
}

// printSummary reports the last game after the terminal is restored.
func printSummary(s game.Snapshot) {
	fmt.Printf("Score: %d  Max tile: %d  Moves: %d\n", s.Score, s.MaxTile, s.Moves)
	if s.Reached {
		fmt.Println("You reached 2048!")
	}
	if s.Best > 0 {
		fmt.Printf("Best: %d\n", s.Best)
	}
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return core.MinScreenW, core.MinScreenH
}
