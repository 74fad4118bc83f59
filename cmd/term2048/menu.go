package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/palette"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu and the high-score table",
	Long: `Start term2048 in interactive menu mode.

Pick "New Game" to play; after quitting a game you return to the menu.
"High Scores" shows the local score ledger.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  term2048 menu
  term2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restoreLog := fileLogger()
	defer restoreLog()

	pal := palette.New(cfg, nil)
	width, height := terminalSize()

	for {
		res, err := tui.RunMenu(store, width, height)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		width, height = res.Width, res.Height

		switch res.Choice {
		case tui.ChoicePlay:
			snap, err := tui.Run(tui.Options{
				Seed:    flagSeed,
				Width:   width,
				Height:  height,
				Store:   store,
				Palette: pal,
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("menu: play: %w", err)
			}
			logger.Info("game finished", "score", snap.Score, "max_tile", snap.MaxTile)

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return fmt.Errorf("menu: scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
