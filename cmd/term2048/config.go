package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config locations and defaults",
	Long: `Show where term2048 reads its configuration from and the values in use.

With --default the built-in config file is printed instead; redirect it to
~/.term2048/config.yaml to start customizing.

Examples:
  term2048 config
  term2048 config --default > ~/.term2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	fmt.Printf("Source:     %s\n", cfgSource)
	fmt.Printf("User file:  %s\n", config.UserPath())
	fmt.Printf("Database:   %s\n", cfg.ResolveDBPath())
	fmt.Printf("Log file:   %s\n", config.LogPath())
	fmt.Printf("Frontend:   %s\n", cfg.Frontend)
	fmt.Printf("Text color: %s\n", cfg.TextColor)
	fmt.Println()
	fmt.Println("Palette:")

	tiles := make([]uint32, 0, len(cfg.Palette))
	for v := range cfg.Palette {
		tiles = append(tiles, v)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	for _, v := range tiles {
		fmt.Printf("  %5d  %s\n", v, cfg.TileBackground(v))
	}
	return nil
}
