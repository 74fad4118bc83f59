// term2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	term2048                  - Play (same as `term2048 play`)
//	term2048 play [--classic] - Play a game
//	term2048 menu             - Start menu with the high-score table
//	term2048 scores           - Print the score ledger
//	term2048 sim              - Headless random playouts
//	term2048 config           - Show the active config or the default file
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.term2048/scores.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs.
	cfg       config.Config
	cfgSource string
	logger    *log.Logger
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys or WASD. Equal tiles merge into their
sum; reach a 2048 tile to win, then keep going for a higher score.

Available commands:
  play     - Play a game (default)
  menu     - Start menu with high scores
  scores   - Print the score ledger
  sim      - Headless random playouts
  config   - Show config locations and defaults

Environment (also read from ./.env):
  TERM2048_DB, TERM2048_CONFIG, TERM2048_LOG_LEVEL

Examples:
  term2048
  term2048 play --classic
  term2048 --seed 42 play
  term2048 scores --limit 20`,
	PersistentPreRunE: setup,
	RunE:              runPlay,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.term2048/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup fills unset flags from the environment, loads the config and
// creates the stderr logger.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.Getenv(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfigPath = config.Getenv(config.EnvConfig, flagConfigPath)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.Getenv(config.EnvLogLevel, flagLogLevel)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
		Level:           level,
	})

	loaded, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	for _, skipErr := range loaded.Skipped {
		logger.Warn("ignoring config file", "error", skipErr)
	}
	cfg = loaded.Config
	cfgSource = loaded.Source
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	logger.Debug("config loaded", "source", cfgSource, "frontend", cfg.Frontend, "db", cfg.ResolveDBPath())
	return nil
}

// openStore opens the score ledger. Failures are logged and the game runs
// without one.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.ResolveDBPath())
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// fileLogger redirects logging to the log file while a full-screen frontend
// owns the terminal. The returned func restores stderr logging.
func fileLogger() func() {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("could not create log directory", "error", err)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "path", path, "error", err)
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
