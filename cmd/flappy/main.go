// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play in this terminal
//	flappy serve             - Host games over SSH
//	flappy scores            - Show the leaderboard and run history
//	flappy prefs             - Show or change volume and theme
//	flappy themes            - List obstacle themes
//	flappy sim               - Run the Lua autopilot headlessly
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Override the simulation rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.flappy/flappy.db)
//	--config <path>  - Load tunables from a YAML or TOML file
//	--log <path>     - Log file (default: ~/.flappy/flappy.log)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap an emoji bird through pipes in your terminal",
	Long: `Flappy is a terminal Flappy Bird clone. Pick a bird, flap through the
gaps, grab power-ups and get your name on the leaderboard.

Available commands:
  play     - Play in this terminal (default)
  serve    - Host games over SSH
  scores   - Show the leaderboard and run history
  prefs    - Show or change volume and theme
  themes   - List obstacle themes
  sim      - Run the Lua autopilot headlessly
  config   - Print the default configuration

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy sim --script ./pilot.lua --runs 10`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation rate in ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default ~/.flappy/flappy.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves tunables from --config and the default search path.
func loadConfig() (config.FlappyConfig, error) {
	return config.Load(flagConfig)
}

// runtimeConfig builds per-process settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.ScreenW, rc.ScreenH = width, height
	}
	rc.Seed = flagSeed
	if flagFPS > 0 {
		rc.TickInterval = time.Second / time.Duration(flagFPS)
	}
	return rc
}

// openStore opens the database named by --db.
func openStore(ctx context.Context) (*storage.Store, error) {
	return storage.Open(ctx, flagDBPath)
}

// newFileLogger logs to --log, falling back to discarding output when the
// file cannot be opened. The terminal itself is owned by the TUI.
func newFileLogger(prefix string) (*log.Logger, func()) {
	path := flagLogPath
	if path == "" {
		dir, err := config.DataDir()
		if err != nil {
			return log.New(io.Discard), func() {}
		}
		path = filepath.Join(dir, "flappy.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel(),
	})
	return logger, func() { f.Close() }
}

// newStderrLogger is used by non-interactive commands.
func newStderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel(),
	})
}

func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
