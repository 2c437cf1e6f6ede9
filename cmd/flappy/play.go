package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  1-3               - Pick a bird
  Space/Up/W/Click  - Flap (the first flap starts the run)
  Enter             - Save your name after a high score
  R                 - Play again with the same bird
  C                 - Pick a different bird
  L                 - Toggle the leaderboard
  S                 - Settings (←/→ volume, T theme)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy play --config ./hard.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newFileLogger("flappy")
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(width, height),
		Audio:   audio.Nop{},
		Logger:  logger,
	}
	if dir, dirErr := config.DataDir(); dirErr == nil {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	store, err := openStore(context.Background())
	if err != nil {
		// Continue without persistence.
		logger.Warn("could not open database, using memory", "error", err)
		opts.Store = storage.NewMemory()
	} else {
		defer store.Close()
		opts.Store = store
		opts.Runs = store
	}

	if !flagMute {
		speaker := audio.NewSpeaker(logger)
		if initErr := speaker.Initialize(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer speaker.Close()
			opts.Audio = speaker
		}
	}

	return tui.Run(opts)
}
