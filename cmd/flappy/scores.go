package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/profile"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagOwner  string
	flagBrowse bool
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and run history",
	Long: `Display the leaderboard, high score, run statistics and the most recent
runs. Use --owner to inspect an SSH user's records.

Examples:
  flappy scores
  flappy scores --recent 20
  flappy scores --owner alice --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagOwner, "owner", "", "SSH user whose records to show (empty = local player)")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse run history in an interactive table")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

// ownerKV returns the profile keys for owner, matching how the SSH server
// namespaces them.
func ownerKV(store storage.KV, owner string) storage.KV {
	if owner == "" {
		return store
	}
	return storage.Namespace(store, "user/"+owner)
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := openStore(context.Background())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(flagOwner); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, flagOwner, width, height)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prof := profile.Load(ownerKV(store, flagOwner), cfg.Session.LeaderboardSize, newStderrLogger("flappy"))
	return printScores(cmd.OutOrStdout(), prof, store, flagOwner, flagRecent)
}

func printScores(w io.Writer, prof *profile.Profile, store *storage.Store, owner string, recent int) error {
	title := "Leaderboard"
	if owner != "" {
		title += " - " + owner
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	board := prof.Leaderboard()
	if len(board) == 0 {
		fmt.Fprintln(w, "  No entries yet.")
	}
	for i, e := range board {
		fmt.Fprintf(w, "  %d. %s %-16s %6s\n", i+1, e.Emoji, e.Name, humanize.Comma(int64(e.Score)))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %s\n", humanize.Comma(int64(prof.HighScore())))

	stats, err := store.Stats(owner)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if stats.Runs == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No runs recorded yet. Run 'flappy' to play!")
		return nil
	}
	fmt.Fprintf(w, "Runs: %s  Average: %.1f  Total: %s  Last played: %s\n",
		humanize.Comma(int64(stats.Runs)), stats.AvgScore,
		humanize.Comma(stats.TotalScore), humanize.Time(stats.LastPlayed))

	if recent <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(owner, recent)
	if err != nil {
		return fmt.Errorf("reading runs: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent runs:")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-14s %s %-16s %5d  %s\n",
			humanize.Time(r.CreatedAt), r.Avatar, player, r.Score, r.Style)
	}
	return nil
}

// dataDirHint is shown by commands that touch user files.
func dataDirHint() string {
	dir, err := config.DataDir()
	if err != nil {
		return "~/.flappy"
	}
	return dir
}
