package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List obstacle themes",
	Long:  `Shows the registered obstacle themes and their power-up glyphs.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) {
	w := cmd.OutOrStdout()
	styles := theme.Styles()

	maxNameLen := len("Name")
	for _, s := range styles {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintln(w, "Available themes:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxNameLen, "Name", "Title", "Power-up")
	fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxNameLen, "----", "-----", "--------")
	for _, s := range styles {
		glyph := runewidth.FillRight(s.PowerUpGlyph, 2)
		fmt.Fprintf(w, "  %-*s  %-8s  %s %s\n", maxNameLen, s.Name, s.Title, glyph, string(s.PipeRune))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run 'flappy prefs set theme <name>' to pin one, or %q for a new theme every run.\n", theme.Random)
}
