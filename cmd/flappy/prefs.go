package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/profile"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change volume and theme",
	Long: `Show the stored preferences, or change one with 'prefs set'.

Examples:
  flappy prefs
  flappy prefs set volume 70
  flappy prefs set theme bamboo
  flappy prefs set theme random --owner alice`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

var prefsSetCmd = &cobra.Command{
	Use:       "set <volume|theme> <value>",
	Short:     "Change a preference",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"volume", "theme"},
	RunE:      runPrefsSet,
}

func init() {
	prefsCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "SSH user whose preferences to use (empty = local player)")
	prefsCmd.AddCommand(prefsSetCmd)
}

func loadProfile() (*profile.Profile, func(), error) {
	store, err := openStore(context.Background())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	prof := profile.Load(ownerKV(store, flagOwner), cfg.Session.LeaderboardSize, newStderrLogger("flappy"))
	return prof, func() { store.Close() }, nil
}

func runPrefs(cmd *cobra.Command, _ []string) error {
	prof, done, err := loadProfile()
	if err != nil {
		return err
	}
	defer done()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "volume  %d\n", prof.Volume())
	fmt.Fprintf(w, "theme   %s\n", prof.ThemePreference())
	fmt.Fprintf(w, "data    %s\n", dataDirHint())
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	name, value := strings.ToLower(args[0]), args[1]

	// Validate before touching the database.
	switch name {
	case "volume":
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("volume must be a number from 0 to 100, got %q", value)
		}
	case "theme":
		if !theme.ValidPreference(value) {
			return fmt.Errorf("unknown theme %q (choose %s or %s)",
				value, strings.Join(theme.Names(), ", "), theme.Random)
		}
	default:
		return fmt.Errorf("unknown preference %q (volume or theme)", name)
	}

	prof, done, err := loadProfile()
	if err != nil {
		return err
	}
	defer done()

	w := cmd.OutOrStdout()
	if name == "volume" {
		v, _ := strconv.Atoi(value)
		fmt.Fprintf(w, "volume set to %d\n", prof.SetVolume(v))
		return nil
	}
	prof.SetThemePreference(value)
	fmt.Fprintf(w, "theme set to %s\n", prof.ThemePreference())
	return nil
}
