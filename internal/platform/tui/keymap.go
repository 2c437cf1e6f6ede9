package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Jump         key.Binding
	Select1      key.Binding
	Select2      key.Binding
	Select3      key.Binding
	Confirm      key.Binding
	Restart      key.Binding
	ChangePlayer key.Binding
	Leaderboard  key.Binding
	Settings     key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	CycleTheme   key.Binding
	Quit         key.Binding
	Screenshot   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Select1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "pick bird")),
		Select2: key.NewBinding(key.WithKeys("2")),
		Select3: key.NewBinding(key.WithKeys("3")),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save name"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ChangePlayer: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "change bird"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "leaderboard"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("←/→", "volume"),
		),
		VolumeDown: key.NewBinding(key.WithKeys("left", "-")),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s")),
	}
}

// MapKey translates a key message to an action. Screenshots are handled by
// the model directly and map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Select1):
		return core.ActionSelect1
	case key.Matches(msg, k.Select2):
		return core.ActionSelect2
	case key.Matches(msg, k.Select3):
		return core.ActionSelect3
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.ChangePlayer):
		return core.ActionChangePlayer
	case key.Matches(msg, k.Leaderboard):
		return core.ActionLeaderboard
	case key.Matches(msg, k.Settings):
		return core.ActionSettings
	case key.Matches(msg, k.VolumeUp):
		return core.ActionVolumeUp
	case key.Matches(msg, k.VolumeDown):
		return core.ActionVolumeDown
	case key.Matches(msg, k.CycleTheme):
		return core.ActionCycleTheme
	}
	return core.ActionNone
}

// helpKeys is the help.KeyMap for one screen state.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
