package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"k", runeKey('k'), core.ActionJump},
		{"1", runeKey('1'), core.ActionSelect1},
		{"2", runeKey('2'), core.ActionSelect2},
		{"3", runeKey('3'), core.ActionSelect3},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", runeKey('r'), core.ActionRestart},
		{"c", runeKey('c'), core.ActionChangePlayer},
		{"l", runeKey('l'), core.ActionLeaderboard},
		{"s", runeKey('s'), core.ActionSettings},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionVolumeUp},
		{"minus", runeKey('-'), core.ActionVolumeDown},
		{"t", runeKey('t'), core.ActionCycleTheme},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
