package core

// Action is a semantic player intent, abstracted from physical keys and
// mouse buttons.
type Action int

const (
	ActionNone         Action = iota
	ActionJump                // Space, Up, W, K, left click
	ActionSelect1             // 1 - first avatar option
	ActionSelect2             // 2 - second avatar option
	ActionSelect3             // 3 - third avatar option
	ActionConfirm             // Enter - submit name
	ActionRestart             // R - play again with the same avatar
	ActionChangePlayer        // C - pick a new avatar
	ActionLeaderboard         // L - toggle leaderboard overlay
	ActionSettings            // S - toggle settings panel
	ActionVolumeUp            // Right / + in settings
	ActionVolumeDown          // Left / - in settings
	ActionCycleTheme          // T in settings
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionChangePlayer:
		return "ChangePlayer"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionSettings:
		return "Settings"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionCycleTheme:
		return "CycleTheme"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based avatar slot for a select action.
func (a Action) SelectIndex() (int, bool) {
	switch a {
	case ActionSelect1:
		return 0, true
	case ActionSelect2:
		return 1, true
	case ActionSelect3:
		return 2, true
	}
	return 0, false
}
