package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/profile"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

// PipeView is a pipe as the presentation layer sees it.
type PipeView struct {
	X, Width          float64
	GapTop, GapBottom float64
	Passed            bool
	PowerUp           PowerUpView
}

// PowerUpView is a collectible's box and state.
type PowerUpView struct {
	Box       core.RectF
	Collected bool
}

// Snapshot is a read-only copy of everything needed to draw one frame.
type Snapshot struct {
	Phase         Phase
	Avatar        string
	AvatarOptions []string

	WorldW, WorldH float64
	Player         Player
	PlayerBox      core.RectF
	Pipes          []PipeView

	Score     int
	HighScore int
	Ticks     int

	Style        string
	PowerUpGlyph string
	Scenery      []theme.Sprite
	Flash        *Flash
	Confetti     []Confetti

	Leaderboard     []profile.Entry
	Volume          int
	ThemePreference string
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:           s.phase,
		Avatar:          s.avatar,
		AvatarOptions:   s.AvatarOptions(),
		WorldW:          s.cfg.World.Width,
		WorldH:          s.cfg.World.Height,
		Player:          s.player,
		PlayerBox:       PlayerRect(s.cfg.Player, s.player.Y),
		Score:           s.score,
		HighScore:       s.profile.HighScore(),
		Ticks:           s.ticks,
		Style:           s.style,
		PowerUpGlyph:    s.powerUpGlyph(),
		Leaderboard:     s.profile.Leaderboard(),
		Volume:          s.profile.Volume(),
		ThemePreference: s.profile.ThemePreference(),
	}

	for _, p := range s.pipes.pipes {
		snap.Pipes = append(snap.Pipes, PipeView{
			X:         p.X,
			Width:     s.cfg.Obstacles.Width,
			GapTop:    p.GapTop,
			GapBottom: p.GapTop + s.cfg.Obstacles.Gap,
			Passed:    p.Passed,
			PowerUp: PowerUpView{
				Box:       PowerUpRect(p, s.cfg.Obstacles, s.cfg.PowerUps),
				Collected: p.PowerUp.Collected,
			},
		})
	}
	if s.scenery != nil {
		snap.Scenery = s.scenery.Sprites()
	}
	if s.flash != nil {
		f := *s.flash
		snap.Flash = &f
	}
	if len(s.confetti) > 0 {
		snap.Confetti = make([]Confetti, len(s.confetti))
		copy(snap.Confetti, s.confetti)
	}
	return snap
}
