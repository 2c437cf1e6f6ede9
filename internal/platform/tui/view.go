package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

// overlay is the model-owned UI state drawn on top of a frame.
type overlay struct {
	Name     string // Name being typed, shown while entering a name
	Board    bool
	Settings bool
}

// viewport maps world coordinates onto the screen. Row 0 is the HUD and the
// last row is the ground; the field sits in between.
type viewport struct {
	w, fieldH      int
	worldW, worldH float64
}

func newViewport(scr *core.Screen, snap flappy.Snapshot) viewport {
	return viewport{
		w:      scr.Width(),
		fieldH: max(scr.Height()-2, 1),
		worldW: max(snap.WorldW, 1),
		worldH: max(snap.WorldH, 1),
	}
}

func (v viewport) col(x float64) int {
	return int(x * float64(v.w) / v.worldW)
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(y*float64(v.fieldH)/v.worldH), 0, v.fieldH-1)
}

// drawFrame paints snap and ui into scr.
func drawFrame(scr *core.Screen, snap flappy.Snapshot, ui overlay) {
	scr.Clear()
	if scr.Width() < 10 || scr.Height() < 6 {
		scr.DrawText(0, 0, "window too small", core.ColorRed)
		return
	}

	style, err := theme.Get(snap.Style)
	if err != nil {
		style = theme.Style{PipeRune: '█', Palette: theme.Palette{Pipe: core.ColorGreen}}
	}
	vp := newViewport(scr, snap)

	for _, sp := range snap.Scenery {
		scr.DrawText(vp.col(sp.X), vp.row(sp.Y), sp.Glyph, style.Palette.Scenery)
	}
	for _, p := range snap.Pipes {
		drawPipe(scr, vp, p, style)
	}
	scr.DrawHLine(0, scr.Height()-1, scr.Width(), '▀', style.Palette.Ground)

	if snap.Avatar != "" && snap.Phase != flappy.PhaseSelectingAvatar {
		box := snap.PlayerBox
		scr.DrawText(vp.col(box.X), vp.row(box.Y+box.H/2), snap.Avatar, core.ColorDefault)
	}
	if f := snap.Flash; f != nil {
		scr.DrawText(vp.col(f.X), vp.row(f.Y), f.Glyph, core.ColorBrightWhite)
	}
	for _, c := range snap.Confetti {
		scr.DrawText(vp.col(c.X), vp.row(c.Y), c.Glyph, core.ColorDefault)
	}

	drawHUD(scr, snap, style)
	drawPhase(scr, snap, ui)

	switch {
	case ui.Settings:
		drawPanel(scr, "Settings", settingsLines(snap), core.ColorBrightCyan)
	case ui.Board:
		drawPanel(scr, "Leaderboard", boardLines(snap), core.ColorBrightYellow)
	}
}

func drawPipe(scr *core.Screen, vp viewport, p flappy.PipeView, style theme.Style) {
	left := vp.col(p.X)
	right := max(vp.col(p.X+p.Width), left+1)
	top := vp.row(p.GapTop)
	bottom := vp.row(p.GapBottom)

	for x := max(left, 0); x < min(right, scr.Width()); x++ {
		for y := 1; y < top; y++ {
			c := style.Palette.Pipe
			if y == top-1 {
				c = style.Palette.PipeCap
			}
			scr.SetCell(x, y, style.PipeRune, c)
		}
		for y := bottom; y <= vp.fieldH; y++ {
			c := style.Palette.Pipe
			if y == bottom {
				c = style.Palette.PipeCap
			}
			scr.SetCell(x, y, style.PipeRune, c)
		}
	}

	if !p.PowerUp.Collected {
		box := p.PowerUp.Box
		scr.DrawText(vp.col(box.X), vp.row(box.Y+box.H/2), style.PowerUpGlyph, style.Palette.PowerUp)
	}
}

func drawHUD(scr *core.Screen, snap flappy.Snapshot, style theme.Style) {
	scr.DrawHLine(0, 0, scr.Width(), ' ', core.ColorDefault)
	left := fmt.Sprintf(" Score %d  Best %d", snap.Score, snap.HighScore)
	scr.DrawText(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%s %s ", style.Title, style.PowerUpGlyph)
	scr.DrawText(scr.Width()-runewidth.StringWidth(right), 0, right, core.ColorGray)
}

func drawPhase(scr *core.Screen, snap flappy.Snapshot, ui overlay) {
	switch snap.Phase {
	case flappy.PhaseSelectingAvatar:
		parts := make([]string, len(snap.AvatarOptions))
		for i, a := range snap.AvatarOptions {
			parts[i] = fmt.Sprintf("%d %s", i+1, a)
		}
		drawPanel(scr, "Choose your bird", []string{strings.Join(parts, "   ")}, core.ColorBrightCyan)
	case flappy.PhaseReady:
		scr.DrawTextCentered(scr.Height()/2+2, "Press space to flap", core.ColorBrightWhite)
	case flappy.PhaseEnteringName:
		drawPanel(scr, fmt.Sprintf("New high score: %d", snap.Score), []string{
			"Name: " + ui.Name + "_",
			"",
			"enter to save, esc to skip",
		}, core.ColorBrightYellow)
	case flappy.PhaseCelebrating:
		scr.DrawTextCentered(scr.Height()/2, "🏆 Leaderboard updated!", core.ColorBrightYellow)
	case flappy.PhaseGameOver:
		drawPanel(scr, "Game over", []string{
			fmt.Sprintf("Score %d   Best %d", snap.Score, snap.HighScore),
		}, core.ColorBrightRed)
	}
}

func boardLines(snap flappy.Snapshot) []string {
	if len(snap.Leaderboard) == 0 {
		return []string{"No entries yet"}
	}
	lines := make([]string, len(snap.Leaderboard))
	for i, e := range snap.Leaderboard {
		lines[i] = fmt.Sprintf("%d. %s %-16s %5d", i+1, e.Emoji, e.Name, e.Score)
	}
	return lines
}

func settingsLines(snap flappy.Snapshot) []string {
	const slots = 10
	filled := core.Clamp(snap.Volume/slots, 0, slots)
	bar := strings.Repeat("■", filled) + strings.Repeat("□", slots-filled)
	return []string{
		fmt.Sprintf("Volume  %s %3d", bar, snap.Volume),
		fmt.Sprintf("Theme   %s", snap.ThemePreference),
	}
}

// drawPanel draws a bordered box with a title centered on the screen.
func drawPanel(scr *core.Screen, title string, lines []string, c core.Color) {
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	r := core.NewRect(0, 0, min(width+4, scr.Width()), min(len(lines)+4, scr.Height()))
	r.X = (scr.Width() - r.W) / 2
	r.Y = (scr.Height() - r.H) / 2

	scr.DrawRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), ' ', core.ColorDefault)
	scr.DrawBox(r, c)
	scr.DrawText(r.X+2, r.Y+1, title, c)
	for i, l := range lines {
		scr.DrawText(r.X+2, r.Y+3+i, l, core.ColorDefault)
	}
}
