package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/profile"
	"github.com/vovakirdan/tui-flappy/internal/storage"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

// volumeStep is how much one volume key press changes the volume.
const volumeStep = 10

// Options configures a Model.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   storage.KV
	Runs    flappy.RunRecorder
	Audio   audio.Player
	Owner   string
	Logger  *log.Logger

	// ScreenshotDir receives ctrl+s dumps; empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model wrapping one game session.
type Model struct {
	session *flappy.Session
	sched   *Scheduler
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	logger  *log.Logger

	showBoard     bool
	showSettings  bool
	lastPhase     flappy.Phase
	screenshotDir string
	quitting      bool
}

// NewModel creates the session and its scheduler.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if opts.Runtime.TickInterval > 0 {
		cfg.Session.TickInterval = opts.Runtime.TickInterval
		cfg.Session.SceneryInterval = opts.Runtime.TickInterval
	}
	seed := opts.Runtime.ResolveSeed()

	sched := NewScheduler()
	sess, err := flappy.NewSession(flappy.Options{
		Config:      cfg,
		Store:       opts.Store,
		Audio:       opts.Audio,
		Clock:       sched,
		Rand:        rand.New(rand.NewSource(seed)),
		SceneryRand: rand.New(rand.NewSource(seed + 1)),
		Runs:        opts.Runs,
		Owner:       opts.Owner,
		Logger:      opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}

	in := textinput.New()
	in.Placeholder = profile.AnonymousName
	in.CharLimit = profile.MaxNameLength
	in.Prompt = ""

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	opts.Logger.Debug("session created", "seed", seed, "owner", opts.Owner)
	return Model{
		session:       sess,
		sched:         sched,
		screen:        core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:          DefaultKeyMap(),
		help:          h,
		input:         in,
		logger:        opts.Logger,
		lastPhase:     sess.Phase(),
		screenshotDir: opts.ScreenshotDir,
	}, nil
}

// Session exposes the wrapped session.
func (m Model) Session() *flappy.Session { return m.session }

// Init starts nothing; the session waits for an avatar choice.
func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case timerMsg:
		m.sched.Fire(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!m.showSettings && !m.showBoard {
			m.session.Jump()
		}
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
	}

	m = m.syncPhase()
	return m, tea.Batch(cmd, m.sched.Drain())
}

// syncPhase reacts to phase changes made by timers or input.
func (m Model) syncPhase() Model {
	phase := m.session.Phase()
	if phase == m.lastPhase {
		return m
	}
	m.lastPhase = phase
	if phase == flappy.PhaseEnteringName {
		m.input.Reset()
		m.input.Focus()
		m.showBoard, m.showSettings = false, false
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.session.Phase() == flappy.PhaseEnteringName {
		return m.handleNameKey(msg)
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	if m.showSettings {
		m.handleSettings(action, msg)
		return m, nil
	}

	switch action {
	case core.ActionJump:
		if !m.showBoard {
			m.session.Jump()
		}
	case core.ActionSelect1, core.ActionSelect2, core.ActionSelect3:
		i, _ := action.SelectIndex()
		m.session.SelectAvatar(i)
	case core.ActionRestart:
		m.session.Restart()
	case core.ActionChangePlayer:
		m.session.ChangePlayer()
	case core.ActionLeaderboard:
		m.showBoard = !m.showBoard
	case core.ActionSettings:
		m.showSettings = true
		m.showBoard = false
	}
	if msg.Type == tea.KeyEsc {
		m.showBoard = false
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEnter:
		m.session.SubmitName(m.input.Value())
		return m, nil
	case tea.KeyEsc:
		m.session.Restart()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSettings(action core.Action, msg tea.KeyMsg) {
	snap := m.session.Snapshot()
	switch action {
	case core.ActionVolumeUp:
		m.session.SetVolume(snap.Volume + volumeStep)
	case core.ActionVolumeDown:
		m.session.SetVolume(snap.Volume - volumeStep)
	case core.ActionCycleTheme:
		next := nextPreference(snap.ThemePreference)
		if err := m.session.SetThemePreference(next); err != nil {
			m.logger.Warn("could not set theme", "theme", next, "error", err)
		}
	case core.ActionSettings:
		m.showSettings = false
	}
	if msg.Type == tea.KeyEsc {
		m.showSettings = false
	}
}

// nextPreference cycles random → each registered style → random.
func nextPreference(current string) string {
	prefs := append([]string{theme.Random}, theme.Names()...)
	for i, p := range prefs {
		if p == current {
			return prefs[(i+1)%len(prefs)]
		}
	}
	return theme.Random
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.session.Close()
	return m, tea.Quit
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	drawFrame(m.screen, m.session.Snapshot(), m.overlay())
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}
	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) overlay() overlay {
	return overlay{Name: m.input.Value(), Board: m.showBoard, Settings: m.showSettings}
}

func (m Model) helpKeys() helpKeys {
	k := m.keys
	switch {
	case m.showSettings:
		return helpKeys{k.VolumeUp, k.CycleTheme, k.Settings, k.Quit}
	case m.session.Phase() == flappy.PhaseSelectingAvatar:
		return helpKeys{k.Select1, k.Leaderboard, k.Settings, k.Quit}
	case m.session.Phase() == flappy.PhaseReady, m.session.Phase() == flappy.PhaseRunning:
		return helpKeys{k.Jump, k.Leaderboard, k.Settings, k.Quit}
	case m.session.Phase() == flappy.PhaseEnteringName:
		return helpKeys{k.Confirm}
	default:
		return helpKeys{k.Restart, k.ChangePlayer, k.Leaderboard, k.Settings, k.Quit}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	drawFrame(m.screen, m.session.Snapshot(), m.overlay())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.helpKeys())
}

// Run starts the Bubble Tea program and closes the session when it exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Session().Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
