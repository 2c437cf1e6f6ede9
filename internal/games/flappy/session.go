package flappy

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/profile"
	"github.com/vovakirdan/tui-flappy/internal/storage"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

// Avatars are the selectable player symbols.
var Avatars = []string{"🐦", "🦊", "🐸", "🐱", "🐰", "🦁", "🐼", "🐨", "🦄"}

// CelebrationGlyphs make up the confetti burst.
var CelebrationGlyphs = []string{"👏", "🎉", "🎊", "🥳", "🎈", "✨", "🏆"}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseSelectingAvatar Phase = iota
	PhaseReady
	PhaseRunning
	PhaseCelebrating
	PhaseEnteringName
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingAvatar:
		return "selecting-avatar"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseCelebrating:
		return "celebrating"
	case PhaseEnteringName:
		return "entering-name"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(run storage.Run) (string, error)
}

// Options configures a Session. Clock is required; everything else has a
// usable default.
type Options struct {
	Config      config.FlappyConfig
	Store       storage.KV      // Defaults to an in-memory store
	Audio       audio.Player    // Defaults to audio.Nop
	Clock       clock.Scheduler // Drives ticks, scenery and delays
	Rand        Rand            // Pipe placement, avatars and style choice
	SceneryRand Rand            // Cosmetic randomness, kept apart from Rand
	Runs        RunRecorder     // Optional run history
	Owner       string          // Run history owner, e.g. the SSH user
	Logger      *log.Logger
}

// Flash is the transient marker shown where a power-up was collected.
type Flash struct {
	X, Y  float64
	Glyph string
}

// Confetti is one glyph of the celebration burst.
type Confetti struct {
	Glyph    string
	X, Y     float64
	Scale    float64
	Rotation float64
}

// Session owns one player's game: avatar choice, runs, scoring and the
// persisted profile. It is driven by its Scheduler and by input methods and
// is not safe for concurrent use.
type Session struct {
	cfg     config.FlappyConfig
	profile *profile.Profile
	audio   audio.Player
	clk     clock.Scheduler
	rng     Rand
	decoRng Rand
	runs    RunRecorder
	owner   string
	logger  *log.Logger

	physics Physics
	pipes   *PipeManager

	phase     Phase
	avatar    string
	options   []string
	player    Player
	score     int
	ticks     int
	style     string
	lastStyle string
	scenery   theme.Scenery
	flash     *Flash
	confetti  []Confetti
	runSaved  bool
	closed    bool

	tickTask        clock.Task
	sceneryTask     clock.Task
	celebrationTask clock.Task
	flashTask       clock.Task
}

// NewSession loads the profile from opts.Store and returns a session in
// the avatar selection phase.
func NewSession(opts Options) (*Session, error) {
	if opts.Clock == nil {
		return nil, errors.New("flappy: session requires a clock")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemory()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.SceneryRand == nil {
		opts.SceneryRand = rand.New(rand.NewSource(time.Now().UnixNano() + 1))
	}

	s := &Session{
		cfg:       opts.Config,
		profile:   profile.Load(opts.Store, opts.Config.Session.LeaderboardSize, opts.Logger),
		audio:     opts.Audio,
		clk:       opts.Clock,
		rng:       opts.Rand,
		decoRng:   opts.SceneryRand,
		runs:      opts.Runs,
		owner:     opts.Owner,
		logger:    opts.Logger,
		physics:   NewPhysics(opts.Config.Physics, opts.Config.World),
		pipes:     NewPipeManager(opts.Config, opts.Rand),
		lastStyle: theme.Classic,
	}
	s.audio.SetVolume(s.profile.Volume())
	s.style = s.initialStyle()
	s.enterAvatarSelection()
	return s, nil
}

func (s *Session) initialStyle() string {
	if pref := s.profile.ThemePreference(); pref != theme.Random && theme.Exists(pref) {
		return pref
	}
	return theme.Classic
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// AvatarOptions returns the avatars offered for selection.
func (s *Session) AvatarOptions() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

// SelectAvatar picks option i and moves to the ready phase.
func (s *Session) SelectAvatar(i int) bool {
	if s.closed || s.phase != PhaseSelectingAvatar || i < 0 || i >= len(s.options) {
		return false
	}
	s.avatar = s.options[i]
	s.phase = PhaseReady
	s.logger.Debug("avatar selected", "avatar", s.avatar)
	return true
}

// Jump starts a run from the ready phase or flaps while running. It is a
// no-op in every other phase.
func (s *Session) Jump() {
	if s.closed {
		return
	}
	switch s.phase {
	case PhaseReady:
		s.startRun()
	case PhaseRunning:
		if s.physics.Jump(&s.player) {
			s.audio.Play(audio.CueJump)
		}
	}
}

// SubmitName records the finished run on the leaderboard and starts the
// celebration. The name is trimmed and capped; empty becomes "Anonymous".
func (s *Session) SubmitName(name string) bool {
	if s.closed || s.phase != PhaseEnteringName {
		return false
	}
	entry := profile.Entry{Name: profile.CleanName(name), Score: s.score, Emoji: s.avatar}
	s.profile.Insert(entry)
	s.finishRun(entry.Name)

	s.phase = PhaseCelebrating
	s.confetti = s.burst()
	s.audio.Play(audio.CueCelebration)
	clock.Stop(s.celebrationTask)
	s.celebrationTask = s.clk.After(s.cfg.Session.CelebrationDelay, s.endCelebration)
	s.logger.Info("leaderboard entry", "name", entry.Name, "score", entry.Score)
	return true
}

// Restart abandons the finished run and returns to the ready phase with the
// same avatar. Allowed after game over, during name entry and during the
// celebration.
func (s *Session) Restart() bool {
	if s.closed {
		return false
	}
	switch s.phase {
	case PhaseGameOver, PhaseEnteringName, PhaseCelebrating:
	default:
		return false
	}
	s.resetRun()
	s.phase = PhaseReady
	return true
}

// ChangePlayer resets like Restart and also clears the avatar. It is also
// allowed from the ready phase.
func (s *Session) ChangePlayer() bool {
	if s.closed {
		return false
	}
	switch s.phase {
	case PhaseReady, PhaseGameOver, PhaseEnteringName, PhaseCelebrating:
	default:
		return false
	}
	s.resetRun()
	s.enterAvatarSelection()
	return true
}

// SetVolume persists the volume and applies it to audio. Returns the
// clamped value.
func (s *Session) SetVolume(v int) int {
	v = s.profile.SetVolume(v)
	s.audio.SetVolume(v)
	return v
}

// SetThemePreference persists pref, which must be "random" or a registered
// style. A fixed style also replaces the current style at once.
func (s *Session) SetThemePreference(pref string) error {
	if !theme.ValidPreference(pref) {
		return fmt.Errorf("flappy: unknown theme %q", pref)
	}
	s.profile.SetThemePreference(pref)
	if pref != theme.Random && pref != s.style {
		s.style = pref
		if s.phase == PhaseRunning {
			s.scenery = s.newScenery()
		}
	}
	return nil
}

// Close cancels every pending timer. The session ignores all input after.
func (s *Session) Close() {
	if s.closed {
		return
	}
	if s.phase == PhaseEnteringName {
		s.finishRun("")
	}
	s.stopLoops()
	clock.Stop(s.celebrationTask)
	clock.Stop(s.flashTask)
	s.celebrationTask, s.flashTask = nil, nil
	s.closed = true
}

func (s *Session) enterAvatarSelection() {
	s.avatar = ""
	shuffled := make([]string, len(Avatars))
	copy(shuffled, Avatars)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	n := min(s.cfg.Session.AvatarChoices, len(shuffled))
	s.options = shuffled[:n]
	s.phase = PhaseSelectingAvatar
}

func (s *Session) startRun() {
	s.player = s.physics.Spawn()
	s.style, s.lastStyle = theme.Pick(s.profile.ThemePreference(), s.lastStyle, s.rng)
	s.score = 0
	s.ticks = 0
	s.runSaved = false
	s.pipes.Reset()
	s.pipes.Spawn()
	s.scenery = s.newScenery()
	s.phase = PhaseRunning

	s.tickTask = s.clk.Every(s.cfg.Session.TickInterval, s.tick)
	s.sceneryTask = s.clk.Every(s.cfg.Session.SceneryInterval, s.stepScenery)
	s.logger.Debug("run started", "style", s.style, "avatar", s.avatar)
}

// tick is one simulation step: physics, pipes, collision scan, then the
// scan's mutations in one pass.
func (s *Session) tick() {
	if s.closed || s.phase != PhaseRunning {
		return
	}
	s.ticks++

	next, out := s.physics.Step(s.player)
	s.player = next
	if out {
		s.gameOver("out of bounds")
		return
	}

	s.pipes.Advance()

	fatal := false
	for _, h := range Scan(s.pipes.pipes, s.player.Y, s.cfg) {
		switch h.Kind {
		case HitPipe:
			fatal = true
		case HitPowerUp:
			if s.pipes.Collect(h.Index) {
				s.collectPowerUp(s.pipes.pipes[h.Index])
			}
		case HitPassed:
			if s.pipes.MarkPassed(h.Index) {
				s.addScore(s.cfg.Obstacles.PassPoints)
			}
		}
	}
	if fatal {
		s.gameOver("pipe")
	}
}

func (s *Session) collectPowerUp(p Pipe) {
	s.addScore(s.cfg.PowerUps.Bonus)
	s.audio.Play(audio.CuePowerUp)

	box := PowerUpRect(p, s.cfg.Obstacles, s.cfg.PowerUps)
	s.flash = &Flash{X: box.X, Y: p.PowerUp.Y, Glyph: s.powerUpGlyph()}
	clock.Stop(s.flashTask)
	s.flashTask = s.clk.After(s.cfg.Session.FlashDuration, func() {
		s.flash = nil
		s.flashTask = nil
	})
}

func (s *Session) addScore(points int) {
	s.score += points
	s.profile.RecordScore(s.score)
}

func (s *Session) gameOver(reason string) {
	s.stopLoops()
	s.logger.Info("game over", "reason", reason, "score", s.score, "ticks", s.ticks)
	if s.profile.Qualifies(s.score) {
		s.phase = PhaseEnteringName
		return
	}
	s.finishRun("")
	s.phase = PhaseGameOver
}

func (s *Session) endCelebration() {
	s.celebrationTask = nil
	if s.closed || s.phase != PhaseCelebrating {
		return
	}
	s.confetti = nil
	s.phase = PhaseGameOver
}

func (s *Session) stepScenery() {
	if s.closed || s.phase != PhaseRunning || s.scenery == nil {
		return
	}
	s.scenery.Step()
}

func (s *Session) stopLoops() {
	clock.Stop(s.tickTask)
	clock.Stop(s.sceneryTask)
	s.tickTask, s.sceneryTask = nil, nil
}

// resetRun cancels pending timers before clearing run state so nothing
// scheduled for the old run can fire into the new one.
func (s *Session) resetRun() {
	if s.phase == PhaseEnteringName {
		s.finishRun("")
	}
	s.stopLoops()
	clock.Stop(s.celebrationTask)
	clock.Stop(s.flashTask)
	s.celebrationTask, s.flashTask = nil, nil

	s.player = s.physics.Spawn()
	s.score = 0
	s.ticks = 0
	s.pipes.Reset()
	s.flash = nil
	s.confetti = nil
}

// finishRun writes the run to history once.
func (s *Session) finishRun(name string) {
	if s.runSaved || s.runs == nil {
		s.runSaved = true
		return
	}
	s.runSaved = true
	_, err := s.runs.SaveRun(storage.Run{
		Owner:  s.owner,
		Player: name,
		Avatar: s.avatar,
		Style:  s.style,
		Score:  s.score,
		Ticks:  s.ticks,
	})
	if err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}

func (s *Session) burst() []Confetti {
	out := make([]Confetti, s.cfg.Session.CelebrationBurst)
	for i := range out {
		out[i] = Confetti{
			Glyph:    CelebrationGlyphs[s.decoRng.Intn(len(CelebrationGlyphs))],
			X:        s.decoRng.Float64() * s.cfg.World.Width,
			Y:        s.decoRng.Float64() * s.cfg.World.Height,
			Scale:    0.5 + s.decoRng.Float64()*1.5,
			Rotation: s.decoRng.Float64() * 360,
		}
	}
	return out
}

func (s *Session) newScenery() theme.Scenery {
	st, err := theme.Get(s.style)
	if err != nil || st.NewScenery == nil {
		return nil
	}
	return st.NewScenery(s.decoRng)
}

func (s *Session) powerUpGlyph() string {
	st, err := theme.Get(s.style)
	if err != nil {
		return "★"
	}
	return st.PowerUpGlyph
}
