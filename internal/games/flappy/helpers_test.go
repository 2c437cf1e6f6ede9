package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// cycleRand replays fixed sequences, wrapping around when exhausted.
type cycleRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *cycleRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *cycleRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// safeRand places every gap at 210..360 and every power-up below the gap at
// y=410, clear of a player hovering at the start height.
func safeRand() *cycleRand {
	return &cycleRand{floats: []float64{0.5, 0.5, 0.9, 0.9, 0.5}}
}

type audioRecorder struct {
	cues   []audio.Cue
	volume int
}

func (a *audioRecorder) Play(c audio.Cue) { a.cues = append(a.cues, c) }
func (a *audioRecorder) SetVolume(v int)  { a.volume = v }
func (a *audioRecorder) count(c audio.Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type runRecorder struct {
	runs []storage.Run
}

func (r *runRecorder) SaveRun(run storage.Run) (string, error) {
	r.runs = append(r.runs, run)
	return "run", nil
}

type harness struct {
	s     *Session
	clk   *clock.Manual
	kv    *storage.Memory
	audio *audioRecorder
	runs  *runRecorder
	cfg   config.FlappyConfig
}

func newHarness(t *testing.T, cfg config.FlappyConfig, rng Rand) *harness {
	t.Helper()
	h := &harness{
		clk:   clock.NewManual(),
		kv:    storage.NewMemory(),
		audio: &audioRecorder{},
		runs:  &runRecorder{},
		cfg:   cfg,
	}
	s, err := NewSession(Options{
		Config:      cfg,
		Store:       h.kv,
		Audio:       h.audio,
		Clock:       h.clk,
		Rand:        rng,
		SceneryRand: &cycleRand{floats: []float64{0.3, 0.7}, ints: []int{1, 4}},
		Runs:        h.runs,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	h.s = s
	t.Cleanup(s.Close)
	return h
}

// hoverConfig disables gravity so the player stays at the start height.
func hoverConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.GravityUp = 0
	cfg.Physics.GravityDown = 0
	return cfg
}

func (h *harness) ticks(n int) {
	h.clk.Step(h.cfg.Session.TickInterval, n)
}

func (h *harness) after(d time.Duration) {
	h.clk.Advance(d)
}

// start selects the first avatar and begins a run.
func (h *harness) start(t *testing.T) {
	t.Helper()
	if !h.s.SelectAvatar(0) {
		t.Fatalf("SelectAvatar failed in phase %v", h.s.Phase())
	}
	h.s.Jump()
	if h.s.Phase() != PhaseRunning {
		t.Fatalf("phase = %v after start, want running", h.s.Phase())
	}
}

// crash forces the player out of the top bound on the next tick.
func (h *harness) crash(t *testing.T) {
	t.Helper()
	h.s.player = Player{Y: 16, Velocity: -6.5}
	h.ticks(1)
	if h.s.Phase() == PhaseRunning {
		t.Fatal("player did not crash")
	}
}
