package autopilot

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func mustPilot(t *testing.T, src string) *Pilot {
	t.Helper()
	p, err := NewPilot("test.lua", src, nil)
	if err != nil {
		t.Fatalf("NewPilot: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestNewPilotRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "function decide(", "load"},
		{"missing decide", "x = 1", "does not define"},
		{"decide not a function", "decide = 3", "does not define"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPilot("bad.lua", tt.src, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDefaultScriptLoads(t *testing.T) {
	p, err := LoadPilot("", nil)
	if err != nil {
		t.Fatalf("LoadPilot: %v", err)
	}
	p.Close()
	p.Close()
}

func TestDecideSeesState(t *testing.T) {
	p := mustPilot(t, `
function decide(s)
  return s.y == 250 and s.velocity == 1.5 and s.score == 7
    and s.player.left == 150 and s.player.bottom == 270
    and s.next_pipe ~= nil and s.next_pipe.x == 300
    and s.next_pipe.gap_bottom - s.next_pipe.gap_top == 150
    and #s.pipes == 2 and s.world.height == 500
end`)

	snap := flappy.Snapshot{
		WorldW:    800,
		WorldH:    500,
		Player:    flappy.Player{Y: 250, Velocity: 1.5},
		PlayerBox: core.NewRectF(150, 250, 20, 20),
		Score:     7,
		Pipes: []flappy.PipeView{
			{X: 50, Width: 60, GapTop: 100, GapBottom: 250, Passed: true},
			{X: 300, Width: 60, GapTop: 200, GapBottom: 350},
		},
	}
	if !p.Decide(snap) {
		t.Fatal("Decide = false, want true")
	}
	snap.Score = 8
	if p.Decide(snap) {
		t.Fatal("Decide = true after changing score")
	}
}

func TestDecideWithoutPipes(t *testing.T) {
	p := mustPilot(t, `function decide(s) return s.next_pipe == nil end`)
	if !p.Decide(flappy.Snapshot{WorldH: 500}) {
		t.Fatal("next_pipe should be nil with no pipes")
	}
}

func TestDecideErrorDoesNotFlap(t *testing.T) {
	p := mustPilot(t, `function decide(s) error("boom") end`)
	for i := 0; i < 3; i++ {
		if p.Decide(flappy.Snapshot{}) {
			t.Fatal("failed decide must not flap")
		}
	}
	if p.Errors() != 3 {
		t.Fatalf("Errors = %d, want 3", p.Errors())
	}
}

type savedRuns struct {
	runs []storage.Run
}

func (r *savedRuns) SaveRun(run storage.Run) (string, error) {
	r.runs = append(r.runs, run)
	return "id", nil
}

func TestRunWithoutFlappingCrashes(t *testing.T) {
	p := mustPilot(t, `function decide(s) return false end`)
	runs := &savedRuns{}

	res, err := Run(context.Background(), p, Options{
		Config: config.DefaultFlappyConfig(),
		Seed:   1,
		Runs:   runs,
		Owner:  "sim",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Reason != ReasonCrashed {
		t.Fatalf("Reason = %q, want %q", res.Reason, ReasonCrashed)
	}
	if res.Score != 0 || res.Ticks == 0 || res.Ticks > 100 {
		t.Fatalf("unexpected result %+v", res)
	}
	if !res.Ranked {
		t.Fatal("a zero score should rank on an empty board")
	}
	if len(runs.runs) != 1 || runs.runs[0].Player != DefaultName || runs.runs[0].Owner != "sim" {
		t.Fatalf("runs = %+v", runs.runs)
	}
}

func TestRunDefaultPilotScores(t *testing.T) {
	p, err := LoadPilot("", nil)
	if err != nil {
		t.Fatalf("LoadPilot: %v", err)
	}
	defer p.Close()

	res, err := Run(context.Background(), p, Options{
		Config:   config.DefaultFlappyConfig(),
		Seed:     42,
		MaxTicks: 1000,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Reason != ReasonMaxTicks || res.Ticks != 1000 {
		t.Fatalf("result %+v, want to survive 1000 ticks", res)
	}
	if res.Score < 3 {
		t.Fatalf("Score = %d, want at least 3", res.Score)
	}
	if res.Errors != 0 {
		t.Fatalf("Errors = %d", res.Errors)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	play := func() Result {
		p, err := LoadPilot("", nil)
		if err != nil {
			t.Fatalf("LoadPilot: %v", err)
		}
		defer p.Close()
		res, err := Run(context.Background(), p, Options{
			Config:   config.DefaultFlappyConfig(),
			Seed:     7,
			MaxTicks: 600,
		})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res
	}

	a, b := play(), play()
	if a != b {
		t.Fatalf("runs differ: %+v vs %+v", a, b)
	}
}

func TestRunCancelled(t *testing.T) {
	p := mustPilot(t, `function decide(s) return false end`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, p, Options{Config: config.DefaultFlappyConfig()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Reason != ReasonCancelled || res.Ticks != 0 {
		t.Fatalf("result %+v", res)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	p := mustPilot(t, `function decide(s) return false end`)
	if _, err := Run(context.Background(), p, Options{}); err == nil {
		t.Fatal("zero config should fail validation")
	}
	if _, err := Run(context.Background(), nil, Options{Config: config.DefaultFlappyConfig()}); err == nil {
		t.Fatal("nil pilot should fail")
	}
}
