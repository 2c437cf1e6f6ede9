package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// farPowerUp keeps the collectible well away from the player.
var farPowerUp = PowerUp{Offset: 500, Y: 30}

func kinds(hits []Hit) []HitKind {
	out := make([]HitKind, len(hits))
	for i, h := range hits {
		out[i] = h.Kind
	}
	return out
}

func TestScanPipeCollision(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gapTop := 200.0 // gap spans 200..350

	tests := []struct {
		name  string
		pipeX float64
		y     float64
		fatal bool
	}{
		{"inside gap", 120, 250, false},
		{"grazing top within tolerance", 120, 198.5, false},
		{"above gap", 120, 197, true},
		{"grazing bottom within tolerance", 120, 331, false},
		{"below gap", 120, 333, true},
		{"pipe right of player", 170, 100, false},
		{"pipe touching right edge", 169.9, 100, true},
		{"pipe left of player", 90, 100, false},
		{"pipe overlapping left edge", 90.1, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipes := []Pipe{{X: tt.pipeX, GapTop: gapTop, PowerUp: farPowerUp}}
			hits := Scan(pipes, tt.y, cfg)
			got := false
			for _, h := range hits {
				if h.Kind == HitPipe {
					got = true
				}
			}
			if got != tt.fatal {
				t.Errorf("fatal = %v, want %v (hits %v)", got, tt.fatal, kinds(hits))
			}
		})
	}
}

func TestScanIgnoresPassedPipes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipes := []Pipe{{X: 120, GapTop: 200, Passed: true, PowerUp: farPowerUp}}
	if hits := Scan(pipes, 50, cfg); len(hits) != 0 {
		t.Errorf("hits = %v, want none for a passed pipe", kinds(hits))
	}
}

func TestScanPowerUp(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	// Pipe at 0 puts the power-up box at x = 60 + offset.
	tests := []struct {
		name      string
		pu        PowerUp
		y         float64
		collected bool
	}{
		{"overlapping", PowerUp{Offset: 80, Y: 260}, 250, true},
		{"touching left edge", PowerUp{Offset: 110, Y: 260}, 250, false},
		{"touching top edge", PowerUp{Offset: 80, Y: 285}, 250, false},
		{"already collected", PowerUp{Offset: 80, Y: 260, Collected: true}, 250, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipes := []Pipe{{X: 0, GapTop: 200, Passed: true, PowerUp: tt.pu}}
			got := false
			for _, h := range Scan(pipes, tt.y, cfg) {
				if h.Kind == HitPowerUp {
					got = true
				}
			}
			if got != tt.collected {
				t.Errorf("collected = %v, want %v", got, tt.collected)
			}
		})
	}
}

func TestScanPassed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipes := []Pipe{
		{X: 38, GapTop: 200, PowerUp: farPowerUp},
		{X: 40, GapTop: 200, PowerUp: farPowerUp},
		{X: 10, GapTop: 200, Passed: true, PowerUp: farPowerUp},
	}
	hits := Scan(pipes, 250, cfg)
	if len(hits) != 1 || hits[0] != (Hit{Index: 0, Kind: HitPassed}) {
		t.Errorf("hits = %+v, want only pipe 0 passed", hits)
	}
}

func TestScanDoesNotMutate(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipes := []Pipe{{X: 30, GapTop: 200, PowerUp: PowerUp{Offset: 70, Y: 260}}}
	before := pipes[0]
	Scan(pipes, 250, cfg)
	if pipes[0] != before {
		t.Errorf("Scan mutated pipe: %+v -> %+v", before, pipes[0])
	}
}

func TestHitKindString(t *testing.T) {
	if HitPipe.String() != "pipe" || HitPowerUp.String() != "power-up" || HitPassed.String() != "passed" {
		t.Error("unexpected HitKind names")
	}
}
