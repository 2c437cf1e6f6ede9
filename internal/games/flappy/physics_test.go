package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testPhysics() Physics {
	cfg := config.DefaultFlappyConfig()
	return NewPhysics(cfg.Physics, cfg.World)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPhysicsSpawn(t *testing.T) {
	p := testPhysics().Spawn()
	if p.Y != 250 || p.Velocity != 0 || p.BoostTicks != 0 {
		t.Errorf("Spawn() = %+v, want Y=250 at rest", p)
	}
}

func TestPhysicsJumpSequence(t *testing.T) {
	ph := testPhysics()
	p := ph.Spawn()
	if !ph.Jump(&p) {
		t.Fatal("jump at start height ignored")
	}
	if p.Velocity != -3.6 || p.BoostTicks != 2 {
		t.Fatalf("after jump = %+v", p)
	}

	// Two boosted ticks, then plain gravity.
	wantV := []float64{-3.6 - 0.64 + 0.2, -3.6 - 0.64 + 0.2 - 0.64 + 0.2, -3.6 - 0.64 + 0.2 - 0.64 + 0.2 + 0.2}
	y := p.Y
	for i, want := range wantV {
		var out bool
		p, out = ph.Step(p)
		if out {
			t.Fatalf("tick %d out of bounds", i)
		}
		if !almostEqual(p.Velocity, want) {
			t.Errorf("tick %d velocity = %v, want %v", i, p.Velocity, want)
		}
		y += want
		if !almostEqual(p.Y, y) {
			t.Errorf("tick %d Y = %v, want %v", i, p.Y, y)
		}
	}
	if p.BoostTicks != 0 {
		t.Errorf("BoostTicks = %d, want 0", p.BoostTicks)
	}
}

func TestPhysicsAsymmetricGravity(t *testing.T) {
	ph := testPhysics()
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"ascending", -1, -0.8},
		{"at rest", 0, 0.25},
		{"falling", 1, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := ph.Step(Player{Y: 250, Velocity: tt.v})
			if !almostEqual(p.Velocity, tt.want) {
				t.Errorf("velocity = %v, want %v", p.Velocity, tt.want)
			}
		})
	}
}

func TestPhysicsJumpCeiling(t *testing.T) {
	ph := testPhysics()
	tests := []struct {
		y    float64
		want bool
	}{
		{20, false},
		{15, false},
		{20.01, true},
		{300, true},
	}
	for _, tt := range tests {
		p := Player{Y: tt.y, Velocity: 2}
		if got := ph.Jump(&p); got != tt.want {
			t.Errorf("Jump at Y=%v = %v, want %v", tt.y, got, tt.want)
		}
		if !tt.want && p.Velocity != 2 {
			t.Errorf("ignored jump changed velocity to %v", p.Velocity)
		}
	}
}

func TestPhysicsOutOfBoundsKeepsPosition(t *testing.T) {
	ph := testPhysics()
	tests := []struct {
		name string
		in   Player
	}{
		{"top", Player{Y: 16, Velocity: -6.5}},
		{"bottom", Player{Y: 484, Velocity: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, out := ph.Step(tt.in)
			if !out {
				t.Fatal("expected out of bounds")
			}
			if next.Y != tt.in.Y {
				t.Errorf("Y = %v, want unchanged %v", next.Y, tt.in.Y)
			}
		})
	}
}

// Velocity and position stay in range for arbitrary jump patterns.
func TestPhysicsInvariants(t *testing.T) {
	ph := testPhysics()
	rng := rand.New(rand.NewSource(99))

	for run := 0; run < 50; run++ {
		p := ph.Spawn()
		for tick := 0; tick < 2000; tick++ {
			if rng.Intn(12) == 0 {
				ph.Jump(&p)
			}
			next, out := ph.Step(p)
			if next.Velocity < -6.5 || next.Velocity > 7 {
				t.Fatalf("velocity %v out of range", next.Velocity)
			}
			if out {
				if next.Y != p.Y {
					t.Fatalf("out-of-bounds tick moved player %v -> %v", p.Y, next.Y)
				}
				break
			}
			if next.Y < 15 || next.Y > 485 {
				t.Fatalf("position %v out of range", next.Y)
			}
			p = next
		}
	}
}
