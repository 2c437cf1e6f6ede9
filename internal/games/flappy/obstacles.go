package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/theme"
)

// Rand is the random source for pipe and power-up placement.
type Rand = theme.Rand

// PowerUp is the collectible attached to a pipe. Its anchor sits Offset
// pixels past the pipe's right edge at height Y.
type PowerUp struct {
	Offset    float64
	Y         float64
	Collected bool
}

// Pipe represents a vertical obstacle pair with a gap for the player to pass through.
type Pipe struct {
	X       float64 // Left edge
	GapTop  float64 // Y where the gap starts
	Passed  bool    // Crossed the pass line (scored)
	PowerUp PowerUp
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes []Pipe
	rng   Rand
	obs   config.FlappyObstacles
	pu    config.FlappyPowerUps
	world config.FlappyWorld
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(cfg config.FlappyConfig, rng Rand) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, cfg.Obstacles.MaxLive+1),
		rng:   rng,
		obs:   cfg.Obstacles,
		pu:    cfg.PowerUps,
		world: cfg.World,
	}
}

// Reset clears all pipes.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
}

// Spawn appends a pipe at the spawn line with a random gap and power-up.
func (pm *PipeManager) Spawn() {
	gapTop := pm.obs.MinGapTop + pm.rng.Float64()*pm.obs.GapTopRange
	pm.pipes = append(pm.pipes, Pipe{
		X:       pm.obs.SpawnX,
		GapTop:  gapTop,
		PowerUp: pm.placePowerUp(gapTop),
	})
}

// Advance moves pipes left, drops those fully off-screen and spawns a new
// one when fewer than MaxLive remain and the newest has crossed the spawn
// threshold.
func (pm *PipeManager) Advance() {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= pm.obs.Speed
		if p.X > -pm.obs.Width {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	if len(pm.pipes) < pm.obs.MaxLive {
		if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < pm.obs.SpawnThreshold {
			pm.Spawn()
		}
	}
}

// placePowerUp picks a horizontal offset and a height: inside the gap with
// probability InGapChance, otherwise above or below it with equal odds.
// Ranges that would be negative collapse to their lower bound and the result
// always stays within the screen margin.
func (pm *PipeManager) placePowerUp(gapTop float64) PowerUp {
	offset := pm.pu.MinOffset + pm.rng.Float64()*(pm.pu.MaxOffset-pm.pu.MinOffset)

	var y float64
	switch {
	case pm.rng.Float64() < pm.pu.InGapChance:
		safe := max(0, pm.obs.Gap-2*pm.pu.Margin)
		y = gapTop + pm.pu.Margin + pm.rng.Float64()*safe
	case pm.rng.Float64() < 0.5:
		lo := pm.pu.ScreenMargin
		hi := max(lo, gapTop-pm.pu.VerticalRange)
		y = lo + pm.rng.Float64()*(hi-lo)
	default:
		lo := gapTop + pm.obs.Gap
		hi := min(pm.world.Height-pm.pu.ScreenMargin, lo+pm.pu.VerticalRange)
		y = lo + pm.rng.Float64()*max(0, hi-lo)
	}

	y = core.ClampF(y, pm.pu.ScreenMargin, pm.world.Height-pm.pu.ScreenMargin)
	return PowerUp{Offset: offset, Y: y}
}

// Pipes returns a copy of the live pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Len returns the number of live pipes.
func (pm *PipeManager) Len() int { return len(pm.pipes) }

// MarkPassed flags pipe i as passed. Reports false if it already was.
func (pm *PipeManager) MarkPassed(i int) bool {
	if i < 0 || i >= len(pm.pipes) || pm.pipes[i].Passed {
		return false
	}
	pm.pipes[i].Passed = true
	return true
}

// Collect flags the power-up of pipe i as collected. Reports false if it
// already was.
func (pm *PipeManager) Collect(i int) bool {
	if i < 0 || i >= len(pm.pipes) || pm.pipes[i].PowerUp.Collected {
		return false
	}
	pm.pipes[i].PowerUp.Collected = true
	return true
}

// PowerUpRect returns the collectible's box: left edge at the anchor,
// vertically centered on Y.
func PowerUpRect(p Pipe, obs config.FlappyObstacles, pu config.FlappyPowerUps) core.RectF {
	x := p.X + obs.Width + p.PowerUp.Offset
	return core.NewRectF(x, p.PowerUp.Y-pu.Size/2, pu.Size, pu.Size)
}
