// Package flappy implements the Flappy Bird-style session: asymmetric
// gravity physics, scrolling pipe pairs with collectible power-ups,
// collision scoring and the session state machine around them.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the controlled entity. Y is the top of the hitbox; negative
// velocity moves up.
type Player struct {
	Y          float64
	Velocity   float64
	BoostTicks int
}

// Physics integrates player motion with the configured constants.
type Physics struct {
	cfg   config.FlappyPhysics
	world config.FlappyWorld
}

// NewPhysics creates an integrator.
func NewPhysics(cfg config.FlappyPhysics, world config.FlappyWorld) Physics {
	return Physics{cfg: cfg, world: world}
}

// Spawn returns a player at rest at the start height.
func (ph Physics) Spawn() Player {
	return Player{Y: ph.world.StartY}
}

// Jump applies the jump impulse and arms the boost counter. Jumps while the
// player is at or above the jump ceiling are ignored; Jump reports whether
// the impulse was applied.
func (ph Physics) Jump(p *Player) bool {
	if p.Y <= ph.world.JumpCeiling {
		return false
	}
	p.Velocity = ph.cfg.JumpForce
	p.BoostTicks = ph.cfg.JumpBoostTicks
	return true
}

// Step advances p by one tick: boost, gravity, velocity clamp, then
// position. If the new position leaves [MinY, MaxY] the position is kept
// at its previous value and out is true.
func (ph Physics) Step(p Player) (next Player, out bool) {
	v := p.Velocity
	boost := p.BoostTicks
	if boost > 0 {
		v += ph.cfg.JumpBoostForce
		boost--
	}

	// Lighter gravity on the way up.
	if v < 0 {
		v += ph.cfg.GravityUp
	} else {
		v += ph.cfg.GravityDown
	}
	v = core.ClampF(v, ph.cfg.MaxVelocityUp, ph.cfg.MaxVelocityDown)

	y := p.Y + v
	if y < ph.world.MinY || y > ph.world.MaxY {
		return Player{Y: p.Y, Velocity: v, BoostTicks: boost}, true
	}
	return Player{Y: y, Velocity: v, BoostTicks: boost}, false
}
