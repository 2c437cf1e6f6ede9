package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HitKind classifies a collision event.
type HitKind int

const (
	HitPipe    HitKind = iota // Fatal overlap with a pipe segment
	HitPowerUp                // Overlap with an uncollected power-up
	HitPassed                 // Pipe crossed the pass line
)

func (k HitKind) String() string {
	switch k {
	case HitPipe:
		return "pipe"
	case HitPowerUp:
		return "power-up"
	case HitPassed:
		return "passed"
	default:
		return "unknown"
	}
}

// Hit is one event found by Scan, referring to a pipe by index.
type Hit struct {
	Index int
	Kind  HitKind
}

// PlayerRect returns the player's hitbox at height y.
func PlayerRect(p config.FlappyPlayer, y float64) core.RectF {
	return core.NewRectF(p.Left, y, p.Width, p.Size)
}

// Scan tests the player at height y against every pipe without mutating
// anything. Hits are ordered by pipe index, and within a pipe as pipe,
// power-up, passed.
func Scan(pipes []Pipe, y float64, cfg config.FlappyConfig) []Hit {
	var hits []Hit
	player := PlayerRect(cfg.Player, y)
	obs := cfg.Obstacles

	for i, p := range pipes {
		if !p.Passed && overlapsPipe(p, player, obs) {
			hits = append(hits, Hit{Index: i, Kind: HitPipe})
		}
		if !p.PowerUp.Collected && player.Intersects(PowerUpRect(p, obs, cfg.PowerUps)) {
			hits = append(hits, Hit{Index: i, Kind: HitPowerUp})
		}
		if !p.Passed && p.X < obs.PassX {
			hits = append(hits, Hit{Index: i, Kind: HitPassed})
		}
	}
	return hits
}

// overlapsPipe reports whether the player is inside the pipe's horizontal
// band and outside its gap, with Tolerance forgiven on both gap edges.
func overlapsPipe(p Pipe, player core.RectF, obs config.FlappyObstacles) bool {
	if !(p.X < player.Right() && p.X+obs.Width > player.X) {
		return false
	}
	return player.Y < p.GapTop-obs.Tolerance ||
		player.Bottom() > p.GapTop+obs.Gap+obs.Tolerance
}
