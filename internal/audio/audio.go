// Package audio plays the game's sound cues. Cues are synthesized, so there
// are no asset files, and every failure degrades to silence.
package audio

// Cue names a sound event.
type Cue int

const (
	CueJump Cue = iota
	CueCelebration
	CuePowerUp
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCelebration:
		return "celebration"
	case CuePowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Player accepts cue triggers and a volume in [0, 100].
// Implementations must not block and must not panic.
type Player interface {
	Play(c Cue)
	SetVolume(v int)
}

// Nop is a Player that discards everything. Used for SSH sessions and
// headless runs.
type Nop struct{}

func (Nop) Play(Cue)      {}
func (Nop) SetVolume(int) {}
