package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning. It mirrors
// defaults/flappy.yaml and backs it up if the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			GravityUp:       0.2,
			GravityDown:     0.25,
			JumpForce:       -3.6,
			JumpBoostTicks:  2,
			JumpBoostForce:  -0.64,
			MaxVelocityUp:   -6.5,
			MaxVelocityDown: 7,
		},
		World: FlappyWorld{
			Width:       800,
			Height:      500,
			MinY:        15,
			MaxY:        485,
			StartY:      250,
			JumpCeiling: 20,
		},
		Player: FlappyPlayer{
			Left:  150,
			Width: 20,
			Size:  20,
		},
		Obstacles: FlappyObstacles{
			Speed:          2,
			Width:          60,
			Gap:            150,
			MinGapTop:      120,
			GapTopRange:    180,
			SpawnX:         800,
			SpawnThreshold: 400,
			MaxLive:        2,
			PassX:          40,
			Tolerance:      2,
			PassPoints:     1,
		},
		PowerUps: FlappyPowerUps{
			MinOffset:     50,
			MaxOffset:     150,
			Margin:        20,
			VerticalRange: 100,
			ScreenMargin:  30,
			Size:          30,
			InGapChance:   0.6,
			Bonus:         2,
		},
		Session: FlappySession{
			TickInterval:     16 * time.Millisecond,
			SceneryInterval:  16 * time.Millisecond,
			CelebrationDelay: 3 * time.Second,
			FlashDuration:    300 * time.Millisecond,
			CelebrationBurst: 30,
			LeaderboardSize:  3,
			AvatarChoices:    3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
