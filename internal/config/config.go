// Package config provides YAML/TOML-based tuning for the game: physics,
// world bounds, obstacle layout, power-up placement and session timings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables for a session.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	World     FlappyWorld     `yaml:"world" toml:"world"`
	Player    FlappyPlayer    `yaml:"player" toml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	PowerUps  FlappyPowerUps  `yaml:"power_ups" toml:"power_ups"`
	Session   FlappySession   `yaml:"session" toml:"session"`
}

// FlappyPhysics defines the vertical motion model. Negative is up.
type FlappyPhysics struct {
	GravityUp       float64 `yaml:"gravity_up" toml:"gravity_up"`     // Applied while ascending
	GravityDown     float64 `yaml:"gravity_down" toml:"gravity_down"` // Applied while falling
	JumpForce       float64 `yaml:"jump_force" toml:"jump_force"`
	JumpBoostTicks  int     `yaml:"jump_boost_ticks" toml:"jump_boost_ticks"`
	JumpBoostForce  float64 `yaml:"jump_boost_force" toml:"jump_boost_force"`
	MaxVelocityUp   float64 `yaml:"max_velocity_up" toml:"max_velocity_up"`
	MaxVelocityDown float64 `yaml:"max_velocity_down" toml:"max_velocity_down"`
}

// FlappyWorld defines the playfield in world pixels.
type FlappyWorld struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	MinY        float64 `yaml:"min_y" toml:"min_y"`
	MaxY        float64 `yaml:"max_y" toml:"max_y"`
	StartY      float64 `yaml:"start_y" toml:"start_y"`
	JumpCeiling float64 `yaml:"jump_ceiling" toml:"jump_ceiling"` // Jumps at or above this Y are ignored
}

// FlappyPlayer defines the player hitbox. The box spans [Left, Left+Width]
// horizontally and [Y, Y+Size] vertically.
type FlappyPlayer struct {
	Left  float64 `yaml:"left" toml:"left"`
	Width float64 `yaml:"width" toml:"width"`
	Size  float64 `yaml:"size" toml:"size"`
}

// FlappyObstacles defines pipe movement, spacing and scoring thresholds.
type FlappyObstacles struct {
	Speed          float64 `yaml:"speed" toml:"speed"`
	Width          float64 `yaml:"width" toml:"width"`
	Gap            float64 `yaml:"gap" toml:"gap"`
	MinGapTop      float64 `yaml:"min_gap_top" toml:"min_gap_top"`
	GapTopRange    float64 `yaml:"gap_top_range" toml:"gap_top_range"`
	SpawnX         float64 `yaml:"spawn_x" toml:"spawn_x"`
	SpawnThreshold float64 `yaml:"spawn_threshold" toml:"spawn_threshold"`
	MaxLive        int     `yaml:"max_live" toml:"max_live"`
	PassX          float64 `yaml:"pass_x" toml:"pass_x"`
	Tolerance      float64 `yaml:"tolerance" toml:"tolerance"` // Forgiveness on both gap edges
	PassPoints     int     `yaml:"pass_points" toml:"pass_points"`
}

// FlappyPowerUps defines collectible placement and value.
type FlappyPowerUps struct {
	MinOffset     float64 `yaml:"min_offset" toml:"min_offset"`
	MaxOffset     float64 `yaml:"max_offset" toml:"max_offset"`
	Margin        float64 `yaml:"margin" toml:"margin"`
	VerticalRange float64 `yaml:"vertical_range" toml:"vertical_range"`
	ScreenMargin  float64 `yaml:"screen_margin" toml:"screen_margin"`
	Size          float64 `yaml:"size" toml:"size"`
	InGapChance   float64 `yaml:"in_gap_chance" toml:"in_gap_chance"`
	Bonus         int     `yaml:"bonus" toml:"bonus"`
}

// FlappySession defines timings and leaderboard shape.
type FlappySession struct {
	TickInterval     time.Duration `yaml:"tick_interval" toml:"tick_interval"`
	SceneryInterval  time.Duration `yaml:"scenery_interval" toml:"scenery_interval"`
	CelebrationDelay time.Duration `yaml:"celebration_delay" toml:"celebration_delay"`
	FlashDuration    time.Duration `yaml:"flash_duration" toml:"flash_duration"`
	CelebrationBurst int           `yaml:"celebration_burst" toml:"celebration_burst"`
	LeaderboardSize  int           `yaml:"leaderboard_size" toml:"leaderboard_size"`
	AvatarChoices    int           `yaml:"avatar_choices" toml:"avatar_choices"`
}

// Validate reports the first tunable that would break the simulation.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.MaxVelocityUp < 0, "physics.max_velocity_up must be negative, got %v", c.Physics.MaxVelocityUp)
	check(c.Physics.MaxVelocityDown > 0, "physics.max_velocity_down must be positive, got %v", c.Physics.MaxVelocityDown)
	check(c.Physics.JumpBoostTicks >= 0, "physics.jump_boost_ticks must not be negative")

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.MinY < c.World.MaxY, "world.min_y (%v) must be below world.max_y (%v)", c.World.MinY, c.World.MaxY)
	check(c.World.StartY >= c.World.MinY && c.World.StartY <= c.World.MaxY,
		"world.start_y (%v) must lie within [%v, %v]", c.World.StartY, c.World.MinY, c.World.MaxY)

	check(c.Player.Width > 0 && c.Player.Size > 0, "player hitbox must be positive")

	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Gap > 0, "obstacles.gap must be positive, got %v", c.Obstacles.Gap)
	check(c.Obstacles.GapTopRange >= 0, "obstacles.gap_top_range must not be negative")
	check(c.Obstacles.MaxLive > 0, "obstacles.max_live must be positive, got %d", c.Obstacles.MaxLive)
	check(c.Obstacles.SpawnThreshold < c.Obstacles.SpawnX,
		"obstacles.spawn_threshold (%v) must be left of spawn_x (%v)", c.Obstacles.SpawnThreshold, c.Obstacles.SpawnX)

	check(c.PowerUps.MinOffset <= c.PowerUps.MaxOffset, "power_ups.min_offset must not exceed max_offset")
	check(c.PowerUps.InGapChance >= 0 && c.PowerUps.InGapChance <= 1,
		"power_ups.in_gap_chance must be within [0, 1], got %v", c.PowerUps.InGapChance)
	check(c.PowerUps.Size > 0, "power_ups.size must be positive")

	check(c.Session.TickInterval > 0, "session.tick_interval must be positive")
	check(c.Session.SceneryInterval > 0, "session.scenery_interval must be positive")
	check(c.Session.LeaderboardSize > 0, "session.leaderboard_size must be positive")
	check(c.Session.AvatarChoices > 0, "session.avatar_choices must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
