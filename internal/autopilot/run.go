package autopilot

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// DefaultName is submitted when a simulated run reaches the leaderboard.
const DefaultName = "autopilot"

// Stop reasons reported in Result.
const (
	ReasonCrashed   = "crashed"
	ReasonMaxTicks  = "max ticks"
	ReasonCancelled = "cancelled"
)

// Options configures a headless run.
type Options struct {
	Config   config.FlappyConfig
	Seed     int64
	MaxTicks int // 0 means run until the pilot crashes
	Name     string
	Store    storage.KV         // Profile store; in-memory when nil
	Runs     flappy.RunRecorder // Optional run history
	Owner    string
	Logger   *log.Logger
}

// Result summarizes a finished simulation.
type Result struct {
	Score     int
	HighScore int
	Ticks     int
	Avatar    string
	Style     string
	Reason    string
	Ranked    bool // The run made the leaderboard
	Errors    int  // Failed decide calls
}

// Run plays one run with pilot on a manual clock. The same seed, config and
// script always produce the same Result.
func Run(ctx context.Context, pilot *Pilot, opts Options) (Result, error) {
	if pilot == nil {
		return Result{}, errors.New("autopilot: nil pilot")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}

	clk := clock.NewManual()
	sess, err := flappy.NewSession(flappy.Options{
		Config:      opts.Config,
		Store:       opts.Store,
		Clock:       clk,
		Rand:        rand.New(rand.NewSource(opts.Seed)),
		SceneryRand: rand.New(rand.NewSource(opts.Seed + 1)),
		Runs:        opts.Runs,
		Owner:       opts.Owner,
		Logger:      opts.Logger,
	})
	if err != nil {
		return Result{}, err
	}
	defer sess.Close()

	sess.SelectAvatar(0)
	sess.Jump()

	res := Result{Reason: ReasonCrashed}
	step := opts.Config.Session.TickInterval
	for sess.Phase() == flappy.PhaseRunning {
		if err := ctx.Err(); err != nil {
			res.Reason = ReasonCancelled
			break
		}
		snap := sess.Snapshot()
		if opts.MaxTicks > 0 && snap.Ticks >= opts.MaxTicks {
			res.Reason = ReasonMaxTicks
			break
		}
		if pilot.Decide(snap) {
			sess.Jump()
		}
		clk.Advance(step)
	}

	if sess.Phase() == flappy.PhaseEnteringName {
		res.Ranked = sess.SubmitName(opts.Name)
	}

	snap := sess.Snapshot()
	res.Score = snap.Score
	res.HighScore = snap.HighScore
	res.Ticks = snap.Ticks
	res.Avatar = snap.Avatar
	res.Style = snap.Style
	res.Errors = pilot.Errors()

	opts.Logger.Info("simulation finished",
		"seed", opts.Seed, "score", res.Score, "ticks", res.Ticks, "reason", res.Reason)
	return res, nil
}
