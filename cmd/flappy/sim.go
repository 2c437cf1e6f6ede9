package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/autopilot"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScript   string
	flagRuns     int
	flagMaxTicks int
	flagRecord   bool
)

// simOwner owns runs recorded by the simulator.
const simOwner = "autopilot"

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the Lua autopilot headlessly",
	Long: `Plays games without a terminal, driven by a Lua script that defines
decide(state) and returns true to flap. Time is simulated, so runs are as fast
as the CPU allows and the same seed always gives the same result.

The state table has y, velocity, boost, score, tick, style, player
{left,right,top,bottom}, world {width,height}, pipes and next_pipe
{x,width,gap_top,gap_bottom,passed,power_up}.

Examples:
  flappy sim
  flappy sim --seed 7 --runs 20
  flappy sim --script ./pilot.lua --max-ticks 5000 --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Lua pilot script (default: built-in)")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs; run i uses seed+i")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Stop a run after this many ticks (0 = until crash)")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save runs to the database as owner \"autopilot\"")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newStderrLogger("flappy-sim")

	pilot, err := autopilot.LoadPilot(flagScript, logger)
	if err != nil {
		return err
	}
	defer pilot.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := autopilot.Options{
		Config:   cfg,
		MaxTicks: flagMaxTicks,
		Owner:    simOwner,
		Logger:   logger,
	}
	if flagRecord {
		store, openErr := openStore(ctx)
		if openErr != nil {
			return fmt.Errorf("opening database: %w", openErr)
		}
		defer store.Close()
		opts.Store = storage.Namespace(store, "user/"+simOwner)
		opts.Runs = store
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %-20s  %6s  %7s  %-8s  %s\n", "Seed", "Score", "Ticks", "Style", "Result")
	best, total := 0, 0
	n := 0
	for i := 0; i < max(flagRuns, 1); i++ {
		opts.Seed = seed + int64(i)
		res, runErr := autopilot.Run(ctx, pilot, opts)
		if runErr != nil {
			return runErr
		}
		fmt.Fprintf(w, "  %-20d  %6d  %7d  %-8s  %s\n", opts.Seed, res.Score, res.Ticks, res.Style, res.Reason)
		best = max(best, res.Score)
		total += res.Score
		n++
		if res.Reason == autopilot.ReasonCancelled {
			break
		}
	}

	fmt.Fprintf(w, "\nRuns: %d  Best: %d  Average: %.1f\n", n, best, float64(total)/float64(n))
	if pilot.Errors() > 0 {
		fmt.Fprintf(w, "decide() failed %d times; see the log above\n", pilot.Errors())
	}
	return nil
}
