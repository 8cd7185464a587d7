package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingshot/internal/game"
	"github.com/vovakirdan/slingshot/internal/levels"
	"github.com/vovakirdan/slingshot/internal/sim"
	"github.com/vovakirdan/slingshot/internal/storage"
)

var (
	flagShots      []string
	flagMaxSeconds float64
	flagNoSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Play scripted shots headless",
	Long: `Play a level without a terminal UI. Each --shot launches the next bird
with the given velocity once it reaches the slingshot; an optional third
value fires the bird's ability that many seconds after release.

The simulation uses a fixed step of 1/--fps seconds, so the same shots
always produce the same result and state hash. Finished rounds are stored
in the scores database unless --no-save is given.

Examples:
  slingshot run 01-warmup --shot 520,-380
  slingshot run 04-twin-towers --shot 600,-250,0.7 --shot 450,-420`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringArrayVar(&flagShots, "shot", nil, "Shot as vx,vy[,abilityDelay] (repeatable)")
	runCmd.Flags().Float64Var(&flagMaxSeconds, "max-seconds", 120, "Simulated time limit")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the result")
}

func runRun(_ *cobra.Command, args []string) {
	logger := newLogger("slingshot")

	cfg, campaign, err := setup()
	if err != nil {
		fail("%v", err)
	}
	lvl, err := levels.Find(campaign, args[0])
	if err != nil {
		fail("%v", err)
	}
	tuning, err := cfg.Tuning()
	if err != nil {
		fail("%v", err)
	}

	shots := make([]game.Shot, 0, len(flagShots))
	for _, s := range flagShots {
		shot, parseErr := game.ParseShot(s)
		if parseErr != nil {
			fail("%v", parseErr)
		}
		shots = append(shots, shot)
	}

	dt := 1.0 / 60.0
	if flagFPS > 0 {
		dt = 1.0 / float64(flagFPS)
	}

	logger.Debug("starting run", "level", lvl.ID, "deck", lvl.DeckName, "shots", len(shots), "dt", dt)

	world := sim.NewWorld(lvl.Level, tuning)
	res := game.RunScript(world, shots, dt, flagMaxSeconds, func(ev game.ScriptEvent) {
		switch {
		case ev.Ability:
			logger.Info("ability", "shot", ev.Shot+1, "fired", ev.Fired, "tick", ev.Tick, "score", ev.Score)
		case ev.Fired:
			logger.Info("launch", "shot", ev.Shot+1, "velocity", shots[ev.Shot].String(), "tick", ev.Tick, "score", ev.Score)
		default:
			logger.Warn("launch ignored", "shot", ev.Shot+1, "tick", ev.Tick)
		}
	})
	if len(shots) > res.Fired {
		logger.Warn("unused shots", "count", len(shots)-res.Fired)
	}
	if res.TimedOut {
		logger.Warn("time limit reached", "seconds", flagMaxSeconds)
	}

	snap := res.Snapshot
	logger.Info("round finished", "level", lvl.ID, "result", snap.Result, "score", snap.Score)

	fmt.Printf("Level:   %s (%s)\n", lvl.Name, lvl.ID)
	fmt.Printf("Result:  %s\n", snap.Result)
	fmt.Printf("Score:   %s\n", humanize.Comma(int64(snap.Score)))
	fmt.Printf("Shots:   %d of %d birds\n", snap.Shots, len(lvl.Deck))
	fmt.Printf("Pigs:    %d left\n", len(snap.Pigs))
	fmt.Printf("Blocks:  %d left\n", len(snap.Blocks))
	fmt.Printf("Time:    %.2fs (%d ticks)\n", float64(snap.Tick)*res.Step, snap.Tick)
	fmt.Printf("Hash:    %016x\n", snap.Hash())

	if flagNoSave || snap.Result == sim.ResultPlaying {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveResult(storage.RunResult{
		LevelID: lvl.ID,
		Score:   snap.Score,
		Result:  snap.Result.String(),
		Shots:   snap.Shots,
	})
	if err != nil {
		logger.Error("could not save result", "error", err)
		os.Exit(1)
	}
	logger.Debug("result saved", "run", runID)
}
