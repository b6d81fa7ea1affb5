package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagTicks   int
	flagWidth   float32
	flagHeight  float32
	flagRestart bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless with an autopilot",
	Long: `Run the simulation without a terminal UI. An autopilot steers the
player toward stars and away from enemies. Every tick advances by 1/fps
seconds. Logs go to stderr and a summary is printed at the end.

Examples:
  starcatch simulate
  starcatch simulate --ticks 36000 --seed 1
  starcatch simulate --width 1024 --height 768 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().Float32Var(&flagWidth, "width", 0, "Arena width (0 = from config)")
	simulateCmd.Flags().Float32Var(&flagHeight, "height", 0, "Arena height (0 = from config)")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", true, "Start a new run after each game over")
}

// simulation holds the inputs of a headless run.
type simulation struct {
	cfg     config.StarcatchConfig
	runtime core.RuntimeConfig
	width   float32
	height  float32
	ticks   int
	restart bool
}

// summary is what a headless run reports.
type summary struct {
	Ticks          int
	Runs           int
	StarsCollected int
	Bounces        int
	EnemiesSpawned int
	FinalScore     uint32
	InGame         bool
	Stats          storage.Stats
}

func runSimulate(cmd *cobra.Command, args []string) error {
	out, closeLog, err := logOutput(flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	seed := resolveSeed(flagSeed, time.Now())
	logger.Info("simulating", "ticks", flagTicks, "seed", seed)

	sim := simulation{
		cfg:     cfg,
		runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: seed},
		width:   flagWidth,
		height:  flagHeight,
		ticks:   flagTicks,
		restart: flagRestart,
	}
	sum, err := sim.run(store, logger)
	if err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), sum)
}

// run drives the game for the configured number of ticks.
func (s simulation) run(store *storage.Store, logger *log.Logger) (summary, error) {
	w, h := s.width, s.height
	if w <= 0 {
		w = s.cfg.Arena.Width
	}
	if h <= 0 {
		h = s.cfg.Arena.Height
	}

	var recorder starcatch.ScoreRecorder
	if store != nil {
		recorder = store
	}
	game, err := starcatch.New(s.cfg, s.runtime, starcatch.FixedArena(w, h),
		starcatch.WithLogger(logger),
		starcatch.WithHighScores(starcatch.NewHighScores(recorder, logger)),
	)
	if err != nil {
		return summary{}, err
	}

	pilot := starcatch.NewAutopilot()
	delta := s.runtime.TickDelta()
	var sum summary

	for range s.ticks {
		in := pilot.Steer(game)
		switch {
		case game.AppState() == starcatch.AppMainMenu:
			in.Press(core.ActionStart)
		case game.AppState() == starcatch.AppGameOver && s.restart:
			in.Press(core.ActionStart)
		case game.AppState() == starcatch.AppGame && game.SimulationState() == starcatch.SimPaused:
			in.Press(core.ActionPause)
		}

		res, err := game.Tick(core.Frame{Delta: delta, Input: in})
		if err != nil {
			return sum, err
		}
		sum.Ticks++
		sum.StarsCollected += res.Signals.StarsCollected
		sum.EnemiesSpawned += res.Signals.EnemiesSpawned
		if res.Signals.Bounced {
			sum.Bounces++
		}
		sum.Runs += len(res.GameOvers)
		sum.FinalScore = res.Score
		sum.InGame = res.InGame
	}

	if store != nil {
		if sum.Stats, err = store.Stats(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func printSummary(w io.Writer, s summary) error {
	_, err := fmt.Fprintf(w, `Simulation summary
  Ticks            %d
  Finished runs    %d
  Stars collected  %d
  Enemy bounces    %d
  Enemies spawned  %d
`, s.Ticks, s.Runs, s.StarsCollected, s.Bounces, s.EnemiesSpawned)
	if err != nil {
		return err
	}
	if s.InGame {
		if _, err := fmt.Fprintf(w, "  Live score       %d\n", s.FinalScore); err != nil {
			return err
		}
	}
	if s.Stats.Runs > 0 {
		_, err = fmt.Fprintf(w, "  Best run         %d\n  Average run      %.1f\n", s.Stats.Best, s.Stats.Average)
	}
	return err
}
