package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal, beginning at the main menu.

Controls:
  G              - Start a game
  Arrows/WASD    - Move
  Space          - Pause/run
  M              - Back to the main menu
  Esc/Ctrl+C     - Quit

The terminal is owned by the game while it runs, so logs are discarded
unless --log-file is set.

Examples:
  starcatch play
  starcatch play --seed 7 --fps 30
  starcatch play --config ./my-starcatch.yaml --log-file starcatch.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	out, closeLog, err := logOutput(flagLogFile, io.Discard)
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

	// Get terminal size early so the arena exists before the first resize
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed, time.Now()),
	}

	// The ranked score board is optional: play continues without it.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open score board", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Info("starting", "cols", width, "rows", height, "fps", flagFPS, "seed", rt.Seed)
	return tui.Run(cfg, rt, store, logger)
}
