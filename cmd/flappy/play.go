package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-quad/internal/core"
	"github.com/vovakirdan/flappy-quad/internal/platform/tui"
	"github.com/vovakirdan/flappy-quad/internal/replay"
	"github.com/vovakirdan/flappy-quad/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Space/Up/W   - Flap
  Space/Enter  - Start, or restart after dying
  Left click   - Same as Space
  Ctrl+S       - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C     - Quit

The run is recorded and stored in the replays database on quit.

Difficulty options:
  easy         - Obstacles speed up by 1 for every obstacle passed
  normal       - Obstacles speed up by 2
  hard         - Obstacles speed up by 4
  constant     - Obstacles never speed up

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	opts := tui.Options{
		Game:    cfg,
		Runtime: rt,
		Logger:  logger,
	}

	// Open replay storage; the game still works without it
	var saver replay.Saver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replays database", "path", flagDBPath, "error", err)
	} else {
		saver = store
	}
	opts.Saver = saver

	_, runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("game exited with an error", "error", runErr)
	}
}
