package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/telemetry"
)

var (
	flagTelemetryWindow int
	flagHoldTicks       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/D, Left/Right  - Move (held)
  Space/W/Up       - Jump
  F/X              - Shoot (held)
  P/Esc            - Pause
  R                - Restart the run
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Runs are saved when you lose your last life, restart or quit, as long as
you scored or got past the spawn point.

Examples:
  platformer play
  platformer play --seed 42 --fps 30
  platformer play --config ./my-platformer.yaml
  platformer play --telemetry-dir ./telemetry --log-file play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTelemetryWindow, "telemetry-window", 5, "Telemetry window length in seconds")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a held key stays active after a key repeat (0 = fps/3)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal, so logs only go to --log-file.
	rt, err := setup(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer rt.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     rt.seed(),
	}

	game, err := registry.Create(platformer.ID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		rt.logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	opts := []tui.ModelOption{tui.WithLogger(rt.logger)}
	if flagHoldTicks > 0 {
		opts = append(opts, tui.WithHoldDecay(flagHoldTicks))
	}

	writer, err := telemetry.NewWriter(flagTelemetryDir)
	if err != nil {
		rt.logger.Warn("telemetry disabled", "err", err)
		writer = nil
	}
	if writer != nil {
		collector := telemetry.NewCollector(flagTelemetryWindow*flagFPS, flagFPS)
		opts = append(opts, tui.WithTelemetry(collector, writer))
		rt.logger.Info("telemetry enabled", "path", writer.Path())
	}

	runErr := tui.Run(game, store, cfg, opts...)

	if writer != nil {
		if err := writer.Close(); err != nil {
			rt.logger.Warn("closing telemetry", "err", err)
		}
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		rt.Close()
		exitf("running game: %v", runErr)
	}
}
