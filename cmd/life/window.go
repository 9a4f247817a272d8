package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/window"
	"github.com/vovakirdan/tui-life/internal/sim"
)

var (
	windowFlags     seedFlags
	flagWindowScale int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Animate in a desktop window",
	Long: `Open a desktop window and animate the grid there.

Requires a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/life

Controls:
  Space/P  - Pause or resume
  N        - Step one generation while paused
  R        - Reseed
  =/-      - Faster or slower
  Q/Esc    - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowFlags.bind(windowCmd)
	windowCmd.Flags().IntVar(&flagWindowScale, "scale", 0, "Pixels per cell (0 = export scale from config)")
}

func runWindow(cmd *cobra.Command, _ []string) {
	logger := newLogger("window")

	cfg, err := loadConfig(cmd, &windowFlags, logger)
	if err != nil {
		exitErr("invalid configuration", err)
	}
	display, err := cfg.SimDisplay()
	if err != nil {
		exitErr("invalid display settings", err)
	}

	rt := cfg.Runtime(0, 0)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	simulation := sim.New(display)
	if err := simulation.Reset(rt); err != nil {
		exitErr("cannot seed grid", err)
	}

	scale := cfg.Export.Scale
	if flagWindowScale > 0 {
		scale = flagWindowScale
	}

	err = window.Run(simulation, window.Options{
		Scale: scale,
		Alive: display.AliveColor.ToRGBA(),
		Dead:  display.DeadColor.ToRGBA(),
	})
	if errors.Is(err, window.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "The window renderer requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Rebuild with `go build -tags ebiten ./cmd/life`.")
		os.Exit(2)
	}
	if err != nil {
		exitErr("running window", err)
	}
}
