package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	playFlags        seedFlags
	flagFromSnapshot int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a grid in the terminal",
	Long: `Seed a grid and animate it in the terminal until you quit.

Controls:
  Space/P    - Pause or resume
  N          - Step one generation while paused
  R          - Reseed with a new random seed
  +/-        - Faster or slower
  Ctrl+S     - Save a snapshot of the current grid
  Arrows/hjkl - Pan when the grid is larger than the terminal
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Every run is recorded in the history database when you quit.

Examples:
  life play
  life play --mode glider --row 10 --col 10
  life play --mode gosper --size 60 --speed slow
  life play --mode random --probability 0.35 --seed 42
  life play --from-snapshot 3`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playFlags.bind(playCmd)
	playCmd.Flags().Int64Var(&flagFromSnapshot, "from-snapshot", 0, "Resume a saved snapshot by ID")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger := newLogger("life")

	cfg, err := loadConfig(cmd, &playFlags, logger)
	if err != nil {
		exitErr("invalid configuration", err)
	}
	display, err := cfg.SimDisplay()
	if err != nil {
		exitErr("invalid display settings", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	rt := cfg.Runtime(width, height)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	simulation := sim.New(display)
	if flagFromSnapshot > 0 {
		if store == nil {
			exitErr("cannot resume snapshot", errors.New("history database unavailable"))
		}
		grid, snap, loadErr := store.LoadSnapshot(flagFromSnapshot)
		if loadErr != nil {
			store.Close()
			exitErr("cannot resume snapshot", loadErr)
		}
		rt.SeedMode = snap.SeedMode
		simulation.Load(rt, grid, snap.Generation)
	} else if err := simulation.Reset(rt); err != nil {
		if store != nil {
			store.Close()
		}
		exitErr("cannot seed grid", err)
	}

	runErr := tui.Run(simulation, tui.Options{
		Store:          store,
		MaxGenerations: uint64(cfg.Animation.MaxGenerations),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitErr("running simulation", runErr)
	}
}
