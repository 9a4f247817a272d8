package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// defaultHeadlessGenerations applies when neither --generations nor
// animation.max_generations is set.
const defaultHeadlessGenerations = 100

var (
	simulateFlags   seedFlags
	flagRuns        int
	flagGenerations uint64
	flagWorkers     int
	flagRecord      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run seeds headless and print populations",
	Long: `Run one or more simulations without a terminal UI and print the final
generation and population of each. Runs execute in parallel; run i uses
seed base+i, where base is --seed (or a time based seed).

Examples:
  life simulate --generations 1000
  life simulate --runs 16 --seed 1 --size 200
  life simulate --mode gosper --generations 300 --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateFlags.bind(simulateCmd)
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().Uint64Var(&flagGenerations, "generations", 0, "Generations per run (0 = config max_generations, else 100)")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (0 = one per CPU)")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record each run in the history database")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	logger := newLogger("simulate")

	cfg, err := loadConfig(cmd, &simulateFlags, logger)
	if err != nil {
		exitErr("invalid configuration", err)
	}
	if flagRuns <= 0 {
		exitErr("invalid --runs", fmt.Errorf("must be positive, got %d", flagRuns))
	}

	generations := flagGenerations
	if generations == 0 {
		generations = uint64(cfg.Animation.MaxGenerations)
	}
	if generations == 0 {
		generations = defaultHeadlessGenerations
	}

	base := cfg.Runtime(0, 0)
	if base.Seed == 0 {
		base.Seed = time.Now().UnixNano()
	}
	cfgs := make([]core.RuntimeConfig, flagRuns)
	for i := range cfgs {
		cfgs[i] = base
		cfgs[i].Seed = base.Seed + int64(i)
	}

	start := time.Now()
	logger.Debug("starting batch", "runs", flagRuns, "generations", generations, "size", base.GridSize, "mode", base.SeedMode)
	results, err := sim.RunBatch(cmd.Context(), cfgs, generations, flagWorkers)
	if err != nil {
		exitErr("simulation failed", err)
	}
	logger.Info("batch finished", "runs", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Printf("%-20s  %-10s  %s\n", "Seed", "Generation", "Population")
	fmt.Printf("%-20s  %-10s  %s\n", "----", "----------", "----------")
	for _, r := range results {
		fmt.Printf("%-20d  %-10d  %d\n", r.Config.Seed, r.Generation, r.Population)
	}

	if flagRecord {
		recordRuns(results, logger)
	}
}

// recordRuns saves batch results as history runs.
func recordRuns(results []sim.BatchResult, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	for _, r := range results {
		if _, err := store.SaveRun(storage.RunRecord{
			SeedMode:        r.Config.SeedMode,
			GridSize:        r.Config.GridSize,
			Seed:            r.Config.Seed,
			Generations:     r.Generation,
			FinalPopulation: r.Population,
		}); err != nil {
			logger.Warn("could not record run", "seed", r.Config.Seed, "error", err)
			return
		}
	}
}
