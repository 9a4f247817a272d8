// life runs Conway's Game of Life on a square torus in the terminal.
//
// Usage:
//
//	life play               - Animate a grid in the terminal
//	life patterns           - List seed modes
//	life simulate           - Run seeds headless and print populations
//	life export             - Write an animated GIF
//	life history            - Browse recorded runs and snapshots
//	life serve              - Start SSH server for remote viewing
//	life window             - Animate in a desktop window (ebiten build tag)
//
// Global flags:
//
//	--interval <ms>   - Delay between generations (default from config: 50)
//	--seed <value>    - RNG seed for reproducible random grids
//	--db <path>       - Database path (default: ~/.life/life.db)
//	--config <path>   - Custom config YAML
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

// minGridSize is the largest size the CLI treats as a mistake and replaces
// with the configured default.
const minGridSize = 8

var (
	// Global flags
	flagInterval   int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life animates Conway's Game of Life on an N x N grid whose edges wrap
around, so every cell has exactly eight neighbors.

Available commands:
  play      - Animate a grid in the terminal
  patterns  - List seed modes
  simulate  - Run seeds headless and print populations
  export    - Write an animated GIF
  history   - Browse recorded runs and snapshots
  serve     - Start SSH server for remote viewing
  window    - Animate in a desktop window

Examples:
  life play
  life play --mode glider --size 40
  life play --mode gosper --interval 100
  life simulate --runs 8 --generations 500
  life export --mode gosper --out gun.gif`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagInterval, "interval", 0, "Milliseconds between generations (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/life.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
}

// newLogger returns a stderr logger honoring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// seedFlags are the per-command seed overrides shared by play, simulate,
// export, serve and window.
type seedFlags struct {
	size        int
	mode        string
	probability float64
	row         int
	col         int
	speed       string
}

func (f *seedFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.size, "size", 0, "Grid size N (values <= 8 fall back to the config size)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Seed mode (see 'life patterns')")
	cmd.Flags().Float64Var(&f.probability, "probability", 0, "Alive probability for the random mode")
	cmd.Flags().IntVar(&f.row, "row", 0, "Pattern anchor row")
	cmd.Flags().IntVar(&f.col, "col", 0, "Pattern anchor column")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Speed preset: slow, normal, fast")
}

// loadConfig loads the YAML config, applies global and command flags that
// were set explicitly, and validates the result.
func loadConfig(cmd *cobra.Command, f *seedFlags, logger *log.Logger) (config.LifeConfig, error) {
	cfg, err := config.LoadLife(flagConfigPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if f != nil {
		if f.speed != "" {
			if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(f.speed)); err != nil {
				return cfg, err
			}
		}
		if flags.Changed("size") {
			cfg.Grid.Size = f.size
		}
		if flags.Changed("mode") {
			cfg.Seed.Mode = f.mode
		}
		if flags.Changed("probability") {
			cfg.Seed.AliveProbability = f.probability
		}
		if flags.Changed("row") {
			cfg.Seed.AnchorRow = f.row
		}
		if flags.Changed("col") {
			cfg.Seed.AnchorCol = f.col
		}
	}
	if flagInterval > 0 {
		cfg.Animation.IntervalMS = flagInterval
	}
	if flagSeed != 0 {
		cfg.Seed.Value = flagSeed
	}

	if cfg.Grid.Size <= minGridSize {
		fallback := config.DefaultLifeConfig().Grid.Size
		logger.Warn("grid size too small, using default", "size", cfg.Grid.Size, "default", fallback)
		cfg.Grid.Size = fallback
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// exitErr prints err the way every command reports failures and exits.
func exitErr(format string, err error) {
	fmt.Fprintf(os.Stderr, "Error: "+format+": %v\n", err)
	os.Exit(1)
}
