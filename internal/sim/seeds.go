package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Seed mode identifiers. Exactly one is selected per run.
const (
	ModeRandom = "random"
	ModeEmpty  = "empty"
	ModeGlider = "glider"
	ModeGosper = "gosper"
)

func init() {
	registry.Register(ModeRandom, "Each cell alive with the configured probability", seedRandom)
	registry.Register(ModeEmpty, "All cells dead", seedEmpty)
	registry.Register(ModeGlider, "A single glider at the anchor", seedPattern(ModeGlider))
	registry.Register(ModeGosper, "Gosper glider gun at the anchor", seedPattern(ModeGosper))
}

func seedRandom(cfg core.RuntimeConfig, rng *rand.Rand) (*life.Grid, error) {
	return life.NewRandom(cfg.GridSize, cfg.AliveProbability, rng)
}

func seedEmpty(cfg core.RuntimeConfig, _ *rand.Rand) (*life.Grid, error) {
	return life.NewEmpty(cfg.GridSize)
}

// seedPattern stamps the named pattern at the configured anchor.
func seedPattern(name string) registry.Seeder {
	return func(cfg core.RuntimeConfig, _ *rand.Rand) (*life.Grid, error) {
		p, err := life.LookupPattern(name)
		if err != nil {
			return nil, err
		}
		g, err := life.NewEmpty(cfg.GridSize)
		if err != nil {
			return nil, err
		}
		if err := g.Stamp(p, cfg.AnchorRow, cfg.AnchorCol); err != nil {
			return nil, err
		}
		return g, nil
	}
}
