package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Size: 100,
		},
		Seed: SeedConfig{
			Mode:             "random",
			AliveProbability: 0.2,
			AnchorRow:        1,
			AnchorCol:        1,
		},
		Animation: AnimationConfig{
			IntervalMS:     50,
			MaxGenerations: 0,
		},
		Display: DisplayConfig{
			Cells:      "half",
			AliveGlyph: "█",
			DeadGlyph:  " ",
			AliveColor: "bright_green",
			DeadColor:  "default",
		},
		Export: ExportConfig{
			Frames:  100,
			Scale:   4,
			DelayMS: 50,
		},
	}
}
