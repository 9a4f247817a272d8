// Package config provides YAML-based simulation configuration loading and
// validation for the life platform.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// LifeConfig contains all configuration for a simulation run.
type LifeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Seed      SeedConfig      `yaml:"seed"`
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
	Export    ExportConfig    `yaml:"export"`
}

// GridConfig defines the grid dimension.
type GridConfig struct {
	Size int `yaml:"size"` // N for the N x N torus
}

// SeedConfig defines how the first generation is built.
type SeedConfig struct {
	Mode             string  `yaml:"mode"`
	AliveProbability float64 `yaml:"alive_probability"`
	AnchorRow        int     `yaml:"anchor_row"`
	AnchorCol        int     `yaml:"anchor_col"`
	Value            int64   `yaml:"value"` // RNG seed, 0 = time based
}

// AnimationConfig defines generation timing.
type AnimationConfig struct {
	IntervalMS     int `yaml:"interval_ms"`
	MaxGenerations int `yaml:"max_generations"` // 0 = unlimited
}

// DisplayConfig defines terminal glyphs and colors.
type DisplayConfig struct {
	Cells      string `yaml:"cells"` // "half" (two rows per character) or "full"
	AliveGlyph string `yaml:"alive_glyph"`
	DeadGlyph  string `yaml:"dead_glyph"`
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
}

// ExportConfig defines animated GIF output.
type ExportConfig struct {
	Frames  int `yaml:"frames"`
	Scale   int `yaml:"scale"`    // Pixels per cell
	DelayMS int `yaml:"delay_ms"` // Delay between frames
}

// Interval returns the generation interval as a duration.
func (c LifeConfig) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMS) * time.Millisecond
}

// Runtime converts the config to the RuntimeConfig passed to a simulation.
func (c LifeConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:          screenW,
		ScreenH:          screenH,
		GridSize:         c.Grid.Size,
		Interval:         c.Interval(),
		Seed:             c.Seed.Value,
		SeedMode:         c.Seed.Mode,
		AliveProbability: c.Seed.AliveProbability,
		AnchorRow:        c.Seed.AnchorRow,
		AnchorCol:        c.Seed.AnchorCol,
	}
}

// SimDisplay resolves glyph and color names into a sim.Display.
func (c LifeConfig) SimDisplay() (sim.Display, error) {
	d := sim.DefaultDisplay()

	switch c.Display.Cells {
	case "", "half":
		d.HalfBlock = true
	case "full":
		d.HalfBlock = false
	default:
		return d, fmt.Errorf("config: unknown display.cells %q (want half or full)", c.Display.Cells)
	}
	if c.Display.AliveGlyph != "" {
		d.AliveGlyph, _ = utf8.DecodeRuneInString(c.Display.AliveGlyph)
	}
	if c.Display.DeadGlyph != "" {
		d.DeadGlyph, _ = utf8.DecodeRuneInString(c.Display.DeadGlyph)
	}
	if c.Display.AliveColor != "" {
		color, ok := core.ParseColor(c.Display.AliveColor)
		if !ok {
			return d, fmt.Errorf("config: unknown alive_color %q", c.Display.AliveColor)
		}
		d.AliveColor = color
	}
	if c.Display.DeadColor != "" {
		color, ok := core.ParseColor(c.Display.DeadColor)
		if !ok {
			return d, fmt.Errorf("config: unknown dead_color %q", c.Display.DeadColor)
		}
		d.DeadColor = color
	}
	return d, nil
}

// Validate reports every invalid setting in one error.
func (c LifeConfig) Validate() error {
	var errs []error
	if c.Grid.Size <= 0 {
		errs = append(errs, fmt.Errorf("grid.size must be positive, got %d", c.Grid.Size))
	}
	if !registry.Exists(c.Seed.Mode) {
		errs = append(errs, fmt.Errorf("seed.mode %q is not a known seed mode", c.Seed.Mode))
	}
	if c.Seed.AliveProbability < 0 || c.Seed.AliveProbability > 1 {
		errs = append(errs, fmt.Errorf("seed.alive_probability must be within [0, 1], got %v", c.Seed.AliveProbability))
	}
	if c.Animation.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("animation.interval_ms must be positive, got %d", c.Animation.IntervalMS))
	}
	if c.Animation.MaxGenerations < 0 {
		errs = append(errs, fmt.Errorf("animation.max_generations must not be negative, got %d", c.Animation.MaxGenerations))
	}
	if c.Export.Frames <= 0 || c.Export.Scale <= 0 || c.Export.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("export settings out of range: %+v", c.Export))
	}
	if _, err := c.SimDisplay(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// SpeedPreset represents a named generation interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// IntervalForPreset returns the interval in milliseconds for a speed preset.
func IntervalForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 200, true
	case SpeedNormal:
		return 50, true
	case SpeedFast:
		return 16, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
func ApplySpeedPreset(cfg *LifeConfig, preset SpeedPreset) error {
	ms, ok := IntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown speed preset %q", preset)
	}
	cfg.Animation.IntervalMS = ms
	return nil
}
