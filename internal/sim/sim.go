// Package sim drives a life grid through generations for the platform layers.
// It owns the grid and its stepper, tracks generation and pause state, and
// draws frames into a core.Screen. It has no Bubble Tea dependency.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// hudHeight is the number of screen rows reserved above the grid.
const hudHeight = 1

// Display controls how cells are drawn into a Screen.
// With HalfBlock set each character holds two grid rows drawn with block
// glyphs, and the glyph fields are ignored.
type Display struct {
	AliveGlyph rune
	DeadGlyph  rune
	AliveColor core.Color
	DeadColor  core.Color
	HalfBlock  bool
}

// DefaultDisplay returns the default glyphs and colors.
func DefaultDisplay() Display {
	return Display{
		AliveGlyph: '█',
		DeadGlyph:  ' ',
		AliveColor: core.ColorBrightGreen,
		DeadColor:  core.ColorDefault,
		HalfBlock:  true,
	}
}

// Simulation runs one grid. It is not safe for concurrent use; callers that
// want parallel runs create one Simulation per goroutine.
type Simulation struct {
	cfg        core.RuntimeConfig
	display    Display
	grid       *life.Grid
	stepper    *life.Stepper
	generation uint64
	paused     bool
	offRow     int // top-left grid cell of the view
	offCol     int
}

// New creates a simulation with the given display settings.
// Reset or Load must be called before stepping.
func New(display Display) *Simulation {
	return &Simulation{display: display}
}

// Reset seeds a fresh grid using cfg.SeedMode and rewinds the generation counter.
// On error the previous grid is kept.
func (s *Simulation) Reset(cfg core.RuntimeConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	grid, err := registry.Seed(cfg.SeedMode, cfg, rng)
	if err != nil {
		return fmt.Errorf("sim: seed %s: %w", cfg.SeedMode, err)
	}
	s.Load(cfg, grid, 0)
	return nil
}

// Load installs an existing grid, e.g. one restored from a snapshot.
// The grid's size overrides cfg.GridSize.
func (s *Simulation) Load(cfg core.RuntimeConfig, grid *life.Grid, generation uint64) {
	cfg.GridSize = grid.Size()
	s.cfg = cfg
	s.grid = grid
	s.stepper = life.NewStepper(grid.Size())
	s.generation = generation
	s.paused = false
	s.offRow, s.offCol = 0, 0
}

// Step processes one platform tick. Pause toggles stepping; Step advances a
// single generation while paused.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}

	advanced := false
	if !s.paused || in.Has(core.ActionStep) {
		s.Advance()
		advanced = true
	}

	return core.StepResult{State: s.State(), Advanced: advanced}
}

// Advance computes the next generation regardless of pause state.
func (s *Simulation) Advance() {
	if s.grid == nil {
		return
	}
	s.stepper.Step(s.grid)
	s.generation++
}

// State returns the current simulation state.
func (s *Simulation) State() core.SimState {
	st := core.SimState{
		Generation: s.generation,
		Paused:     s.paused,
	}
	if s.grid != nil {
		st.Population = s.grid.Population()
	}
	return st
}

// Grid returns the live grid. Callers must not keep the Cells slice across steps.
func (s *Simulation) Grid() *life.Grid {
	return s.grid
}

// SetInterval records a new generation interval for display.
// Timing itself is owned by the platform layer.
func (s *Simulation) SetInterval(d time.Duration) {
	s.cfg.Interval = d
}

// Pan moves the view by the given number of grid rows and columns. The grid
// is a torus, so the offset wraps. Axes that fit on screen ignore it.
func (s *Simulation) Pan(dRow, dCol int) {
	if s.grid == nil {
		return
	}
	n := s.grid.Size()
	s.offRow = ((s.offRow+dRow)%n + n) % n
	s.offCol = ((s.offCol+dCol)%n + n) % n
}

// Offset returns the grid cell drawn at the top-left of the view.
func (s *Simulation) Offset() (row, col int) {
	return s.offRow, s.offCol
}

// Config returns the configuration of the current run.
func (s *Simulation) Config() core.RuntimeConfig {
	return s.cfg
}

// Render draws a status line and the part of the grid that fits on dst,
// starting at the pan offset. The grid gets a border when all of it fits.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	if s.grid == nil {
		dst.DrawTextCentered(dst.Height()/2, "no grid loaded")
		return
	}

	st := s.State()
	n := s.grid.Size()
	rowsPerLine := 1
	if s.display.HalfBlock {
		rowsPerLine = 2
	}
	lines := (n + rowsPerLine - 1) / rowsPerLine

	view := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	originX, originY := view.X, view.Y
	if n+2 <= view.W && lines+2 <= view.H {
		dst.DrawBox(core.NewRect(view.X, view.Y, n+2, lines+2))
		originX++
		originY++
	}
	visLines := core.Clamp(view.Bottom()-originY, 0, lines)
	visCols := core.Clamp(view.Right()-originX, 0, n)

	offRow, offCol := s.offRow, s.offCol
	if visLines == lines {
		offRow = 0
	}
	if visCols == n {
		offCol = 0
	}

	status := fmt.Sprintf("gen %d  pop %d  %dx%d  %s  %dms",
		st.Generation, st.Population, n, n, s.cfg.SeedMode, s.cfg.Interval.Milliseconds())
	if offRow != 0 || offCol != 0 {
		status += fmt.Sprintf("  @%d,%d", offRow, offCol)
	}
	if st.Paused {
		status += "  [paused]"
	}
	dst.DrawText(0, 0, status)

	cells := s.grid.Cells()
	alive := func(r, c int) bool {
		return cells[((offRow+r)%n)*n+(offCol+c)%n] == life.Alive
	}
	for y := 0; y < visLines; y++ {
		for c := 0; c < visCols; c++ {
			x := originX + c
			if !view.Contains(x, originY+y) {
				continue
			}
			if !s.display.HalfBlock {
				dst.SetCell(x, originY+y, s.fullCell(alive(y, c)))
				continue
			}
			top := 2 * y
			hasBottom := top+1 < n
			dst.SetCell(x, originY+y, s.halfCell(alive(top, c), hasBottom && alive(top+1, c), hasBottom))
		}
	}
}

func (s *Simulation) fullCell(alive bool) core.Cell {
	if alive {
		return core.Cell{Rune: s.display.AliveGlyph, Color: s.display.AliveColor}
	}
	return core.Cell{Rune: s.display.DeadGlyph, Color: s.display.DeadColor}
}

// halfCell draws two vertically stacked grid cells in one character. The
// foreground carries live cells and the background carries dead ones.
// Without a bottom row the lower half keeps the terminal background.
func (s *Simulation) halfCell(top, bottom, hasBottom bool) core.Cell {
	on, off := s.display.AliveColor, s.display.DeadColor
	bg := off
	if !hasBottom {
		bg = core.ColorDefault
	}
	switch {
	case top && bottom:
		return core.Cell{Rune: '█', Color: on, Bg: bg}
	case top:
		return core.Cell{Rune: '▀', Color: on, Bg: bg}
	case bottom:
		return core.Cell{Rune: '▄', Color: on, Bg: off}
	default:
		return core.Cell{Rune: ' ', Color: off, Bg: bg}
	}
}
