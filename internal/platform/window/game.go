//go:build ebiten

package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// game adapts a Simulation to the ebiten.Game interface. Ebiten calls Update
// at a fixed rate; generations advance once per configured interval.
type game struct {
	sim      *sim.Simulation
	painter  *gridPainter
	opts     Options
	input    core.InputFrame
	interval time.Duration
	lastStep time.Time
}

// Run opens a window and blocks until it is closed.
func Run(simulation *sim.Simulation, opts Options) error {
	grid := simulation.Grid()
	if grid == nil {
		return fmt.Errorf("window: simulation has no grid")
	}
	if opts.Scale <= 0 {
		opts.Scale = 4
	}

	g := &game{
		sim:      simulation,
		painter:  newGridPainter(grid.Size()),
		opts:     opts,
		input:    core.NewInputFrame(),
		interval: simulation.Config().Interval,
	}

	side := grid.Size() * opts.Scale
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("life")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update handles keys and advances the simulation when the interval elapsed.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.input.Set(core.ActionStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cfg := g.sim.Config()
		cfg.Seed = time.Now().UnixNano()
		if err := g.sim.Reset(cfg); err != nil {
			return fmt.Errorf("window: reseed: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.interval = max(g.interval/2, 10*time.Millisecond)
		g.sim.SetInterval(g.interval)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.interval = min(g.interval*2, 2*time.Second)
		g.sim.SetInterval(g.interval)
	}

	// Pause and step are applied at once so they do not wait for a slow interval.
	if g.input.Has(core.ActionPause) || g.input.Has(core.ActionStep) || time.Since(g.lastStep) >= g.interval {
		res := g.sim.Step(g.input)
		if res.Advanced {
			g.lastStep = time.Now()
		}
		g.input.Clear()
		ebiten.SetWindowTitle(windowTitle(res.State))
	}
	return nil
}

// Draw renders the grid.
func (g *game) Draw(screen *ebiten.Image) {
	g.painter.blit(screen, g.sim.Grid().Cells(), g.opts.Alive, g.opts.Dead, g.opts.Scale)
}

func windowTitle(st core.SimState) string {
	title := fmt.Sprintf("life - gen %d  pop %d", st.Generation, st.Population)
	if st.Paused {
		title += "  [paused]"
	}
	return title
}

// Layout returns the logical screen size.
func (g *game) Layout(int, int) (int, int) {
	side := g.painter.n * g.opts.Scale
	return side, side
}
