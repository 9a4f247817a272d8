//go:build !ebiten

package window

import "github.com/vovakirdan/tui-life/internal/sim"

// Run always fails in headless builds.
func Run(*sim.Simulation, Options) error {
	return ErrUnavailable
}
