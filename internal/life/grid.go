// Package life implements Conway's Game of Life on a square toroidal grid.
// It has no dependencies beyond the standard library so the rules can be
// exercised directly by tests and by any presentation layer.
package life

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	if c {
		return "Alive"
	}
	return "Dead"
}

var (
	// ErrInvalidDimension is returned when a grid is requested with N <= 0.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrInvalidProbability is returned when an alive probability lies outside [0, 1].
	ErrInvalidProbability = errors.New("invalid alive probability")

	// ErrPatternOutOfBounds is returned when a pattern's bounding box does not
	// fit inside the grid at the requested anchor.
	ErrPatternOutOfBounds = errors.New("pattern out of bounds")

	// ErrSizeMismatch is returned when a cell buffer does not hold N*N cells.
	ErrSizeMismatch = errors.New("cell count does not match grid size")
)

// Grid is an N x N matrix of cells stored in row-major order.
// Coordinates passed to At and Set wrap around both axes.
type Grid struct {
	n     int
	cells []Cell
}

// NewEmpty creates a grid with every cell dead.
func NewEmpty(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("life: new grid of size %d: %w", n, ErrInvalidDimension)
	}
	return &Grid{n: n, cells: make([]Cell, n*n)}, nil
}

// NewRandom creates a grid where every cell is independently alive with the
// given probability.
func NewRandom(n int, aliveProbability float64, rng *rand.Rand) (*Grid, error) {
	if aliveProbability < 0 || aliveProbability > 1 {
		return nil, fmt.Errorf("life: alive probability %v: %w", aliveProbability, ErrInvalidProbability)
	}
	g, err := NewEmpty(n)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		// Float64 is in [0, 1), so p=0 never fires and p=1 always does.
		g.cells[i] = Cell(rng.Float64() < aliveProbability)
	}
	return g, nil
}

// FromCells builds a grid from a row-major cell buffer. The buffer is copied.
func FromCells(n int, cells []Cell) (*Grid, error) {
	g, err := NewEmpty(n)
	if err != nil {
		return nil, err
	}
	if len(cells) != n*n {
		return nil, fmt.Errorf("life: %d cells for size %d: %w", len(cells), n, ErrSizeMismatch)
	}
	copy(g.cells, cells)
	return g, nil
}

// Size returns N.
func (g *Grid) Size() int {
	return g.n
}

// wrap maps any integer onto [0, n).
func (g *Grid) wrap(v int) int {
	return (v%g.n + g.n) % g.n
}

func (g *Grid) index(row, col int) int {
	return g.wrap(row)*g.n + g.wrap(col)
}

// At returns the cell at (row, col) using toroidal addressing.
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set writes the cell at (row, col) using toroidal addressing.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Cells exposes the row-major backing slice. It is only valid until the next
// Stepper.Step on this grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{n: g.n, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Stamp copies the pattern's bounding box onto the grid with its top-left
// corner at (i, j), overwriting whatever was there. The box must fit without
// wrapping; otherwise ErrPatternOutOfBounds is returned and the grid is untouched.
func (g *Grid) Stamp(p Pattern, i, j int) error {
	if i < 0 || j < 0 || i+p.Height > g.n || j+p.Width > g.n {
		return fmt.Errorf("life: stamp %s (%dx%d) at (%d,%d) on %dx%d grid: %w",
			p.Name, p.Height, p.Width, i, j, g.n, g.n, ErrPatternOutOfBounds)
	}
	for r := 0; r < p.Height; r++ {
		row := g.cells[(i+r)*g.n+j : (i+r)*g.n+j+p.Width]
		for c := range row {
			row[c] = Dead
		}
	}
	for _, off := range p.Alive {
		g.cells[(i+off.Row)*g.n+j+off.Col] = Alive
	}
	return nil
}

// String renders the grid in plaintext form: one line per row, 'O' for a
// live cell and '.' for a dead one.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n + g.n)
	for r := 0; r < g.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[r*g.n : (r+1)*g.n] {
			if c == Alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParsePlaintext is the inverse of Grid.String. The text must describe a
// square grid.
func ParsePlaintext(text string) (*Grid, error) {
	if text == "" {
		return nil, fmt.Errorf("life: empty plaintext: %w", ErrInvalidDimension)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	n := len(lines)
	cells := make([]Cell, 0, n*n)
	for r, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("life: row %d has %d cells, expected %d: %w", r, len(line), n, ErrSizeMismatch)
		}
		for c := 0; c < n; c++ {
			switch line[c] {
			case 'O':
				cells = append(cells, Alive)
			case '.':
				cells = append(cells, Dead)
			default:
				return nil, fmt.Errorf("life: row %d col %d: unexpected %q", r, c, line[c])
			}
		}
	}
	return FromCells(n, cells)
}
