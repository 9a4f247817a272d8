package life

// NeighborCount returns the number of live cells among the 8 neighbors of
// (row, col). Both axes wrap independently, so corners wrap diagonally.
func NeighborCount(g *Grid, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.At(row+dr, col+dc) == Alive {
				count++
			}
		}
	}
	return count
}

// Rule applies Conway's B3/S23 rule to a single cell.
func Rule(c Cell, neighbors int) Cell {
	if c == Alive {
		return Cell(neighbors == 2 || neighbors == 3)
	}
	return Cell(neighbors == 3)
}

// Stepper advances a grid by one generation. It owns the scratch buffer the
// next generation is written into; after a step the buffers are swapped so the
// grid holds the new generation and the stepper holds the old one for reuse.
// A Stepper must not be shared between goroutines.
type Stepper struct {
	scratch []Cell
}

// NewStepper allocates a stepper for grids of size n.
func NewStepper(n int) *Stepper {
	if n < 0 {
		n = 0
	}
	return &Stepper{scratch: make([]Cell, n*n)}
}

// Step replaces g's contents with its next generation.
func (s *Stepper) Step(g *Grid) {
	n := g.n
	if len(s.scratch) != len(g.cells) {
		s.scratch = make([]Cell, len(g.cells))
	}
	cur, nxt := g.cells, s.scratch
	for r := 0; r < n; r++ {
		up := ((r-1)%n + n) % n
		down := (r + 1) % n
		for c := 0; c < n; c++ {
			left := ((c-1)%n + n) % n
			right := (c + 1) % n
			neighbors := 0
			for _, idx := range [8]int{
				up*n + left, up*n + c, up*n + right,
				r*n + left, r*n + right,
				down*n + left, down*n + c, down*n + right,
			} {
				if cur[idx] == Alive {
					neighbors++
				}
			}
			nxt[r*n+c] = Rule(cur[r*n+c], neighbors)
		}
	}
	g.cells, s.scratch = nxt, cur
}

// Next returns the following generation as a new grid, leaving g unchanged.
func Next(g *Grid) *Grid {
	out := g.Clone()
	NewStepper(g.n).Step(out)
	return out
}
