package life

import (
	"fmt"
	"sort"
)

// Offset is a (row, col) position inside a pattern's bounding box.
type Offset struct {
	Row, Col int
}

// Pattern is a fixed-size block of cells. Offsets listed in Alive are live;
// every other cell inside Height x Width is dead.
type Pattern struct {
	Name   string
	Height int
	Width  int
	Alive  []Offset
}

// Glider is the 3x3 glider, moving one cell down and right every 4 generations.
var Glider = Pattern{
	Name:   "glider",
	Height: 3,
	Width:  3,
	Alive: []Offset{
		{0, 2},
		{1, 0}, {1, 2},
		{2, 1}, {2, 2},
	},
}

// GosperGliderGun is Gosper's period-30 gun inside an 11x40 box. The canonical
// 9x36 gun sits at offset (1, 1), leaving a one-cell margin.
var GosperGliderGun = Pattern{
	Name:   "gosper",
	Height: 11,
	Width:  40,
	Alive: shift([]Offset{
		{0, 24},
		{1, 22}, {1, 24},
		{2, 12}, {2, 13}, {2, 20}, {2, 21}, {2, 34}, {2, 35},
		{3, 11}, {3, 15}, {3, 20}, {3, 21}, {3, 34}, {3, 35},
		{4, 0}, {4, 1}, {4, 10}, {4, 16}, {4, 20}, {4, 21},
		{5, 0}, {5, 1}, {5, 10}, {5, 14}, {5, 16}, {5, 17}, {5, 22}, {5, 24},
		{6, 10}, {6, 16}, {6, 24},
		{7, 11}, {7, 15},
		{8, 12}, {8, 13},
	}, 1, 1),
}

func shift(offsets []Offset, dr, dc int) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = Offset{Row: o.Row + dr, Col: o.Col + dc}
	}
	return out
}

var patterns = map[string]Pattern{
	Glider.Name:          Glider,
	GosperGliderGun.Name: GosperGliderGun,
}

// Patterns returns the named seed patterns sorted by name.
func Patterns() []Pattern {
	result := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("life: unknown pattern %q", name)
	}
	return p, nil
}
