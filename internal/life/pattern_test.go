package life

import "testing"

func TestPatternsFitBoundingBox(t *testing.T) {
	for _, p := range Patterns() {
		seen := make(map[Offset]bool)
		for _, off := range p.Alive {
			if off.Row < 0 || off.Row >= p.Height || off.Col < 0 || off.Col >= p.Width {
				t.Errorf("%s: offset %v outside %dx%d box", p.Name, off, p.Height, p.Width)
			}
			if seen[off] {
				t.Errorf("%s: duplicate offset %v", p.Name, off)
			}
			seen[off] = true
		}
	}
}

func TestPatternSizes(t *testing.T) {
	testCases := []struct {
		name          string
		height, width int
		alive         int
	}{
		{"glider", 3, 3, 5},
		{"gosper", 11, 40, 36},
	}

	for _, tc := range testCases {
		p, err := LookupPattern(tc.name)
		if err != nil {
			t.Fatalf("LookupPattern(%q) failed: %v", tc.name, err)
		}
		if p.Height != tc.height || p.Width != tc.width {
			t.Errorf("%s: size %dx%d, expected %dx%d", tc.name, p.Height, p.Width, tc.height, tc.width)
		}
		if len(p.Alive) != tc.alive {
			t.Errorf("%s: %d live cells, expected %d", tc.name, len(p.Alive), tc.alive)
		}
	}
}

func TestLookupPatternUnknown(t *testing.T) {
	if _, err := LookupPattern("pulsar"); err == nil {
		t.Error("LookupPattern should fail for unknown names")
	}
}

func TestPatternsSorted(t *testing.T) {
	ps := Patterns()
	if len(ps) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(ps))
	}
	if ps[0].Name != "glider" || ps[1].Name != "gosper" {
		t.Errorf("Patterns() order = %s, %s", ps[0].Name, ps[1].Name)
	}
}
