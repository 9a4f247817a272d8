package sim

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func testConfig(mode string, size int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.SeedMode = mode
	cfg.GridSize = size
	cfg.Seed = 12345
	return cfg
}

func TestResetSeedModes(t *testing.T) {
	testCases := []struct {
		mode       string
		population int
	}{
		{ModeEmpty, 0},
		{ModeGlider, 5},
		{ModeGosper, 36},
	}

	for _, tc := range testCases {
		t.Run(tc.mode, func(t *testing.T) {
			s := New(DefaultDisplay())
			if err := s.Reset(testConfig(tc.mode, 60)); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			st := s.State()
			if st.Population != tc.population {
				t.Errorf("Population = %d, expected %d", st.Population, tc.population)
			}
			if st.Generation != 0 {
				t.Errorf("Generation = %d, expected 0", st.Generation)
			}
		})
	}
}

func TestResetGliderAnchor(t *testing.T) {
	s := New(DefaultDisplay())
	cfg := testConfig(ModeGlider, 20)
	cfg.AnchorRow, cfg.AnchorCol = 5, 7
	if err := s.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	for _, off := range life.Glider.Alive {
		if s.Grid().At(5+off.Row, 7+off.Col) != life.Alive {
			t.Errorf("expected live cell at (%d,%d)", 5+off.Row, 7+off.Col)
		}
	}
}

func TestResetRandomDeterministic(t *testing.T) {
	a, b := New(DefaultDisplay()), New(DefaultDisplay())
	if err := a.Reset(testConfig(ModeRandom, 40)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := b.Reset(testConfig(ModeRandom, 40)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		a.Advance()
		b.Advance()
	}
	if !a.Grid().Equal(b.Grid()) {
		t.Error("same seed should produce identical runs")
	}
}

func TestResetErrors(t *testing.T) {
	s := New(DefaultDisplay())

	err := s.Reset(testConfig(ModeGosper, 20))
	if !errors.Is(err, life.ErrPatternOutOfBounds) {
		t.Errorf("gosper on 20x20 error = %v, expected ErrPatternOutOfBounds", err)
	}

	err = s.Reset(testConfig(ModeEmpty, 0))
	if !errors.Is(err, life.ErrInvalidDimension) {
		t.Errorf("size 0 error = %v, expected ErrInvalidDimension", err)
	}

	if err := s.Reset(testConfig("spiral", 20)); err == nil {
		t.Error("unknown seed mode should fail")
	}
}

func TestResetFailureKeepsPreviousGrid(t *testing.T) {
	s := New(DefaultDisplay())
	if err := s.Reset(testConfig(ModeGlider, 20)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := s.Reset(testConfig(ModeGosper, 20)); err == nil {
		t.Fatal("expected gosper reset to fail")
	}
	if s.Grid() == nil || s.State().Population != 5 {
		t.Error("failed reset should keep the previous grid")
	}
}

func TestStepPauseAndSingleStep(t *testing.T) {
	s := New(DefaultDisplay())
	if err := s.Reset(testConfig(ModeGlider, 20)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	in := core.NewInputFrame()
	res := s.Step(in)
	if !res.Advanced || res.State.Generation != 1 {
		t.Fatalf("unpaused step: %+v", res)
	}

	in.Set(core.ActionPause)
	res = s.Step(in)
	if res.Advanced || !res.State.Paused {
		t.Fatalf("pause should stop stepping: %+v", res)
	}

	in.Clear()
	res = s.Step(in)
	if res.Advanced || res.State.Generation != 1 {
		t.Fatalf("paused tick should not advance: %+v", res)
	}

	in.Set(core.ActionStep)
	res = s.Step(in)
	if !res.Advanced || res.State.Generation != 2 || !res.State.Paused {
		t.Fatalf("single step while paused: %+v", res)
	}

	in.Clear()
	in.Set(core.ActionPause)
	res = s.Step(in)
	if !res.Advanced || res.State.Paused {
		t.Fatalf("resume should advance: %+v", res)
	}
}

func TestLoadKeepsGeneration(t *testing.T) {
	g, _ := life.NewEmpty(12)
	if err := g.Stamp(life.Glider, 0, 0); err != nil {
		t.Fatalf("Stamp() failed: %v", err)
	}

	s := New(DefaultDisplay())
	cfg := testConfig(ModeRandom, 99)
	s.Load(cfg, g, 40)

	if s.Config().GridSize != 12 {
		t.Errorf("GridSize = %d, expected grid size to win", s.Config().GridSize)
	}
	s.Advance()
	if s.State().Generation != 41 {
		t.Errorf("Generation = %d, expected 41", s.State().Generation)
	}
}

func TestRenderFullGlyphsWithBorder(t *testing.T) {
	display := DefaultDisplay()
	display.HalfBlock = false
	s := New(display)
	cfg := testConfig(ModeGlider, 10)
	cfg.Interval = 50 * time.Millisecond
	if err := s.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	screen := core.NewScreen(40, 20)
	s.Render(screen)

	status := screen.Row(0)
	if !strings.HasPrefix(status, "gen 0  pop 5  10x10  glider  50ms") {
		t.Errorf("status line = %q", status)
	}
	if screen.Get(0, 1) != '┌' || screen.Get(11, 12) != '┘' {
		t.Error("grid should be framed when it fits")
	}

	// Glider anchored at (1,1); cell (0,2) of the pattern is grid (1,3),
	// drawn at screen x=1+3, y=2+1.
	cell := screen.GetCell(4, 3)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("live cell rendered as %+v", cell)
	}
	if screen.Get(2, 2) != ' ' {
		t.Errorf("dead cell rendered as %q", screen.Get(2, 2))
	}
}

func TestRenderClipsLargeGrid(t *testing.T) {
	s := New(DefaultDisplay())
	cfg := testConfig(ModeRandom, 100)
	cfg.AliveProbability = 1
	if err := s.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	screen := core.NewScreen(30, 10)
	s.Render(screen)

	// No border: every cell below the status line is a live glyph.
	for y := 1; y < 10; y++ {
		for x := 0; x < 30; x++ {
			if screen.Get(x, y) != '█' {
				t.Fatalf("expected live glyph at (%d,%d), got %q", x, y, screen.Get(x, y))
			}
		}
	}
}

func TestRenderPausedAndEmpty(t *testing.T) {
	s := New(DefaultDisplay())
	screen := core.NewScreen(60, 5)
	s.Render(screen)
	if !strings.Contains(screen.String(), "no grid loaded") {
		t.Error("render without grid should say so")
	}

	if err := s.Reset(testConfig(ModeEmpty, 10)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	s.Step(in)
	s.Render(screen)
	if !strings.Contains(screen.Row(0), "[paused]") {
		t.Errorf("status line should show pause, got %q", screen.Row(0))
	}
}

func TestPatternModesMatchPatterns(t *testing.T) {
	for _, p := range life.Patterns() {
		if !registry.Exists(p.Name) {
			t.Errorf("pattern %q has no seed mode", p.Name)
			continue
		}
		s := New(DefaultDisplay())
		if err := s.Reset(testConfig(p.Name, 60)); err != nil {
			t.Fatalf("Reset(%s) failed: %v", p.Name, err)
		}
		if got := s.State().Population; got != len(p.Alive) {
			t.Errorf("%s population = %d, expected %d", p.Name, got, len(p.Alive))
		}
	}
}

func TestRenderHalfBlock(t *testing.T) {
	s := New(DefaultDisplay())
	if err := s.Reset(testConfig(ModeGlider, 10)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	screen := core.NewScreen(40, 20)
	s.Render(screen)

	// 10 rows fit in 5 lines, framed by a 12x7 box.
	if screen.Get(0, 1) != '┌' || screen.Get(11, 7) != '┘' {
		t.Error("grid should be framed when it fits")
	}

	// Glider cells: (1,3) (2,1) (2,3) (3,2) (3,3). Line y holds rows 2y and 2y+1.
	testCases := []struct {
		x, y  int
		glyph rune
	}{
		{4, 2, '▄'}, // rows 0,1 col 3: bottom alive
		{2, 3, '▀'}, // rows 2,3 col 1: top alive
		{3, 3, '▄'}, // rows 2,3 col 2: bottom alive
		{4, 3, '█'}, // rows 2,3 col 3: both alive
		{1, 2, ' '}, // rows 0,1 col 0: both dead
	}
	for _, tc := range testCases {
		cell := screen.GetCell(tc.x, tc.y)
		if cell.Rune != tc.glyph {
			t.Errorf("cell (%d,%d) = %q, expected %q", tc.x, tc.y, cell.Rune, tc.glyph)
		}
		if tc.glyph != ' ' && cell.Color != core.ColorBrightGreen {
			t.Errorf("cell (%d,%d) color = %v, expected bright green", tc.x, tc.y, cell.Color)
		}
	}
}

func TestRenderHalfBlockOddSize(t *testing.T) {
	s := New(DefaultDisplay())
	cfg := testConfig(ModeRandom, 9)
	cfg.AliveProbability = 1
	if err := s.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	screen := core.NewScreen(40, 20)
	s.Render(screen)

	// Row 8 has no partner, so the last line draws only its top half.
	last := screen.GetCell(1, 2+4)
	if last.Rune != '▀' || last.Bg != core.ColorDefault {
		t.Errorf("last line cell = %+v, expected upper half block", last)
	}
	if screen.Get(1, 2+3) != '█' {
		t.Errorf("full line cell = %q, expected full block", screen.Get(1, 5))
	}
}

func TestPanWraps(t *testing.T) {
	s := New(DefaultDisplay())
	if err := s.Reset(testConfig(ModeEmpty, 100)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	s.Pan(-1, 250)
	if r, c := s.Offset(); r != 99 || c != 50 {
		t.Errorf("Offset() = (%d,%d), expected (99,50)", r, c)
	}

	if err := s.Reset(testConfig(ModeEmpty, 100)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if r, c := s.Offset(); r != 0 || c != 0 {
		t.Errorf("Offset() = (%d,%d) after reseed, expected (0,0)", r, c)
	}
}

func TestPanIgnoredWhenGridFits(t *testing.T) {
	s := New(DefaultDisplay())
	if err := s.Reset(testConfig(ModeGlider, 10)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	s.Pan(3, 3)

	screen := core.NewScreen(40, 20)
	s.Render(screen)
	if screen.Get(4, 3) != '█' {
		t.Errorf("fitted grid should not shift, got %q", screen.Get(4, 3))
	}
	if strings.Contains(screen.Row(0), "@") {
		t.Errorf("status line should not show an offset: %q", screen.Row(0))
	}
}

// panTo moves the view to an absolute offset.
func panTo(s *Simulation, row, col int) {
	r, c := s.Offset()
	s.Pan(row-r, col-c)
}

func TestPanRevealsWholeGrid(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	s := New(DefaultDisplay())
	if err := s.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	n := s.Grid().Size()

	// 80x23 leaves 22 lines below the status: 44 rows by 80 columns, no border.
	screen := core.NewScreen(80, 23)
	seen := make(map[[2]int]bool)
	for _, row := range []int{0, 44, 88} {
		for _, col := range []int{0, 80} {
			panTo(s, row, col)
			s.Render(screen)
			for y := 0; y < 22; y++ {
				for x := 0; x < 80; x++ {
					glyph := screen.Get(x, 1+y)
					top := glyph == '▀' || glyph == '█'
					bottom := glyph == '▄' || glyph == '█'
					r, c := (row+2*y)%n, (col+x)%n
					for i, alive := range []bool{top, bottom} {
						rr := (r + i) % n
						if alive != (s.Grid().At(rr, c) == life.Alive) {
							t.Fatalf("view at (%d,%d) shows cell (%d,%d) as %v", row, col, rr, c, alive)
						}
						seen[[2]int{rr, c}] = true
					}
				}
			}
		}
	}

	if len(seen) != n*n {
		t.Errorf("panning showed %d of %d cells", len(seen), n*n)
	}
}
