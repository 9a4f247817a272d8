package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

func TestCellStyle(t *testing.T) {
	style := cellStyle(core.ColorBrightGreen, core.ColorGray)
	if style.GetForeground() != lipgloss.Color("10") {
		t.Errorf("foreground = %v, expected 10", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("245") {
		t.Errorf("background = %v, expected 245", style.GetBackground())
	}

	plain := cellStyle(core.ColorDefault, core.ColorDefault)
	if _, ok := plain.GetBackground().(lipgloss.NoColor); !ok {
		t.Errorf("default background = %v, expected none", plain.GetBackground())
	}
}

func TestRenderScreenHalfBlocks(t *testing.T) {
	screen := core.NewScreen(4, 2)
	screen.SetCell(0, 0, core.Cell{Rune: '▀', Color: core.ColorBrightGreen, Bg: core.ColorGray})
	screen.SetCell(1, 0, core.Cell{Rune: '▄', Color: core.ColorBrightGreen, Bg: core.ColorGray})
	screen.SetCell(2, 0, core.Cell{Rune: '█', Color: core.ColorBrightGreen})

	lines := strings.Split(RenderScreen(screen), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for _, glyph := range []string{"▀", "▄", "█"} {
		if !strings.Contains(lines[0], glyph) {
			t.Errorf("first line %q is missing %s", lines[0], glyph)
		}
	}
	if got := lipgloss.Width(lines[1]); got != 4 {
		t.Errorf("second line width = %d, expected 4", got)
	}
}
