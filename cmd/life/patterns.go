package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List seed modes and built-in patterns",
	Long:  `Shows every registered seed mode and the size of each built-in pattern.`,
	Args:  cobra.NoArgs,
	Run:   runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No seed modes available.")
		return
	}

	fmt.Println("Seed modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 4 // "Mode" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "Mode", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "----", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Patterns (bounding box, live cells):")
	fmt.Println()
	for _, p := range life.Patterns() {
		fmt.Printf("  %-*s  %dx%d, %d cells\n", maxIDLen, p.Name, p.Height, p.Width, len(p.Alive))
	}

	fmt.Println()
	fmt.Println("Run 'life play --mode <mode>' to start one.")
}
