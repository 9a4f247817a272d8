package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPlain        bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs and snapshots",
	Long: `Show recorded runs and saved snapshots.

On a terminal this opens an interactive browser: Tab switches between runs
and snapshots, Enter on a snapshot resumes it with 'life play'.
With --plain, or when output is not a terminal, both lists are printed.

Examples:
  life history
  life history --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the browser")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Rows per list in plain output")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening history database", err)
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		defer store.Close()
		printHistory(store)
		return
	}

	snapID, err := tui.RunHistory(store, width, height)
	store.Close()
	if err != nil {
		exitErr("running history browser", err)
	}
	if snapID > 0 {
		flagFromSnapshot = snapID
		runPlay(playCmd, nil)
	}
}

func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		exitErr("retrieving runs", err)
	}
	snaps, err := store.ListSnapshots(flagHistoryLimit)
	if err != nil {
		exitErr("retrieving snapshots", err)
	}

	fmt.Println("Recent runs")
	fmt.Println("===========")
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
	} else {
		fmt.Printf("%-6s  %-8s  %-6s  %-10s  %-10s  %s\n", "ID", "Mode", "Size", "Gens", "Pop", "Date")
		for _, r := range runs {
			fmt.Printf("%-6d  %-8s  %-6d  %-10d  %-10d  %s\n",
				r.ID, r.SeedMode, r.GridSize, r.Generations, r.FinalPopulation, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Println("Snapshots")
	fmt.Println("=========")
	if len(snaps) == 0 {
		fmt.Println("No snapshots saved yet. Press Ctrl+S during 'life play'.")
		return
	}
	fmt.Printf("%-6s  %-8s  %-6s  %-10s  %-10s  %s\n", "ID", "Mode", "Size", "Gen", "Pop", "Date")
	for _, s := range snaps {
		fmt.Printf("%-6d  %-8s  %-6d  %-10d  %-10d  %s\n",
			s.ID, s.SeedMode, s.GridSize, s.Generation, s.Population, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'life play --from-snapshot <id>' to resume one.")
}
