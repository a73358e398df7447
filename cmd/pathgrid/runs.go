package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkostin/pathgrid/internal/platform/tui"
	"github.com/mkostin/pathgrid/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded search runs",
	Long: `Display recorded search runs, newest first.

Examples:
  pathgrid runs
  pathgrid runs --limit 50
  pathgrid runs -i`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if err := tui.RunRunboard(store, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pathgrid play' or 'pathgrid solve --save' to record one!")
		return
	}

	fmt.Printf("  %-17s  %-8s  %-10s  %-8s  %-8s  %-6s  %-9s  %s\n",
		"When", "Grid", "Seed", "Result", "Cost", "Cells", "Expanded", "ms")
	fmt.Printf("  %-17s  %-8s  %-10s  %-8s  %-8s  %-6s  %-9s  %s\n",
		"----", "----", "----", "------", "----", "-----", "--------", "--")

	for _, r := range runs {
		result := "no path"
		cost := "-"
		if r.Found {
			result = "found"
			cost = fmt.Sprintf("%.1f", r.Cost)
		}
		fmt.Printf("  %-17s  %-8s  %-10d  %-8s  %-8s  %-6d  %-9d  %.2f\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Seed, result, cost, r.PathLen, r.Expanded, r.DurationMs)
	}

	stats, err := store.GetStats()
	if err == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d found", stats.RunCount, stats.FoundCount)
		if stats.FoundCount > 0 {
			fmt.Printf(", avg cost %.1f, avg expanded %.0f", stats.AvgCost, stats.AvgExpanded)
		}
		fmt.Println()
	}
}
