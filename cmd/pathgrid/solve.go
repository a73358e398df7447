package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkostin/pathgrid/internal/boundary"
	"github.com/mkostin/pathgrid/internal/config"
	"github.com/mkostin/pathgrid/internal/grid"
	"github.com/mkostin/pathgrid/internal/storage"
	"github.com/mkostin/pathgrid/internal/world"
)

var (
	flagWidth  int
	flagHeight int
	flagStart  string
	flagGoal   string
	flagSave   bool
	flagDump   string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one search headlessly and print the result",
	Long: `Generate a grid, run a single A* search, and print the outcome.

Start and goal default to the first and last passable cells; override them
with --start and --goal as "x,y".

Examples:
  pathgrid solve --seed 42
  pathgrid solve --width 64 --height 40 --start 0,0 --goal 63,39
  pathgrid solve --save --dump world.bin`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (overrides config)")
	solveCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (overrides config)")
	solveCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as x,y")
	solveCmd.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as x,y")
	solveCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the runs database")
	solveCmd.Flags().StringVar(&flagDump, "dump", "", "Write the state snapshot to a file")
}

func runSolve(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pathgrid"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	seed := cfg.Grid.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w, err := world.New(cfg.Grid.Width, cfg.Grid.Height, seed)
	if err != nil {
		logger.Fatal("generate world", "error", err)
	}

	if flagStart != "" {
		c, parseErr := parseCell(flagStart)
		if parseErr != nil {
			logger.Fatal("parse --start", "error", parseErr)
		}
		if err := w.SetStart(c); err != nil {
			logger.Fatal("set start", "error", err)
		}
	}
	if flagGoal != "" {
		c, parseErr := parseCell(flagGoal)
		if parseErr != nil {
			logger.Fatal("parse --goal", "error", parseErr)
		}
		if err := w.SetGoal(c); err != nil {
			logger.Fatal("set goal", "error", err)
		}
	}

	started := time.Now()
	res, err := w.Search()
	if err != nil {
		logger.Fatal("search", "error", err)
	}
	durationMs := float64(time.Since(started).Microseconds()) / 1000.0

	fmt.Printf("Grid %dx%d, seed %d, start %s, goal %s\n",
		w.Grid.W, w.Grid.H, seed, w.Start, w.Goal)
	if res.Found {
		fmt.Printf("Path found: cost %.1f, %d cells, %d expanded, %.2f ms\n",
			res.Cost, len(res.Path), res.Expanded, durationMs)
	} else {
		fmt.Printf("No path: %d expanded, %.2f ms\n", res.Expanded, durationMs)
	}

	if flagSave {
		saveRun(logger, w, res, seed, durationMs)
	}

	if flagDump != "" {
		data := boundary.EncodeState(w)
		if err := os.WriteFile(flagDump, data, 0o644); err != nil {
			logger.Fatal("write snapshot", "error", err)
		}
		fmt.Printf("Snapshot written to %s (%d bytes)\n", flagDump, len(data))
	}
}

func saveRun(logger *log.Logger, w *world.State, res world.Result, seed uint64, durationMs float64) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("open runs database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveRun(storage.RunEntry{
		Seed:       seed,
		Width:      w.Grid.W,
		Height:     w.Grid.H,
		StartX:     w.Start.X,
		StartY:     w.Start.Y,
		GoalX:      w.Goal.X,
		GoalY:      w.Goal.Y,
		Found:      res.Found,
		Cost:       res.Cost,
		PathLen:    len(res.Path),
		Expanded:   res.Expanded,
		DurationMs: durationMs,
	})
	if err != nil {
		logger.Error("save run", "error", err)
	}
}

// parseCell parses "x,y" into a coordinate.
func parseCell(s string) (grid.Coord, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return grid.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	return grid.C(x, y), nil
}
