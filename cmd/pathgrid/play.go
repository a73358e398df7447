package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkostin/pathgrid/internal/config"
	"github.com/mkostin/pathgrid/internal/platform/tui"
	"github.com/mkostin/pathgrid/internal/storage"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a generated grid interactively",
	Long: `Generate a terrain grid and watch A* re-route live as you move the goal.

Controls:
  Mouse / arrows / WASD - Move the goal
  R                     - Regenerate the grid
  O                     - Toggle the explored-cells overlay
  F                     - Toggle pointer-follow mode
  Q / Ctrl+C            - Quit

Examples:
  pathgrid play
  pathgrid play --seed 42 --debug
  pathgrid play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and the explored overlay")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Grid.Seed = flagSeed
	}
	if cfg.Grid.Seed == 0 {
		cfg.Grid.Seed = uint64(time.Now().UnixNano())
	}
	if flagDebug {
		cfg.Engine.Debug = true
	}

	// Shrink the grid to the terminal, leaving room for the HUD lines.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if cfg.Grid.Width > w {
			cfg.Grid.Width = w
		}
		if cfg.Grid.Height > h-2 {
			cfg.Grid.Height = h - 2
		}
	}

	logger := newPlayLogger(cfg.Engine.Debug)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the sandbox still works
		store = nil
	}

	runErr := tui.Run(store, cfg, flagFPS, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// newPlayLogger returns a logger for core diagnostics. Writing to stderr
// would corrupt the TUI, so debug output goes to a log file instead.
func newPlayLogger(debug bool) *log.Logger {
	var w io.Writer = io.Discard
	if debug {
		if home, err := os.UserHomeDir(); err == nil {
			path := filepath.Join(home, ".pathgrid", "pathgrid.log")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
					w = f
				}
			}
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathgrid",
	})
}
