// pathgrid is an interactive A* pathfinding sandbox for the terminal.
//
// Usage:
//
//	pathgrid play            - Explore a generated grid interactively
//	pathgrid solve           - Run one search headlessly and print the result
//	pathgrid runs            - Show recorded search runs
//	pathgrid serve           - Serve interactive sessions over SSH
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Runs database path (default: ~/.pathgrid/runs.db)
//	--seed <value>   - World seed (0 = derive from time)
//	--fps <rate>     - Host tick rate (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   uint64
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathgrid",
	Short: "A* pathfinding sandbox in your terminal",
	Long: `pathgrid generates terrain grids and finds optimal routes across them
with A*, rendered live in your terminal.

Available commands:
  play     - Explore a generated grid interactively
  solve    - Run one search headlessly and print the result
  runs     - View recorded search runs
  serve    - Serve interactive sessions over SSH

Examples:
  pathgrid play
  pathgrid play --seed 42
  pathgrid solve --width 64 --height 40 --save
  pathgrid runs -i
  pathgrid serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathgrid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "World seed (0 = derive from time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host tick rate")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
