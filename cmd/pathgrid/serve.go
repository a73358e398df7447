package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkostin/pathgrid/internal/config"
	"github.com/mkostin/pathgrid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interactive sessions over SSH",
	Long: `Start an SSH server that gives every connection its own pathfinding
sandbox. Connect with any SSH client:

  ssh -p 23235 localhost

Examples:
  pathgrid serve
  pathgrid serve --ssh :2222
  pathgrid serve --host-key ./host_key --idle-timeout 10`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes")
}

func runServe(cmd *cobra.Command, args []string) {
	engineCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		engineCfg.Grid.Seed = flagSeed
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Engine:      engineCfg,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
