package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Starfall SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game with the launcher
menu. Runs are recorded under the SSH user name, and all users share
one leaderboard. Sessions have no audio.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.starfall/host_key

Examples:
  starfall serve                           # Listen on :23234 with auto-generated key
  starfall serve --ssh :2222               # Listen on port 2222
  starfall serve --host-key ./my_host_key  # Use specific host key
  starfall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall-ssh",
		Level:           level,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		store = nil
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.TickRate = flagFPS
	serverCfg.HoldTimeout = time.Duration(cfg.Simulation.HoldMS) * time.Millisecond
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Starfall SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
