package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uberjump/internal/levels"
	"github.com/vovakirdan/uberjump/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the UberJump SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a level picker.
Progress is stored per-server (all users share the same high score).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.uberjump/host_key

Examples:
  uberjump serve                           # Listen on :23235 with auto-generated key
  uberjump serve --ssh :2222               # Listen on port 2222
  uberjump serve --host-key ./my_host_key  # Use specific host key
  uberjump serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: exitCode(runServe),
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ []string) int {
	logger := newLogger(os.Stderr)

	tunables, err := loadTunables()
	if err != nil {
		logger.Error("cannot load tunables", "error", err)
		return 1
	}

	lvls, err := levels.NewLoader(levelSource()).LoadAll()
	if err != nil {
		logger.Error("cannot load levels", "error", err)
		return 1
	}

	store, tracker := openProgress(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, tui.GameDeps{
		Levels:  lvls,
		Config:  tunables,
		Store:   store,
		Tracker: tracker,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		return 1
	}

	fmt.Printf("Starting UberJump SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	return 0
}
