package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a board picker menu.
Results are stored per-server (all users share the same best times).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mines/host_key

HTTP endpoint (optional, --http):
  /metrics                    - Prometheus metrics
  /healthz                    - Liveness
  /api/boards                 - Presets
  /api/boards/<id>/best       - Fastest wins
  /api/boards/<id>/recent     - Latest games
  /api/boards/<id>/scores     - High scores
  /api/boards/<id>/stats      - Played, won, exploded, timed out
  /api/results/<uuid>         - A single result
  /api/sessions/<id>/results  - Games of one session

Examples:
  mines serve                           # Listen on :23234 with auto-generated key
  mines serve --ssh :2222               # Listen on port 2222
  mines serve --http :9090              # Also serve metrics and stats
  mines serve --host-key ./my_host_key  # Use specific host key
  mines serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Metrics and stats HTTP address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.HTTPAddress = flagHTTPAddr
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting minesweeper SSH server on %s\n", cfg.Address)
	if cfg.HTTPAddress != "" {
		fmt.Printf("Metrics and stats on http://%s\n", cfg.HTTPAddress)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
