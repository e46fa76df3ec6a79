package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the variant menu.
Scores are stored per-server (all users share the same leaderboard).
Sound is never played over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key
  flappy serve --db ./scores.db          # Use specific database
  flappy serve --idle-timeout 5m         # Drop idle players sooner

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", tui.DefaultSSHServerConfig().IdleTimeout, "Disconnect sessions idle for this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "flappy-ssh"})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("serving without scores", "err", err)
	} else {
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("cannot close scores database", "err", err)
			}
		}()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving flappy over SSH on %s (Ctrl+C to stop)\n", server.Addr())
	return server.Serve(ctx)
}
