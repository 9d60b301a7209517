package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballbreaker/internal/games/breaker"
	"github.com/vovakirdan/ballbreaker/internal/logging"
	"github.com/vovakirdan/ballbreaker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Host Ball Breaker over SSH. Every connection gets its own game.

Players connect with:
  ssh -p 23234 localhost

Examples:
  ballbreaker serve
  ballbreaker serve --ssh :2222
  ballbreaker serve --host-key ./host_key --idle-timeout 10`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.ballbreaker/host_key)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes")
}

func runServe(_ *cobra.Command, _ []string) error {
	if _, err := breaker.LoadConfig(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(flagLogLevel)
	logger := logging.New(os.Stderr, level, "ballbreaker-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Ball Breaker SSH server listening on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop.")

	return server.ListenAndServe(ctx)
}
