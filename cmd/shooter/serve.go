package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-shooter/internal/config"
	"github.com/vovakirdan/sky-shooter/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shooter SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the difficulty menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  shooter serve                           # Listen on :23234 with auto-generated key
  shooter serve --ssh :2222               # Listen on port 2222
  shooter serve --host-key ./my_host_key  # Use specific host key
  shooter serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	shooterCfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}

	// The server owns no terminal, so logs always go to stderr
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter-ssh",
	})

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Shooter = shooterCfg
	cfg.TickRate = flagFPS
	cfg.HoldWindow = time.Duration(shooterCfg.Input.HoldWindowMS) * time.Millisecond
	cfg.RepeatDelay = time.Duration(shooterCfg.Input.RepeatDelayMS) * time.Millisecond
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting shooter SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: %s\n", connectHint(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// connectHint returns the ssh command that reaches a server listening on addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
