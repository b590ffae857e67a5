package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosweeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the duosweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the difficulty menu. Both
players of a match share that one connection (hot-seat). Finished matches
are stored per-server, so all users share the same history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from config
  - Otherwise, auto-generates a key at ~/.duosweeper/host_key

Examples:
  duosweeper serve                           # Listen on :23234 with auto-generated key
  duosweeper serve --ssh :2222               # Listen on port 2222
  duosweeper serve --host-key ./my_host_key  # Use specific host key
  duosweeper serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default: server.address from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default: server.idle_timeout from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	e, err := loadEnv(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	srv := e.cfg.Server
	cfg := tui.SSHServerConfig{
		Address:      srv.Address,
		HostKeyPath:  srv.HostKeyPath,
		DBPath:       e.dbPath,
		IdleTimeout:  srv.IdleTimeout,
		Difficulties: e.cfg.Difficulties(),
		Bank:         e.bank,
		Rewards:      e.rewards,
		Logger:       e.logger,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting duosweeper SSH server on %s\n", server.Addr())
	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
