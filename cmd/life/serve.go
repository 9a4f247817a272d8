package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	serveFlags      seedFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that animates a simulation for every connection.

Each SSH session gets its own grid, seeded from the config and flags with
a fresh time based seed unless --seed is given. Runs and snapshots go to
the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.life/host_key

Examples:
  life serve                           # Listen on :23234 with auto-generated key
  life serve --ssh :2222               # Listen on port 2222
  life serve --mode gosper --size 80   # Every visitor gets a glider gun

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveFlags.bind(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger("life-ssh")

	lifeCfg, err := loadConfig(cmd, &serveFlags, logger)
	if err != nil {
		exitErr("invalid configuration", err)
	}
	display, err := lifeCfg.SimDisplay()
	if err != nil {
		exitErr("invalid display settings", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Life = lifeCfg.Runtime(0, 0)
	cfg.Display = display
	cfg.MaxGenerations = uint64(lifeCfg.Animation.MaxGenerations)

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		exitErr("creating server", err)
	}

	fmt.Printf("Starting life SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		exitErr("server", err)
	}
}
