package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbsnake/internal/config"
	"github.com/vovakirdan/orbsnake/internal/games/orbsnake"
	"github.com/vovakirdan/orbsnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the orbsnake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own independent game. With --seed every
session gets the same orb sequence for the same moves.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.orbsnake/host_key

Examples:
  orbsnake serve                           # Listen on :23234 with auto-generated key
  orbsnake serve --ssh :2222               # Listen on port 2222
  orbsnake serve --host-key ./my_host_key  # Use specific host key
  orbsnake serve --seed 7                  # Same seed for every session

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
	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		TickInterval: config.Load().TickInterval(),
		Seed:         flagSeed,
	}

	// The server has no alt screen of its own, so it logs to stderr unless
	// a file was requested.
	var logger *log.Logger
	if flagLogFile != "" {
		fileLogger, closeLog, err := openLogger(flagLogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = fileLogger
	}

	newGame := func() tui.Game { return orbsnake.New() }
	server, err := tui.NewSSHServer(cfg, newGame, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting orbsnake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
