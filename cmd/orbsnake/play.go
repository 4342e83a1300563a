package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/orbsnake/internal/config"
	"github.com/vovakirdan/orbsnake/internal/core"
	"github.com/vovakirdan/orbsnake/internal/games/orbsnake"
	"github.com/vovakirdan/orbsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play orbsnake",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause/resume
  Enter        - Start, resume or try again
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.orbsnake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  orbsnake play
  orbsnake play --seed 42
  orbsnake play --log-file orbsnake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	settings := config.Load()
	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "tick", settings.TickInterval())

	if err := tui.Run(orbsnake.New(), cfg, settings.TickInterval(), logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// openLogger returns a logger writing to path. The terminal belongs to the
// game, so without a path every entry is discarded.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := tea.LogToFile(path, "orbsnake")
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbsnake",
	})
	return logger, func() { _ = f.Close() }, nil
}
