package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballbreaker/internal/core"
	"github.com/vovakirdan/ballbreaker/internal/games/breaker"
	"github.com/vovakirdan/ballbreaker/internal/logging"
	"github.com/vovakirdan/ballbreaker/internal/platform/tui"
	"github.com/vovakirdan/ballbreaker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start playing in the current terminal.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Down/S       - Stop moving
  Space/P      - Start, pause and resume
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, gentle speed-up per level
  normal - Ball speeds up from 30% difficulty as levels advance
  hard   - Narrow paddle, fast ball, starts at 70% difficulty
  fixed  - No speed-up, plays the config as written

Examples:
  ballbreaker play
  ballbreaker play --difficulty easy
  ballbreaker play --config ./my-breaker.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := breaker.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'ballbreaker list' to see available games)", gameID)
	}

	// An explicit --config must load; the game itself would fall back silently.
	if _, err := breaker.LoadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// fileLogger opens the --log-file logger. The terminal belongs to the
// game, so nothing is logged to stdout or stderr.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return logging.Discard(), func() {}, nil
	}

	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	level, _ := logging.ParseLevel(flagLogLevel)
	return logging.New(f, level, "ballbreaker"), func() { _ = f.Close() }, nil
}
