// ballbreaker-gui plays Ball Breaker in a desktop window.
//
// Controls: arrow keys move, Space starts and pauses, R restarts after game
// over, Esc quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballbreaker/internal/config"
	"github.com/vovakirdan/ballbreaker/internal/games/breaker"
	"github.com/vovakirdan/ballbreaker/internal/logging"
	"github.com/vovakirdan/ballbreaker/internal/platform/window"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagScale      float64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballbreaker-gui",
	Short: "Play Ball Breaker in a desktop window",
	Long: `Play Ball Breaker in a desktop window.

Examples:
  ballbreaker-gui
  ballbreaker-gui --scale 1.5 --difficulty hard`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1.0, "Window scale factor")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level, "ballbreaker-gui")

	breaker.SetConfigPath(flagConfig)
	breaker.SetDifficultyPreset(flagDifficulty)
	cfg, err := breaker.LoadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "difficulty", flagDifficulty)

	return window.Run(breaker.NewSimulation(cfg, seed), flagScale, logger)
}
