// ballbreaker is a terminal ball-and-paddle block breaker.
//
// Usage:
//
//	ballbreaker play          - Play in this terminal
//	ballbreaker serve         - Host the game over SSH
//	ballbreaker list          - List available games
//	ballbreaker config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - YAML or TOML game config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for terminal play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballbreaker/internal/config"
	"github.com/vovakirdan/ballbreaker/internal/games/breaker"
	"github.com/vovakirdan/ballbreaker/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballbreaker",
	Short: "Ball Breaker - break blocks with a bouncing ball in your terminal",
	Long: `Ball Breaker is a single-player block breaker: steer the paddle,
keep the ball in play and clear ten levels of blocks.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  ballbreaker play
  ballbreaker play --difficulty hard
  ballbreaker serve --ssh :2222
  ballbreaker config --format toml > ballbreaker.toml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultLogPath(), "Log file for terminal play (empty = no log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates shared flags and hands config selection to
// the game package.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(flagLogLevel); err != nil {
		return err
	}

	breaker.SetConfigPath(flagConfig)
	breaker.SetDifficultyPreset(flagDifficulty)
	return nil
}
