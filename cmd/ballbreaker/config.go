package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballbreaker/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would use, after applying --config
and --difficulty, in YAML or TOML. Redirect the output to start a custom
config file.

Search order without --config:
  ~/.ballbreaker/configs/ballbreaker.yaml (or .toml)
  ./configs/ballbreaker.yaml (or .toml)
  built-in defaults

Examples:
  ballbreaker config
  ballbreaker config --defaults > ballbreaker.yaml
  ballbreaker config --format toml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files and presets")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("--format must be yaml or toml, got %q", flagFormat)
	}

	if flagDefaults {
		if format == config.FormatYAML {
			_, err := out.Write(config.DefaultYAML())
			return err
		}
		return config.Encode(out, config.DefaultBreakerConfig(), format)
	}

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyBreakerPreset(&cfg, preset)

	fmt.Fprintf(out, "# source: %s\n", source)
	if preset != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", preset)
	}
	return config.Encode(out, cfg, format)
}
