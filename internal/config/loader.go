package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .yaml, .yml and .toml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// SourceEmbedded names the built-in configuration in Resolve results.
const SourceEmbedded = "embedded"

// FormatFromPath picks the decoder for a file by its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: %w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode parses data on top of the built-in defaults, so keys missing from
// the file keep their default values.
func Decode(data []byte, format Format) (BreakerConfig, error) {
	cfg := DefaultBreakerConfig()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: %w: %q", ErrUnsupportedFormat, format)
	}
	return cfg, err
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg BreakerConfig, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		return fmt.Errorf("config: %w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (BreakerConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return BreakerConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakerConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return BreakerConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakerConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths lists the files Resolve tries when no custom path is given.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath("ballbreaker.yaml"); p != "" {
		paths = append(paths, p, userConfigPath("ballbreaker.toml"))
	}
	return append(paths,
		filepath.Join("configs", "ballbreaker.yaml"),
		filepath.Join("configs", "ballbreaker.toml"),
	)
}

// Resolve loads the ball breaker configuration and reports where it came
// from. Search order: customPath -> ~/.ballbreaker/configs/ballbreaker.{yaml,toml}
// -> ./configs/ballbreaker.{yaml,toml} -> embedded default.
// Only a broken customPath is an error; broken search-path files are skipped.
func Resolve(customPath string) (BreakerConfig, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return BreakerConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Decode(bytes.Clone(defaultBreakerYAML), FormatYAML)
	if err != nil {
		return DefaultBreakerConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// LoadBreaker loads the ball breaker configuration.
func LoadBreaker(customPath string) (BreakerConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballbreaker", "configs", filename)
}
