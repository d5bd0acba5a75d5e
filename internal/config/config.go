// Package config loads the linecov configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/linecov/internal/coverage"
)

// DefaultFile is the configuration file looked up when --config is not given.
const DefaultFile = ".linecov.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the on-disk configuration of the CLI.
type Config struct {
	// Coverage switches the instrument on and controls the printed report.
	Coverage coverage.Config `yaml:"coverage"`

	// Exclude lists regular expressions matched against report paths.
	Exclude []string `yaml:"exclude,omitempty"`

	// IncludeInternal measures vendored and out-of-module files too.
	IncludeInternal bool `yaml:"include_internal,omitempty"`

	// IncludeGenerated measures files carrying a "Code generated" header too.
	IncludeGenerated bool `yaml:"include_generated,omitempty"`

	// Parallel is the number of replay workers.
	Parallel int `yaml:"parallel,omitempty"`

	// Format is either "text" or "json".
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file exists. Unlike the bare
// instrument defaults, the CLI measures coverage unless told otherwise.
func Default() Config {
	return Config{
		Coverage: coverage.Config{Enabled: true, PrintCoverage: true},
		Parallel: 4,
		Format:   FormatText,
	}
}

// Load reads path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values the decoder cannot.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	return nil
}
