// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config is the optional YAML file given with --config. Flags set on the
// command line win over the file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Format is the default output format, text or yaml.
	Format string `yaml:"format"`
	// Workers bounds validation and hull goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Tolerance is the geometric tolerance; 0 means the library default.
	Tolerance float64 `yaml:"tolerance"`
	// MaxFlags caps the flag count for which orientability is computed.
	MaxFlags int `yaml:"max_flags"`
}

// defaultMaxFlags keeps the orientability check interactive.
const defaultMaxFlags = 100000

var errInvalidConfig = errors.New("invalid config")

func defaultConfig() Config {
	return Config{LogLevel: "info", Format: formatText, MaxFlags: defaultMaxFlags}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Format != formatText && c.Format != formatYAML {
		return fmt.Errorf("format %q, want %s or %s: %w", c.Format, formatText, formatYAML, errInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d < 0: %w", c.Workers, errInvalidConfig)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("tolerance %v: %w", c.Tolerance, errInvalidConfig)
	}
	if c.MaxFlags < 0 {
		return fmt.Errorf("max_flags %d < 0: %w", c.MaxFlags, errInvalidConfig)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, errInvalidConfig)
	}

	return l, nil
}

// validateOptions turns Workers into core options.
func (c Config) validateOptions() []core.ValidateOption {
	if c.Workers == 0 {
		return nil
	}

	return []core.ValidateOption{core.WithWorkers(c.Workers)}
}

// concreteOptions turns Workers and Tolerance into concrete options.
func (c Config) concreteOptions() []concrete.Option {
	var opts []concrete.Option
	if c.Workers > 0 {
		opts = append(opts, concrete.WithWorkers(c.Workers))
	}
	if c.Tolerance > 0 {
		opts = append(opts, concrete.WithTolerance(c.Tolerance))
	}

	return opts
}
