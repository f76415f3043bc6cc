// SPDX-License-Identifier: MIT

// Package config holds the congeneric CLI settings: a YAML file with defaults,
// validation and an explicit Save for bootstrapping a new file.
//
//	log_level: info          # debug|info|warn|error
//	format: text             # text|json|yaml
//	aggregation: per-item    # per-item|legacy
//	epsilon: 1e-9            # symmetry tolerance
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/congeneric/covariance"
	"github.com/katalvlaran/congeneric/reliability"
	"github.com/katalvlaran/congeneric/report"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the configuration file looked up in the user's config directory.
	FileName = "config.yaml"
	// DirName is the per-user configuration directory name.
	DirName = "congeneric"

	dirMode  = 0o700
	fileMode = 0o600
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk CLI configuration.
type Config struct {
	LogLevel    string  `yaml:"log_level"`
	Format      string  `yaml:"format"`
	Aggregation string  `yaml:"aggregation"`
	Epsilon     float64 `yaml:"epsilon"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Format:      string(report.FormatText),
		Aggregation: reliability.DefaultAggregation.String(),
		Epsilon:     covariance.DefaultEpsilon,
	}
}

// DefaultPath returns <user config dir>/congeneric/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating user config dir: %w", err)
	}

	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads path over the defaults. A missing file yields Default();
// fields absent from the file keep their default values.
//
// Errors: ErrInvalid (via Validate), read and YAML errors wrapped with the path.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Save writes c to path, creating the parent directory when needed.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config: path required")
	}
	if c == nil {
		return errors.New("config: config required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshalling: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("config: creating dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	if _, err := reliability.ParseAggregation(c.Aggregation); err != nil {
		return fmt.Errorf("aggregation %q: %w", c.Aggregation, ErrInvalid)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon %v: %w", c.Epsilon, ErrInvalid)
	}

	return nil
}

// ReportFormat returns the parsed output format. Call Validate first.
func (c *Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// ReliabilityOptions converts the file settings into estimator options.
func (c *Config) ReliabilityOptions() []reliability.Option {
	a, err := reliability.ParseAggregation(c.Aggregation)
	if err != nil {
		a = reliability.DefaultAggregation
	}

	return []reliability.Option{reliability.WithAggregation(a)}
}

// CovarianceOptions converts the file settings into matrix options.
func (c *Config) CovarianceOptions() []covariance.Option {
	return []covariance.Option{covariance.WithEpsilon(c.Epsilon)}
}
