// SPDX-License-Identifier: MIT

// Package config holds the YAML-backed settings of the alignmetrics CLI.
//
// Load starts from Default and overlays the file, so a config file only
// needs the keys it changes. Command-line flags are applied by the caller
// after Load and before Validate.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/alignmetrics/distance"
	"github.com/katalvlaran/alignmetrics/logging"
	"github.com/katalvlaran/alignmetrics/metrics"
	"github.com/katalvlaran/alignmetrics/transport"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete CLI configuration.
type Config struct {
	// Dataset names the run directory <log_root>/<dataset>_results.
	Dataset string `yaml:"dataset"`

	// LogRoot is the directory run reports are written under. Empty disables reports.
	LogRoot string `yaml:"log_root"`

	// Metric selects the pairwise distance: "l1" or "cosine".
	Metric string `yaml:"metric"`

	// Alpha weights the structural term of the transport cost.
	Alpha float64 `yaml:"alpha"`

	// HitTopKs are the HITS@k cutoffs, strictly ascending.
	HitTopKs []int `yaml:"hit_top_ks"`

	// PairAlignedRows makes row i of each distance matrix the query for pair i.
	PairAlignedRows bool `yaml:"pair_aligned_rows"`

	// Anchors is how many highest-degree vertices the anchors command uses.
	Anchors int `yaml:"anchors"`

	// Workers bounds row-level parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dataset:  "default",
		LogRoot:  "logs",
		Metric:   distance.MetricL1.String(),
		Alpha:    transport.DefaultAlpha,
		HitTopKs: metrics.DefaultHitTopKs(),
		Anchors:  16,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against what the evaluator accepts.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("%w: dataset is required", ErrInvalid)
	}
	if _, err := distance.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("%w: metric: %v", ErrInvalid, err)
	}
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside [0,1]", ErrInvalid, c.Alpha)
	}
	if len(c.HitTopKs) == 0 {
		return fmt.Errorf("%w: hit_top_ks is empty", ErrInvalid)
	}
	for i, k := range c.HitTopKs {
		if k <= 0 || (i > 0 && k <= c.HitTopKs[i-1]) {
			return fmt.Errorf("%w: hit_top_ks must be positive and strictly ascending, got %v", ErrInvalid, c.HitTopKs)
		}
	}
	if c.Anchors < 1 {
		return fmt.Errorf("%w: anchors must be at least 1", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// MetricOptions turns the evaluator-related fields into metrics options.
func (c *Config) MetricOptions() []metrics.Option {
	var opts []metrics.Option
	if c.PairAlignedRows {
		opts = append(opts, metrics.WithPairAlignedRows())
	}

	return opts
}

// DistanceOptions turns Workers into distance options.
func (c *Config) DistanceOptions() []distance.Option {
	if c.Workers == 0 {
		return nil
	}

	return []distance.Option{distance.WithWorkers(c.Workers)}
}
