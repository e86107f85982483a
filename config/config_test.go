// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1, 5, 10, 30, 50, 100}, cfg.HitTopKs)
	assert.Equal(t, "l1", cfg.Metric)
	assert.InDelta(t, 0.1, cfg.Alpha, 0)
	assert.Empty(t, cfg.MetricOptions())
	assert.Nil(t, cfg.DistanceOptions())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	p := writeFile(t, `
dataset: douban
metric: cosine
hit_top_ks: [1, 10]
pair_aligned_rows: true
workers: 2
log:
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "douban", cfg.Dataset)
	assert.Equal(t, "cosine", cfg.Metric)
	assert.Equal(t, []int{1, 10}, cfg.HitTopKs)
	assert.True(t, cfg.PairAlignedRows)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "untouched keys keep defaults")
	assert.Equal(t, "logs", cfg.LogRoot)
	assert.Len(t, cfg.MetricOptions(), 1)
	assert.Len(t, cfg.DistanceOptions(), 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "dataset: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "metric: euclid"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "alpha: .nan"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *config.Config)
	}{
		{"empty dataset", func(c *config.Config) { c.Dataset = "" }},
		{"alpha high", func(c *config.Config) { c.Alpha = 1.5 }},
		{"alpha negative", func(c *config.Config) { c.Alpha = -0.1 }},
		{"alpha NaN", func(c *config.Config) { c.Alpha = math.NaN() }},
		{"no ks", func(c *config.Config) { c.HitTopKs = nil }},
		{"ks unsorted", func(c *config.Config) { c.HitTopKs = []int{5, 1} }},
		{"ks duplicate", func(c *config.Config) { c.HitTopKs = []int{1, 1} }},
		{"ks zero", func(c *config.Config) { c.HitTopKs = []int{0, 1} }},
		{"anchors", func(c *config.Config) { c.Anchors = 0 }},
		{"workers", func(c *config.Config) { c.Workers = -1 }},
		{"level", func(c *config.Config) { c.Log.Level = "chatty" }},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mut(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
