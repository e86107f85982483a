// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_JSONHits(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "json", slog.LevelInfo)
	require.NoError(t, err)

	l.WithDataset("toy").LogHits(context.Background(), []int{1, 5}, map[int]float64{1: 0.5, 5: 1}, 0.75)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "hits", first["msg"])
	assert.Equal(t, "toy", first["dataset"])
	assert.EqualValues(t, 1, first["k"])
	assert.EqualValues(t, 0.5, first["value"])
	assert.Contains(t, lines[2], `"msg":"mrr"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "text", slog.LevelWarn)
	require.NoError(t, err)

	l.LogMatrix(context.Background(), "emb1", 3, 4)
	assert.Empty(t, buf.String())

	l.LogRunDir(context.Background(), "/tmp/x", errors.New("boom"))
	assert.Contains(t, buf.String(), "run report failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "xml", slog.LevelInfo)
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestNoopLogger(t *testing.T) {
	l := logging.NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
