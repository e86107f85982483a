// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across the
// alignmetrics command line tool. Library packages never log; only the CLI
// owns a Logger.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownFormat is returned by New for a format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Logger wraps slog.Logger with evaluation-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger from handler.
// If handler is nil, uses a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// New builds a Logger writing to w in the given format ("text" or "json").
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "warning" {
		v = "warn"
	}
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return lvl, nil
}

// WithDataset tags every record with the dataset name.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{Logger: l.Logger.With("dataset", name)}
}

// WithRun tags every record with the run ID.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// LogMatrix records that a matrix was loaded or produced.
func (l *Logger) LogMatrix(ctx context.Context, name string, rows, cols int) {
	l.DebugContext(ctx, "matrix ready",
		"name", name,
		"rows", rows,
		"cols", cols,
	)
}

// LogHits logs one HITS@k line per cutoff followed by the MRR, in ks order.
func (l *Logger) LogHits(ctx context.Context, ks []int, hits map[int]float64, mrr float64) {
	for _, k := range ks {
		l.InfoContext(ctx, "hits",
			"k", k,
			"value", hits[k],
		)
	}
	l.InfoContext(ctx, "mrr", "value", mrr)
}

// LogRunDir logs where a run report was (or failed to be) written.
func (l *Logger) LogRunDir(ctx context.Context, dir string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run report failed",
			"dir", dir,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run report saved", "dir", dir)
}
