// Package distance defines metrics, options and error sentinels for
// pairwise distance matrices between two embedding sets.
package distance

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for distance computation.
var (
	// ErrNilInput is returned if either embedding set is nil.
	ErrNilInput = errors.New("distance: embedding set is nil")

	// ErrDimensionMismatch is returned when the two sets have different feature widths.
	ErrDimensionMismatch = errors.New("distance: dimension mismatch")

	// ErrUnknownMetric is returned for metric names or values outside {l1, cosine}.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Metric selects the per-pair distance function.
type Metric int

const (
	// MetricL1 is the cityblock distance Σ|a_k − b_k|.
	MetricL1 Metric = iota

	// MetricCosine is 1 − ⟨a,b⟩/(‖a‖‖b‖), clipped to [0,2].
	// A zero vector is treated as orthogonal to everything (distance 1).
	MetricCosine
)

// String returns the canonical lower-case name ("l1", "cosine").
func (m Metric) String() string {
	switch m {
	case MetricL1:
		return "l1"
	case MetricCosine:
		return "cosine"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseMetric maps a user-facing name to a Metric.
// Accepted (case-insensitive): "l1", "cityblock", "manhattan", "cosine".
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l1", "cityblock", "manhattan":
		return MetricL1, nil
	case "cosine":
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Option configures Pairwise via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Pairwise runs.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Workers bounds the number of goroutines filling rows.
	// Defaults to GOMAXPROCS.
	Workers int

	err error
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds row-level parallelism; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
