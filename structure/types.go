// Package structure defines options and sentinel errors for structural
// (anchor-distance) node embeddings.
package structure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("structure: graph is nil")

	// ErrNoAnchors is returned when the anchor list is empty.
	ErrNoAnchors = errors.New("structure: no anchors")

	// ErrUnknownVertex is returned when an anchor or an ordered vertex is not in the graph.
	ErrUnknownVertex = errors.New("structure: unknown vertex")

	// ErrBadAnchorCount is returned by SelectAnchors for k outside [1, |V|].
	ErrBadAnchorCount = errors.New("structure: anchor count out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("structure: invalid option supplied")
)

// Option configures AnchorDistances.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Order fixes the row order; nil means g.Vertices() (lexicographic).
	Order []string

	// Unreachable is written for vertices with no path to an anchor.
	// NaN means "use the vertex count", which exceeds any hop distance.
	Unreachable float64

	// Workers bounds how many anchors are expanded concurrently.
	Workers int

	err error
}

// DefaultOptions returns lexicographic order, vertex-count fill and
// GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Unreachable: math.NaN(),
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVertexOrder fixes which vertex each output row describes. Use it to
// line rows up with feature matrices indexed by integer node ID.
func WithVertexOrder(ids []string) Option {
	return func(o *Options) { o.Order = append([]string(nil), ids...) }
}

// WithUnreachable sets the fill value for missing paths; it must be finite.
func WithUnreachable(v float64) Option {
	return func(o *Options) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: unreachable fill %v", ErrOptionViolation, v)
			return
		}
		o.Unreachable = v
	}
}

// WithWorkers bounds anchor-level parallelism; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
