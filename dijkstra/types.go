// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key keeps stale heap entries)
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrWeightOverflow indicates a vertex whose only paths cost more than
	// int64 can represent below Unreachable.
	ErrWeightOverflow = errors.New("dijkstra: path weight overflows int64")
)

// Unreachable is the distance reported for vertices with no path from Source.
const Unreachable int64 = math.MaxInt64

// Options configures a Dijkstra run.
type Options struct {
	// Source is the ID of the starting vertex.
	Source string

	// MaxDistance stops exploring once the frontier exceeds this cost.
	// Vertices beyond it are reported as Unreachable.
	MaxDistance int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options for src with no distance cap.
func DefaultOptions(src string) Options {
	return Options{Source: src, MaxDistance: math.MaxInt64}
}

// Source sets the starting vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithMaxDistance caps exploration; d must be ≥ 0 (panics otherwise,
// since a negative cap is a programmer error).
func WithMaxDistance(d int64) Option {
	if d < 0 {
		panic("dijkstra: WithMaxDistance: d must be non-negative")
	}
	return func(o *Options) { o.MaxDistance = d }
}
