// SPDX-License-Identifier: MIT

// Package metrics defines the types, options and sentinel errors used by the
// alignment evaluator (HITS@k and Mean Reciprocal Rank).
//
// Errors:
//
//	ErrInvalidArgument - malformed ks, empty pairs, nil/NaN matrices, k above column count.
//	ErrIndexOutOfRange - a pair references a row or column the matrices do not have.
package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrInvalidArgument indicates malformed input that no index fix can repair.
	ErrInvalidArgument = errors.New("metrics: invalid argument")

	// ErrIndexOutOfRange indicates a pair index outside the matrix bounds.
	ErrIndexOutOfRange = errors.New("metrics: index out of range")
)

// Pair is one ground-truth correspondence: node Src of graph 1 is node Tgt
// of graph 2.
type Pair struct {
	Src int
	Tgt int
}

// String renders the pair as "(src,tgt)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.Src, p.Tgt) }

// DefaultHitTopKs returns a fresh copy of the default cutoffs {1,5,10,30,50,100}.
func DefaultHitTopKs() []int {
	return []int{1, 5, 10, 30, 50, 100}
}

// Direction names one side of the evaluation.
type Direction int

const (
	// Forward ranks graph-2 candidates for each graph-1 query.
	Forward Direction = iota
	// Backward ranks graph-1 candidates for each graph-2 query.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DirectionScore holds the metrics of a single direction.
type DirectionScore struct {
	// Hits maps each k to the fraction of pairs whose counterpart is in the top k.
	Hits map[int]float64

	// MRR is the mean of 1/(position+1) over all pairs.
	MRR float64

	// Positions holds the 0-based rank of the true counterpart, per pair, in
	// input order.
	Positions []int
}

// Report is the full evaluation outcome.
//
// Hits and MRR are the element-wise maximum of the two directions: the
// evaluator reports the more favourable direction per metric, so a strong
// backward score can hide a weak forward one. Inspect Forward and Backward
// when asymmetry matters.
type Report struct {
	Ks       []int
	Pairs    int
	Hits     map[int]float64
	MRR      float64
	Forward  DirectionScore
	Backward DirectionScore
}

// HitsSeries returns Hits ordered by Ks.
func (r *Report) HitsSeries() []float64 {
	out := make([]float64, len(r.Ks))
	for i, k := range r.Ks {
		out[i] = r.Hits[k]
	}
	return out
}

// Option configures Evaluate.
type Option func(*Options)

// Options holds the evaluator configuration.
type Options struct {
	// PairAligned switches query selection from "row = node index" to
	// "row i = query for pair i" (see WithPairAlignedRows).
	PairAligned bool

	// Parallel evaluates the two directions concurrently. Default true.
	Parallel bool
}

// DefaultOptions returns node-indexed rows with parallel directions.
func DefaultOptions() Options {
	return Options{PairAligned: false, Parallel: true}
}

// WithPairAlignedRows treats row i of each matrix as the query for pairs[i],
// which is how matrices built from the test-pair subsets are laid out.
// Both matrices must then have exactly len(pairs) rows.
func WithPairAlignedRows() Option {
	return func(o *Options) { o.PairAligned = true }
}

// WithSequential evaluates the two directions on the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.Parallel = false }
}
