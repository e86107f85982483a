// SPDX-License-Identifier: MIT

// Package metrics computes retrieval-style alignment metrics between two
// graphs from a pair of distance matrices.
//
// For each ground-truth pair the evaluator ranks all candidates of the query
// row by ascending distance and records the position of the true
// counterpart. From these positions it derives, per direction:
//
//   - HITS@k = |{pairs : position < k}| / |pairs|
//   - MRR    = mean(1 / (position + 1))
//
// The reported value of each metric is the maximum over the forward
// (graph 1 → graph 2) and backward (graph 2 → graph 1) directions.
//
// Complexity:
//
//   - Time:  O(Q · C log C) where Q is the number of distinct query rows and
//     C the candidate count; each query row is sorted once.
//   - Space: O(Q · C) for cached rank arrays.
package metrics

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/alignmetrics/matrix"
)

// ComputeMetrics returns HITS@k for every k in hitTopKs and the MRR, taking
// the better of the two directions for each value.
//
// distances1 is the graph-1 → graph-2 matrix (row = graph-1 node),
// distances2 the graph-2 → graph-1 matrix (row = graph-2 node).
func ComputeMetrics(distances1, distances2 matrix.Matrix, testPairs []Pair, hitTopKs []int, opts ...Option) (map[int]float64, float64, error) {
	rep, err := Evaluate(distances1, distances2, testPairs, hitTopKs, opts...)
	if err != nil {
		return nil, 0, err
	}

	return rep.Hits, rep.MRR, nil
}

// Evaluate runs both directions and returns the full Report.
//
// Preconditions and validation (in order):
//  1. hitTopKs non-empty, positive, strictly ascending (ErrInvalidArgument).
//  2. testPairs non-empty (ErrInvalidArgument).
//  3. both matrices non-nil (ErrInvalidArgument).
//  4. max(hitTopKs) ≤ Cols() of both matrices (ErrInvalidArgument).
//  5. every pair index addresses an existing row/column (ErrIndexOutOfRange);
//     under WithPairAlignedRows both matrices must have len(testPairs) rows
//     (ErrInvalidArgument).
//
// Query rows containing NaN are rejected with ErrInvalidArgument.
func Evaluate(distances1, distances2 matrix.Matrix, testPairs []Pair, hitTopKs []int, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := validateKs(hitTopKs); err != nil {
		return nil, err
	}
	if len(testPairs) == 0 {
		return nil, fmt.Errorf("%w: no test pairs", ErrInvalidArgument)
	}
	if err := matrix.ValidateNotNil(distances1); err != nil {
		return nil, fmt.Errorf("%w: forward distances: %v", ErrInvalidArgument, err)
	}
	if err := matrix.ValidateNotNil(distances2); err != nil {
		return nil, fmt.Errorf("%w: backward distances: %v", ErrInvalidArgument, err)
	}
	kMax := hitTopKs[len(hitTopKs)-1]
	if kMax > distances1.Cols() || kMax > distances2.Cols() {
		return nil, fmt.Errorf("%w: max k=%d exceeds candidates (%d forward, %d backward)",
			ErrInvalidArgument, kMax, distances1.Cols(), distances2.Cols())
	}

	fwdQ, fwdT, bwdQ, bwdT, err := planQueries(distances1, distances2, testPairs, o.PairAligned)
	if err != nil {
		return nil, err
	}

	ks := append([]int(nil), hitTopKs...)
	var fwd, bwd DirectionScore
	if o.Parallel {
		var g errgroup.Group
		g.Go(func() (err error) {
			fwd, err = scoreDirection(Forward, distances1, fwdQ, fwdT, ks)
			return err
		})
		g.Go(func() (err error) {
			bwd, err = scoreDirection(Backward, distances2, bwdQ, bwdT, ks)
			return err
		})
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		if fwd, err = scoreDirection(Forward, distances1, fwdQ, fwdT, ks); err != nil {
			return nil, err
		}
		if bwd, err = scoreDirection(Backward, distances2, bwdQ, bwdT, ks); err != nil {
			return nil, err
		}
	}

	rep := &Report{
		Ks:       ks,
		Pairs:    len(testPairs),
		Hits:     make(map[int]float64, len(ks)),
		MRR:      math.Max(fwd.MRR, bwd.MRR),
		Forward:  fwd,
		Backward: bwd,
	}
	for _, k := range ks {
		rep.Hits[k] = math.Max(fwd.Hits[k], bwd.Hits[k])
	}

	return rep, nil
}

// validateKs enforces a non-empty, positive, strictly ascending cutoff list.
func validateKs(ks []int) error {
	if len(ks) == 0 {
		return fmt.Errorf("%w: hit_top_ks is empty", ErrInvalidArgument)
	}
	for i, k := range ks {
		if k <= 0 {
			return fmt.Errorf("%w: hit_top_ks[%d]=%d is not positive", ErrInvalidArgument, i, k)
		}
		if i > 0 && k <= ks[i-1] {
			return fmt.Errorf("%w: hit_top_ks not strictly ascending at %d (%d after %d)", ErrInvalidArgument, i, k, ks[i-1])
		}
	}

	return nil
}

// planQueries resolves, for each pair and direction, which matrix row is the
// query and which column is the true counterpart.
func planQueries(d1, d2 matrix.Matrix, pairs []Pair, pairAligned bool) (fwdQ, fwdT, bwdQ, bwdT []int, err error) {
	n := len(pairs)
	fwdQ, fwdT = make([]int, n), make([]int, n)
	bwdQ, bwdT = make([]int, n), make([]int, n)

	if pairAligned && (d1.Rows() != n || d2.Rows() != n) {
		return nil, nil, nil, nil, fmt.Errorf("%w: pair-aligned rows need %d rows, got %d forward and %d backward",
			ErrInvalidArgument, n, d1.Rows(), d2.Rows())
	}

	for i, p := range pairs {
		if p.Src < 0 || p.Tgt < 0 {
			return nil, nil, nil, nil, fmt.Errorf("%w: pair %d %s has a negative index", ErrIndexOutOfRange, i, p)
		}
		if p.Tgt >= d1.Cols() || p.Src >= d2.Cols() {
			return nil, nil, nil, nil, fmt.Errorf("%w: pair %d %s outside candidate columns (%d forward, %d backward)",
				ErrIndexOutOfRange, i, p, d1.Cols(), d2.Cols())
		}
		if pairAligned {
			fwdQ[i], bwdQ[i] = i, i
		} else {
			if p.Src >= d1.Rows() || p.Tgt >= d2.Rows() {
				return nil, nil, nil, nil, fmt.Errorf("%w: pair %d %s outside query rows (%d forward, %d backward)",
					ErrIndexOutOfRange, i, p, d1.Rows(), d2.Rows())
			}
			fwdQ[i], bwdQ[i] = p.Src, p.Tgt
		}
		fwdT[i], bwdT[i] = p.Tgt, p.Src
	}

	return fwdQ, fwdT, bwdQ, bwdT, nil
}

// scoreDirection ranks each query row once and derives HITS@k and MRR from
// the position of the true counterpart.
func scoreDirection(dir Direction, m matrix.Matrix, queries, truths, ks []int) (DirectionScore, error) {
	n := len(queries)
	cache := make(map[int][]int, n)
	positions := make([]int, n)
	reciprocal := make([]float64, n)

	for i, q := range queries {
		ranks, ok := cache[q]
		if !ok {
			row, err := rowOf(m, q)
			if err != nil {
				return DirectionScore{}, fmt.Errorf("%s row %d: %w", dir, q, err)
			}
			ranks = Argsort(row)
			cache[q] = ranks
		}
		pos := positionOf(ranks, truths[i])
		if pos < 0 {
			return DirectionScore{}, fmt.Errorf("%w: %s counterpart %d missing from row %d", ErrIndexOutOfRange, dir, truths[i], q)
		}
		positions[i] = pos
		reciprocal[i] = 1 / float64(pos+1)
	}

	hits := make(map[int]float64, len(ks))
	for _, k := range ks {
		count := 0
		for _, pos := range positions {
			if pos < k {
				count++
			}
		}
		hits[k] = float64(count) / float64(n)
	}

	return DirectionScore{
		Hits:      hits,
		MRR:       stat.Mean(reciprocal, nil),
		Positions: positions,
	}, nil
}

// rowOf copies row r of m, rejecting NaN. *matrix.Dense takes the fast path.
func rowOf(m matrix.Matrix, r int) ([]float64, error) {
	var row []float64
	if d, ok := m.(*matrix.Dense); ok {
		view, err := d.RowView(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIndexOutOfRange, err)
		}
		row = view
	} else {
		row = make([]float64, m.Cols())
		for j := range row {
			v, err := m.At(r, j)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIndexOutOfRange, err)
			}
			row[j] = v
		}
	}
	for j, v := range row {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: NaN distance at column %d", ErrInvalidArgument, j)
		}
	}

	return row, nil
}
