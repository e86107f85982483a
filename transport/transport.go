// Package transport builds the node-to-node cost matrix used to seed an
// optimal-transport alignment between two graphs.
//
// Each node carries two embeddings: a structural one r (e.g. anchor
// distances, see package structure) and a feature one x. After L2-normalising
// every row, the cost of matching node i of graph 1 to node j of graph 2 is
//
//	cost(i,j) = α·exp(−⟨r1_i, r2_j⟩) + (1−α)·exp(−⟨x1_i, x2_j⟩)
//
// Inner products of unit vectors lie in [−1,1], so every cost lies in
// [e⁻¹, e]. Both Gram blocks are computed with gonum's BLAS-backed Mul.
package transport

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/alignmetrics/matrix"
)

// DefaultAlpha weights the structural term.
const DefaultAlpha = 0.1

// Sentinel errors.
var (
	// ErrNilInput is returned if any embedding set is nil.
	ErrNilInput = errors.New("transport: embedding set is nil")

	// ErrShapeMismatch is returned when row counts or feature widths disagree.
	ErrShapeMismatch = errors.New("transport: shape mismatch")

	// ErrBadAlpha is returned when alpha is outside [0,1] or not finite.
	ErrBadAlpha = errors.New("transport: alpha must be in [0,1]")
)

// Embeddings groups the two per-node embedding sets of one graph.
// Structural and Features must have the same number of rows.
type Embeddings struct {
	Structural *matrix.Dense
	Features   *matrix.Dense
}

// Cost returns the n1×n2 cost matrix between graph 1 (g1) and graph 2 (g2).
//
// Preconditions and validation (in order):
//  1. alpha finite and in [0,1] (ErrBadAlpha).
//  2. all four matrices non-nil (ErrNilInput).
//  3. Structural/Features row counts agree within each graph; structural
//     widths agree across graphs; feature widths agree across graphs
//     (ErrShapeMismatch).
func Cost(g1, g2 Embeddings, alpha float64) (*matrix.Dense, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadAlpha, alpha)
	}
	if err := validate(g1, g2); err != nil {
		return nil, err
	}

	structural, err := gram(g1.Structural, g2.Structural)
	if err != nil {
		return nil, err
	}
	features, err := gram(g1.Features, g2.Features)
	if err != nil {
		return nil, err
	}

	n1, n2 := structural.Dims()
	cost, err := matrix.NewDense(n1, n2)
	if err != nil {
		return nil, err
	}
	err = cost.Apply(func(i, j int, _ float64) float64 {
		return alpha*math.Exp(-structural.At(i, j)) + (1-alpha)*math.Exp(-features.At(i, j))
	})
	if err != nil {
		return nil, err
	}

	return cost, nil
}

func validate(g1, g2 Embeddings) error {
	if g1.Structural == nil || g1.Features == nil || g2.Structural == nil || g2.Features == nil {
		return ErrNilInput
	}
	if g1.Structural.Rows() != g1.Features.Rows() {
		return fmt.Errorf("%w: graph 1 has %d structural rows and %d feature rows",
			ErrShapeMismatch, g1.Structural.Rows(), g1.Features.Rows())
	}
	if g2.Structural.Rows() != g2.Features.Rows() {
		return fmt.Errorf("%w: graph 2 has %d structural rows and %d feature rows",
			ErrShapeMismatch, g2.Structural.Rows(), g2.Features.Rows())
	}
	if err := matrix.ValidateSameCols(g1.Structural, g2.Structural); err != nil {
		return fmt.Errorf("%w: structural embeddings: %v", ErrShapeMismatch, err)
	}
	if err := matrix.ValidateSameCols(g1.Features, g2.Features); err != nil {
		return fmt.Errorf("%w: feature embeddings: %v", ErrShapeMismatch, err)
	}

	return nil
}

// gram returns normalize(a) · normalize(b)ᵀ.
func gram(a, b *matrix.Dense) (*mat.Dense, error) {
	an, _, err := matrix.NormalizeRowsL2(a)
	if err != nil {
		return nil, err
	}
	bn, _, err := matrix.NormalizeRowsL2(b)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(an.Gonum(), bn.Gonum().T())

	return &out, nil
}
