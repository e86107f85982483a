// SPDX-License-Identifier: MIT

// Package matrix - row-wise helpers for embedding sets.
//
// Purpose:
//   - NormalizeRowsL2 scales each row to unit length:
//     x_i / max(||x_i||₂, eps), so zero rows stay zero.
//   - Transpose materialises Aᵀ for callers that need column-major access.
//
// Determinism:
//   - Fixed i→j loop order; no map iteration.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opTranspose       = "Transpose"
)

// matrixErrorf tags an error with the public operation that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NormalizeRowsL2 returns a copy of m whose rows have unit L2 norm, plus the
// unclamped row norms.
//
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: for each row compute ||x||₂ with gonum floats.Norm.
//   - Stage 3: divide by max(norm, eps); eps from WithNormEpsilon (default 1e-12).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL2(m *Dense, opts ...Option) (*Dense, []float64, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	out := m.clone()
	norms := make([]float64, m.r)
	var i, j int
	var row []float64
	var denom float64
	for i = 0; i < m.r; i++ {
		row = out.data[i*m.c : (i+1)*m.c]
		norms[i] = floats.Norm(row, 2)
		denom = norms[i]
		if denom < o.normEps {
			denom = o.normEps
		}
		for j = range row {
			row[j] /= denom
		}
	}

	return out, norms, nil
}

// Transpose returns a new c×r matrix with the same numeric policy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{
		r:              m.c,
		c:              m.r,
		data:           make([]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
		allowInf:       m.allowInf,
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}
