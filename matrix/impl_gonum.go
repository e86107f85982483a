// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum/mat.
//
// Dense and mat.Dense share the same row-major layout, so Gonum() is a
// zero-copy view. FromGonum copies and re-applies the numeric policy.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// Gonum returns a *mat.Dense backed by m's buffer. Mutations through the
// returned value are visible in m and bypass the numeric policy.
func (m *Dense) Gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrInvalidDimensions for empty shapes.
//   - ErrNaNInf when an element violates the numeric policy.
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if !admits(v, out.validateNaNInf, out.allowInf) {
				return nil, matrixErrorf(opFromGonum, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
