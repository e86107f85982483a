package distance

import (
	"fmt"

	"github.com/viterin/vek"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/alignmetrics/matrix"
)

// pairFunc is the per-pair kernel selected from a Metric.
type pairFunc func(a, b []float64) float64

// Pairwise returns the |A|×|B| matrix D with D[i][j] = metric(A_i, B_j).
//
// Preconditions and validation (in order):
//  1. a and b non-nil (ErrNilInput).
//  2. metric is MetricL1 or MetricCosine (ErrUnknownMetric).
//  3. a.Cols() == b.Cols() (ErrDimensionMismatch).
//  4. options valid (ErrOptionViolation).
func Pairwise(a, b *matrix.Dense, metric Metric, opts ...Option) (*matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilInput
	}
	kernel, err := kernelFor(metric)
	if err != nil {
		return nil, err
	}
	if a.Cols() != b.Cols() {
		return nil, fmt.Errorf("%w: %d vs %d features", ErrDimensionMismatch, a.Cols(), b.Cols())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out, err := matrix.NewDense(a.Rows(), b.Rows())
	if err != nil {
		return nil, err
	}

	// Precompute B row views once; they are read-only from here on.
	bRows := make([][]float64, b.Rows())
	for j := range bRows {
		if bRows[j], err = b.RowView(j); err != nil {
			return nil, err
		}
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < a.Rows(); i++ {
		g.Go(func() error {
			src, err := a.RowView(i)
			if err != nil {
				return err
			}
			dst, err := out.RowView(i)
			if err != nil {
				return err
			}
			for j, tgt := range bRows {
				dst[j] = kernel(src, tgt)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// kernelFor selects the per-pair function.
func kernelFor(m Metric) (pairFunc, error) {
	switch m {
	case MetricL1:
		return l1, nil
	case MetricCosine:
		return cosine, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, m)
	}
}

// l1 is the cityblock distance.
func l1(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// cosine is 1 − cos(a,b), clipped to [0,2]; zero vectors yield 1.
func cosine(a, b []float64) float64 {
	na, nb := vek.Norm(a), vek.Norm(b)
	if na == 0 || nb == 0 {
		return 1
	}
	d := 1 - vek.Dot(a, b)/(na*nb)
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	}

	return d
}
