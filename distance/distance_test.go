package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alignmetrics/distance"
	"github.com/katalvlaran/alignmetrics/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in   string
		want distance.Metric
	}{
		{"l1", distance.MetricL1},
		{"cityblock", distance.MetricL1},
		{"Manhattan", distance.MetricL1},
		{" cosine ", distance.MetricCosine},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := distance.ParseMetric(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := distance.ParseMetric("euclidean")
	require.ErrorIs(t, err, distance.ErrUnknownMetric)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "l1", distance.MetricL1.String())
	assert.Equal(t, "cosine", distance.MetricCosine.String())
	assert.Equal(t, "unknown(7)", distance.Metric(7).String())
}

func TestPairwise_L1(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 0}, {1, 2}})
	b := mustRows(t, [][]float64{{1, 1}, {-1, 0}, {1, 2}})

	d, err := distance.Pairwise(a, b, distance.MetricL1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{2, 1, 3},
		{1, 4, 0},
	}, d.ToRows())
}

func TestPairwise_L1SelfHasZeroDiagonal(t *testing.T) {
	a := mustRows(t, [][]float64{{0.5, -3, 2}, {1, 1, 1}, {7, 0, -2}, {0, 0, 0}})
	d, err := distance.Pairwise(a, a, distance.MetricL1, distance.WithWorkers(2))
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		v, _ := d.At(i, i)
		assert.Equal(t, 0.0, v)
		for j := 0; j < a.Rows(); j++ {
			vij, _ := d.At(i, j)
			vji, _ := d.At(j, i)
			assert.Equal(t, vij, vji, "symmetry at (%d,%d)", i, j)
		}
	}
}

func TestPairwise_Cosine(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 0}, {1, 1}, {0, 0}})
	b := mustRows(t, [][]float64{{1, 0}, {0, 1}, {-1, 0}, {2, 2}})

	d, err := distance.Pairwise(a, b, distance.MetricCosine)
	require.NoError(t, err)
	rows := d.ToRows()
	assert.InDeltaSlice(t, []float64{0, 1, 2, 1 - 1/math.Sqrt2}, rows[0], 1e-12)
	assert.InDeltaSlice(t, []float64{1 - 1/math.Sqrt2, 1 - 1/math.Sqrt2, 1 + 1/math.Sqrt2, 0}, rows[1], 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1, 1, 1}, rows[2], 0, "zero vector is orthogonal to everything")
}

func TestPairwise_CosineSelfNearZero(t *testing.T) {
	a := mustRows(t, [][]float64{{0.3, -1.2, 4}, {1e-3, 2e-3, 0}, {5, 5, 5}})
	d, err := distance.Pairwise(a, a, distance.MetricCosine)
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		v, _ := d.At(i, i)
		assert.InDelta(t, 0, v, 1e-12)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestPairwise_Errors(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1, 2, 3}})

	_, err := distance.Pairwise(nil, a, distance.MetricL1)
	require.ErrorIs(t, err, distance.ErrNilInput)

	_, err = distance.Pairwise(a, b, distance.MetricL1)
	require.ErrorIs(t, err, distance.ErrDimensionMismatch)

	_, err = distance.Pairwise(a, a, distance.Metric(42))
	require.ErrorIs(t, err, distance.ErrUnknownMetric)

	_, err = distance.Pairwise(a, a, distance.MetricL1, distance.WithWorkers(0))
	require.ErrorIs(t, err, distance.ErrOptionViolation)
}

func TestPairwise_WorkerCountDoesNotChangeResult(t *testing.T) {
	rows := make([][]float64, 17)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i * i % 7), -float64(i) / 3}
	}
	a := mustRows(t, rows)

	serial, err := distance.Pairwise(a, a, distance.MetricCosine, distance.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := distance.Pairwise(a, a, distance.MetricCosine, distance.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, serial.ToRows(), parallel.ToRows())
}
