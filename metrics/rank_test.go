// SPDX-License-Identifier: MIT
package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/alignmetrics/metrics"
)

func TestArgsort(t *testing.T) {
	tests := []struct {
		name string
		row  []float64
		want []int
	}{
		{"ascending", []float64{0, 1, 2}, []int{0, 1, 2}},
		{"descending", []float64{2, 1, 0}, []int{2, 1, 0}},
		{"ties keep index order", []float64{1, 1}, []int{0, 1}},
		{"mixed ties", []float64{3, 1, 2, 1, 3}, []int{1, 3, 2, 0, 4}},
		{"inf last", []float64{math.Inf(1), -1, 0}, []int{1, 2, 0}},
		{"single", []float64{7}, []int{0}},
		{"empty", []float64{}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.Argsort(tt.row))
		})
	}
}

func TestArgsort_DoesNotMutateInput(t *testing.T) {
	row := []float64{3, 2, 1}
	_ = metrics.Argsort(row)
	assert.Equal(t, []float64{3, 2, 1}, row)
}

func TestPairAndDirectionString(t *testing.T) {
	assert.Equal(t, "(3,4)", metrics.Pair{Src: 3, Tgt: 4}.String())
	assert.Equal(t, "forward", metrics.Forward.String())
	assert.Equal(t, "backward", metrics.Backward.String())
}
