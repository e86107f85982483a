// SPDX-License-Identifier: MIT

package metrics

import (
	"cmp"
	"slices"
)

// Argsort returns the column indices of row ordered by ascending value.
//
// Ties keep ascending index order (stable sort over the identity
// permutation), so among equally distant candidates the lower index ranks
// first. The result is deterministic for identical input.
//
// Complexity: O(n log n) time, O(n) space.
func Argsort(row []float64) []int {
	idx := make([]int, len(row))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(row[a], row[b])
	})

	return idx
}

// positionOf returns the 0-based position of target in ranks, or -1.
func positionOf(ranks []int, target int) int {
	return slices.Index(ranks, target)
}
