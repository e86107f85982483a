// Package distance builds the distance matrices consumed by the metrics
// package.
//
// Supported metrics:
//
//   - MetricL1: cityblock distance, computed with gonum floats.Distance.
//   - MetricCosine: 1 − cosine similarity, using vek's SIMD Dot/Norm.
//
// Usage:
//
//	fwd, err := distance.Pairwise(emb1, emb2, distance.MetricL1)
//	bwd, err := distance.Pairwise(emb2, emb1, distance.MetricCosine)
//
// The two directions are independent calls; nothing requires them to use
// the same metric or to be transposes of each other.
package distance
