// Package matrix offers the dense, row-major storage shared by the
// alignment-evaluation packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with safe accessors (At/Set/Row
//     return errors instead of panicking).
//   - A numeric policy (NaN/Inf rejection, optional +Inf admission) applied
//     on ingestion and Set.
//   - Row-wise helpers used by embedding pipelines: L2 row normalisation,
//     transpose, element-wise Apply.
//   - A zero-copy bridge to gonum (Gonum / FromGonum) for BLAS-backed products.
//
// Rows are vectors: an embedding set of n nodes with d features is an n×d
// Dense; a distance matrix between two sets is n1×n2.
package matrix
