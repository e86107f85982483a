// Package alignmetrics evaluates graph alignment: given node embeddings of
// two graphs and a set of ground-truth node correspondences, it measures how
// well nearest-neighbour retrieval recovers those correspondences.
//
// Under the hood, everything is organized under these subpackages:
//
//	metrics/   HITS@k and MRR from two distance matrices (the evaluator)
//	distance/  pairwise L1 and cosine distance matrices
//	transport/ optimal-transport cost matrix from structural + feature embeddings
//	structure/ structural embeddings as shortest-path distances to anchor nodes
//	matrix/    dense row-major storage shared by all of the above
//	core/      thread-safe graph used by structure
//	bfs/       hop distances on unweighted graphs
//	dijkstra/  weighted distances on non-negative integer weights
//	embedio/   text readers/writers with transparent .gz / .zst support
//	runlog/    <root>/<dataset>_results/run_<n>/ layout and metrics.yaml reports
//	config/    YAML configuration for the CLI
//	logging/   slog wrapper used by the CLI
//
// The command-line front end lives in cmd/alignmetrics.
//
// Quick example:
//
//	fwd, _ := distance.Pairwise(emb1, emb2, distance.MetricL1)
//	bwd, _ := matrix.Transpose(fwd)
//	hits, mrr, err := metrics.ComputeMetrics(fwd, bwd, pairs, metrics.DefaultHitTopKs())
//
// Each reported value is the better of the forward (graph 1 → graph 2) and
// backward (graph 2 → graph 1) directions.
package alignmetrics
