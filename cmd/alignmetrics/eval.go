// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alignmetrics/distance"
	"github.com/katalvlaran/alignmetrics/embedio"
	"github.com/katalvlaran/alignmetrics/matrix"
	"github.com/katalvlaran/alignmetrics/metrics"
	"github.com/katalvlaran/alignmetrics/runlog"
)

type evalFlags struct {
	src, tgt       string
	distFwd        string
	distBwd        string
	pairs          string
	metric         string
	ks             []int
	pairAligned    bool
	logRoot        string
	noReport       bool
	showDirections bool
}

func newEvalCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute HITS@k and MRR for two embedding sets",
		Long: `eval ranks candidates for each ground-truth pair and prints HITS@k and MRR.

Inputs are either two embedding matrices (--src, --tgt), from which distances
are computed with --metric, or two precomputed distance matrices
(--dist-fwd, --dist-bwd). Files ending in .gz or .zst are decompressed.

Unless --no-report is set, a metrics.yaml is written to
<log_root>/<dataset>_results/run_<n>/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEval(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.src, "src", "", "graph-1 embedding matrix (one row per node)")
	fl.StringVar(&f.tgt, "tgt", "", "graph-2 embedding matrix (one row per node)")
	fl.StringVar(&f.distFwd, "dist-fwd", "", "precomputed graph-1 → graph-2 distance matrix")
	fl.StringVar(&f.distBwd, "dist-bwd", "", "precomputed graph-2 → graph-1 distance matrix")
	fl.StringVar(&f.pairs, "pairs", "", "ground-truth pairs, one \"src tgt\" per line")
	fl.StringVar(&f.metric, "metric", "", "distance metric: l1 or cosine (overrides config)")
	fl.IntSliceVar(&f.ks, "ks", nil, "HITS@k cutoffs, strictly ascending (overrides config)")
	fl.BoolVar(&f.pairAligned, "pair-aligned", false, "row i of each matrix is the query for pair i")
	fl.StringVar(&f.logRoot, "log-root", "", "root directory for run reports (overrides config)")
	fl.BoolVar(&f.noReport, "no-report", false, "do not write a run report")
	fl.BoolVar(&f.showDirections, "directions", false, "also print per-direction scores")
	_ = cmd.MarkFlagRequired("pairs")
	cmd.MarkFlagsRequiredTogether("src", "tgt")
	cmd.MarkFlagsRequiredTogether("dist-fwd", "dist-bwd")
	cmd.MarkFlagsMutuallyExclusive("src", "dist-fwd")
	cmd.MarkFlagsOneRequired("src", "dist-fwd")

	return cmd
}

func (a *app) runEval(cmd *cobra.Command, f *evalFlags) error {
	ctx := cmd.Context()
	cfg := a.cfg
	if f.metric != "" {
		cfg.Metric = f.metric
	}
	if len(f.ks) > 0 {
		cfg.HitTopKs = f.ks
	}
	if f.pairAligned {
		cfg.PairAlignedRows = true
	}
	if f.logRoot != "" {
		cfg.LogRoot = f.logRoot
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pairs, err := embedio.LoadPairs(f.pairs)
	if err != nil {
		return err
	}
	fwd, bwd, err := a.loadDistances(cmd, f)
	if err != nil {
		return err
	}

	rep, err := metrics.Evaluate(fwd, bwd, pairs, cfg.HitTopKs, cfg.MetricOptions()...)
	if err != nil {
		return err
	}
	a.log.LogHits(ctx, rep.Ks, rep.Hits, rep.MRR)
	printReport(cmd, rep, f.showDirections)

	if f.noReport || cfg.LogRoot == "" {
		return nil
	}
	rec, err := runlog.NewRecord(cfg.Dataset, cfg.Metric, rep)
	if err != nil {
		return err
	}
	runDir, err := runlog.Dir{Root: cfg.LogRoot}.EnsureRunDir(cfg.Dataset)
	if err == nil {
		_, err = runlog.WriteReport(runDir, rec)
	}
	a.log.WithRun(rec.ID).LogRunDir(ctx, runDir, err)

	return err
}

// loadDistances returns the forward and backward distance matrices, either
// read from disk or computed from embeddings. Both supported metrics are
// symmetric, so the backward matrix is the transpose of the forward one.
func (a *app) loadDistances(cmd *cobra.Command, f *evalFlags) (*matrix.Dense, *matrix.Dense, error) {
	ctx := cmd.Context()
	if f.distFwd != "" {
		fwd, err := embedio.LoadMatrix(f.distFwd, matrix.WithAllowInf())
		if err != nil {
			return nil, nil, err
		}
		bwd, err := embedio.LoadMatrix(f.distBwd, matrix.WithAllowInf())
		if err != nil {
			return nil, nil, err
		}
		a.log.LogMatrix(ctx, "dist-fwd", fwd.Rows(), fwd.Cols())
		a.log.LogMatrix(ctx, "dist-bwd", bwd.Rows(), bwd.Cols())
		return fwd, bwd, nil
	}

	if f.src == "" || f.tgt == "" {
		return nil, nil, errors.New("eval: --src and --tgt are both required")
	}
	metric, err := distance.ParseMetric(a.cfg.Metric)
	if err != nil {
		return nil, nil, err
	}
	e1, err := embedio.LoadMatrix(f.src)
	if err != nil {
		return nil, nil, err
	}
	e2, err := embedio.LoadMatrix(f.tgt)
	if err != nil {
		return nil, nil, err
	}
	a.log.LogMatrix(ctx, "src", e1.Rows(), e1.Cols())
	a.log.LogMatrix(ctx, "tgt", e2.Rows(), e2.Cols())

	fwd, err := distance.Pairwise(e1, e2, metric, a.cfg.DistanceOptions()...)
	if err != nil {
		return nil, nil, err
	}
	bwd, err := matrix.Transpose(fwd)
	if err != nil {
		return nil, nil, err
	}

	return fwd, bwd, nil
}

func printReport(cmd *cobra.Command, rep *metrics.Report, directions bool) {
	out := cmd.OutOrStdout()
	for _, k := range rep.Ks {
		fmt.Fprintf(out, "HITS@%d: %.4f\n", k, rep.Hits[k])
	}
	fmt.Fprintf(out, "MRR: %.4f\n", rep.MRR)
	if !directions {
		return
	}
	for _, d := range []struct {
		name  string
		score metrics.DirectionScore
	}{
		{metrics.Forward.String(), rep.Forward},
		{metrics.Backward.String(), rep.Backward},
	} {
		fmt.Fprintf(out, "%s:", d.name)
		for _, k := range rep.Ks {
			fmt.Fprintf(out, " HITS@%d=%.4f", k, d.score.Hits[k])
		}
		fmt.Fprintf(out, " MRR=%.4f\n", d.score.MRR)
	}
}
