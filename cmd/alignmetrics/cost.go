// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alignmetrics/embedio"
	"github.com/katalvlaran/alignmetrics/matrix"
	"github.com/katalvlaran/alignmetrics/transport"
)

type costFlags struct {
	srcStruct, tgtStruct string
	srcFeat, tgtFeat     string
	alpha                float64
	out                  string
}

func newCostCmd(a *app) *cobra.Command {
	f := &costFlags{}
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Build the optimal-transport cost matrix between two graphs",
		Long: `cost combines structural and feature embeddings of two graphs into
	cost(i,j) = alpha·exp(−⟨r1_i,r2_j⟩) + (1−alpha)·exp(−⟨x1_i,x2_j⟩)
after L2-normalising every row, and writes the result to --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCost(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.srcStruct, "src-struct", "", "graph-1 structural embeddings")
	fl.StringVar(&f.tgtStruct, "tgt-struct", "", "graph-2 structural embeddings")
	fl.StringVar(&f.srcFeat, "src-feat", "", "graph-1 feature embeddings")
	fl.StringVar(&f.tgtFeat, "tgt-feat", "", "graph-2 feature embeddings")
	fl.Float64Var(&f.alpha, "alpha", -1, "structural weight in [0,1] (default from config)")
	fl.StringVarP(&f.out, "out", "o", "", "output file; .gz/.zst compress")
	for _, name := range []string{"src-struct", "tgt-struct", "src-feat", "tgt-feat", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *app) runCost(cmd *cobra.Command, f *costFlags) error {
	alpha := a.cfg.Alpha
	if cmd.Flags().Changed("alpha") {
		alpha = f.alpha
	}

	var g1, g2 transport.Embeddings
	for _, in := range []struct {
		path string
		dst  **matrix.Dense
	}{
		{f.srcStruct, &g1.Structural},
		{f.srcFeat, &g1.Features},
		{f.tgtStruct, &g2.Structural},
		{f.tgtFeat, &g2.Features},
	} {
		m, err := embedio.LoadMatrix(in.path)
		if err != nil {
			return err
		}
		a.log.LogMatrix(cmd.Context(), in.path, m.Rows(), m.Cols())
		*in.dst = m
	}

	cost, err := transport.Cost(g1, g2, alpha)
	if err != nil {
		return err
	}
	if err = embedio.SaveMatrix(f.out, cost); err != nil {
		return err
	}
	a.log.InfoContext(cmd.Context(), "cost matrix saved",
		"out", f.out,
		"rows", cost.Rows(),
		"cols", cost.Cols(),
		"alpha", alpha,
	)
	fmt.Fprintln(cmd.OutOrStdout(), f.out)

	return nil
}
