// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alignmetrics/config"
	"github.com/katalvlaran/alignmetrics/logging"
)

// app is the state shared by every subcommand once the root pre-run has
// resolved configuration and logging.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	dataset    string

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "alignmetrics",
		Short: "Graph alignment evaluation: HITS@k, MRR and OT cost matrices",
		Long: `alignmetrics scores node embeddings of two graphs against ground-truth
node pairs. It ranks candidates by L1 or cosine distance in both directions
and reports HITS@k and mean reciprocal rank, taking the better direction.

Settings come from an optional YAML file (--config); flags override it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.dataset, "dataset", "", "dataset name used for run directories")

	root.AddCommand(newEvalCmd(a), newCostCmd(a), newAnchorsCmd(a))

	return root
}

// setup loads the config file, applies global flag overrides and builds the
// logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.dataset != "" {
		cfg.Dataset = a.dataset
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Format, level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger.WithDataset(cfg.Dataset)

	return nil
}
