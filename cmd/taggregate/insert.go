package main

import (
	"fmt"

	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewInsertCmd creates the insert command.
func NewInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert [files...]",
		Short: "Inject the tag file into each document's metadata block",
		Long: `Insert reads the tag file written by "aggregate" and sets the configured
tag field (default: manuscript-figures) in the metadata block of every source
document. The results are written to the compiled directory under the same
file names; the sources are not modified.

Every source document must start with a "---" metadata block.`,
		Args: cobra.ArbitraryArgs,
		RunE: runInsertCmd,
	}
}

func runInsertCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.ValidateCompile(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	agg := model.NewAggregation(cfg.FigureWise)
	if err := pipeline.NewInsertPipeline(cfg, logger).Execute(cmd.Context(), agg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d documents into %s\n", len(agg.Compiled), cfg.CompiledDirectory)
	return nil
}
