package main

import (
	"fmt"

	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewAggregateCmd creates the aggregate command.
func NewAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate [files...]",
		Short: "Write the ordered tag list to the tag file",
		Long: `Aggregate scans the source documents in order, resolves the tag order,
reconciles declared ranges and writes one "{<identity>:<suffix>}" line per tag
to the configured tag file.

Examples:
  # Use config.yml in the current directory
  taggregate aggregate

  # Order by first mention instead of first figure definition
  taggregate aggregate --figure-wise=false`,
		Args: cobra.ArbitraryArgs,
		RunE: runAggregateCmd,
	}
	addOrderFlags(cmd)
	return cmd
}

func runAggregateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	agg := model.NewAggregation(cfg.FigureWise)
	if err := pipeline.NewAggregatePipeline(cfg, logger).Execute(cmd.Context(), agg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tags to %s\n", len(agg.Tags), agg.TagFile)
	return nil
}
