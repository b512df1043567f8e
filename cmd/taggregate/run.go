package main

import (
	"fmt"

	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Aggregate tags and inject them in one step",
		Long: `Run is "aggregate" followed by "insert". Nothing is compiled if the
aggregation fails.`,
		Args: cobra.ArbitraryArgs,
		RunE: runRunCmd,
	}
	addOrderFlags(cmd)
	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.ValidateCompile(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	agg := model.NewAggregation(cfg.FigureWise)
	if err := pipeline.NewRunPipeline(cfg, logger).Execute(cmd.Context(), agg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d tags to %s\n", len(agg.Tags), agg.TagFile)
	fmt.Fprintf(out, "Compiled %d documents into %s\n", len(agg.Compiled), cfg.CompiledDirectory)
	return nil
}
