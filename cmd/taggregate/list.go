package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/taggregate/internal/config"
	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/pipeline"
	"github.com/nao1215/taggregate/internal/report"
	"github.com/nao1215/taggregate/internal/tagfile"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "Show the resolved tag order without writing files",
		Long: `List computes the same order as "aggregate" and prints a report instead of
writing the tag file. Files given as arguments replace the configured source
files, so no config file is needed.

Examples:
  # Report for the configured documents
  taggregate list

  # Only tags quoted in image captions
  taggregate list --source captions intro.md results.md

  # Tag file lines on stdout
  taggregate list --plain

  # Markdown report written to a file
  taggregate list --markdown -o report/tags.md`,
		Args: cobra.ArbitraryArgs,
		RunE: runListCmd,
	}
	addOrderFlags(cmd)

	cmd.Flags().StringP("source", "s", string(model.SourceAll),
		"Occurrences to order: all, text (excluding image captions) or captions")
	cmd.Flags().BoolP("json", "j", false, "Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown report")
	cmd.Flags().BoolP("plain", "p", false, "Output tag file lines only")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown", "plain")

	return cmd
}

func runListCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSources(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	format, err := reportFormat(cmd)
	if err != nil {
		return err
	}
	if format == "plain" {
		if err := cfg.ValidateSuffix(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	rawSource, err := cmd.Flags().GetString("source")
	if err != nil {
		return err
	}
	source, err := model.ParseSource(rawSource)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	agg := model.NewAggregation(cfg.FigureWise)
	if err := pipeline.NewListPipeline(cfg, source, logger).Execute(cmd.Context(), agg); err != nil {
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath == "" {
		return outputReport(cmd, cfg, agg, cmd.OutOrStdout())
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return outputReport(cmd, cfg, agg, f)
}

// reportFormat returns the output format selected by flags.
func reportFormat(cmd *cobra.Command) (string, error) {
	for _, name := range []string{"json", "markdown", "plain"} {
		set, err := cmd.Flags().GetBool(name)
		if err != nil {
			return "", err
		}
		if set {
			return name, nil
		}
	}
	return "text", nil
}

// outputReport writes the aggregation in the format selected by flags.
func outputReport(cmd *cobra.Command, cfg *config.Config, agg *model.Aggregation, output io.Writer) error {
	format, err := reportFormat(cmd)
	if err != nil {
		return err
	}

	var writer report.Writer
	switch format {
	case "plain":
		_, err := io.WriteString(output, tagfile.Text(tagfile.Entries(agg.Tags, cfg.TagSuffix), tagfile.DefaultDelimiter))
		return err
	case "json":
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case "markdown":
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err = writer.Write(agg)
	return err
}
