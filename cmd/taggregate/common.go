package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/taggregate/internal/config"
	tlog "github.com/nao1215/taggregate/internal/log"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig loads the configuration file and applies command-line
// overrides. Positional arguments replace the configured source files.
//
// An explicitly named config file must exist. Without --config the search
// is optional, so "list a.md" works in a directory without a config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig()
	found := config.FindConfigFile(configPath)
	switch {
	case found != "":
		cfg, err = config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
	case configPath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	if len(args) > 0 {
		cfg.SourceFiles = args
	}

	if f := cmd.Flags().Lookup("figure-wise"); f != nil && f.Changed {
		if cfg.FigureWise, err = cmd.Flags().GetBool("figure-wise"); err != nil {
			return nil, err
		}
	}
	if f := cmd.Flags().Lookup("allow-empty-ranges"); f != nil && f.Changed {
		if cfg.AllowEmptyRanges, err = cmd.Flags().GetBool("allow-empty-ranges"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// addOrderFlags registers the flags that change how the order is computed.
func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("figure-wise", config.DefaultFigureWise,
		"Order tags by their first figure definition instead of first mention")
	cmd.Flags().Bool("allow-empty-ranges", false,
		"Skip ranges that imply no tag instead of failing")
}

// setupLogger creates the structured logger for a command and installs it
// as the default. Logs go to stderr so reports on stdout stay parseable.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := tlog.NewLogger(cmd.ErrOrStderr(), verbose)
	if asJSON, err := cmd.Flags().GetBool("log-json"); err == nil && asJSON {
		logger = tlog.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	slog.SetDefault(logger)
	return logger
}
