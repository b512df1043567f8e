package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for Taggregate.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taggregate",
		Short: "Aggregate cross-reference tags across manuscript documents",
		Long: `Taggregate scans markdown documents for cross-reference tags such as
{#f:overview:f}, orders them by first appearance and writes the list to a tag
file. Ranges like "{#f:a:f} - {#f:c:f}" pull the tags they imply into place.

The list can then be injected into the YAML metadata block of every document.
Settings are read from config.yml (see "taggregate init").`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: config.yml in current or XDG config directory)")

	cmd.AddCommand(NewAggregateCmd())
	cmd.AddCommand(NewInsertCmd())
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	os.Exit(run())
}

// run executes the root command. Interrupts cancel the run between steps.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
