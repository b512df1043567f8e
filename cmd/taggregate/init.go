package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/taggregate/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/config.yml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Taggregate configuration file",
		Long: `Initialize creates a new config.yml in the current directory.

The generated file lists every option with its default and a short
explanation. Edit source-files to name your documents in reading order.

Examples:
  # Create config.yml in current directory
  taggregate init

  # Create config file at a specific path
  taggregate init -o manuscript/config.yml

  # Force overwrite existing file
  taggregate init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeTemplate(outputPath, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit source-files to list your documents in reading order, then run:")
	fmt.Fprintln(out, "  taggregate run")
	return nil
}

// writeTemplate copies the embedded template to path. An existing file is
// only replaced when force is set.
func writeTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}

	content, err := configTemplate.ReadFile("templates/config.yml")
	if err != nil {
		return fmt.Errorf("read config template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}
	return nil
}
