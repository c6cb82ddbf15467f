package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/siteaudit.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".siteaudit"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new siteaudit configuration file",
		Long: `Initialize creates a new .siteaudit configuration file in the current directory.

The generated file includes:
- Default values for every analysis threshold
- Documentation for what each threshold controls

Examples:
  # Create .siteaudit in current directory
  siteaudit init

  # Create config file at a specific path
  siteaudit init -o thresholds.yaml

  # Force overwrite existing file
  siteaudit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
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

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/siteaudit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nEdit this file to tune the analysis thresholds, for example:")
	fmt.Println("  - How close two prices must be to count as the same price point")
	fmt.Println("  - How large a price spread must be before it is reported")
	fmt.Println("  - How many distinct contact numbers trigger an alarm")

	return nil
}
