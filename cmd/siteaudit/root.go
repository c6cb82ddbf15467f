// Package main provides the entry point for the siteaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for siteaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteaudit",
		Short: "Consistency auditor for bilingual website snapshots",
		Long: `Siteaudit analyzes crawled snapshots of a bilingual (English/Sinhala)
website and reports internal inconsistencies.

It extracts prices, speeds, data allowances, features, and contact
details from every page, then cross-checks them for:
- Conflicting prices for the same service category
- Packages advertising the same features with different speeds or caps
- Language editions quoting different prices or features
- Missing English or Sinhala translations
- Too many distinct phone numbers or email addresses
- Inconsistent terminology and contradictory banner claims`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
