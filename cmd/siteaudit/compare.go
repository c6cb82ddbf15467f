package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/config"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/database"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// Constants for consistency direction and summary messages.
const (
	directionWorsened  = "worsened"
	directionImproved  = "improved"
	directionUnchanged = "unchanged"
	noFindingsMessage  = "No findings"
)

// NewCompareCmd creates the compare command.
// This command compares audit results with historical data stored in the
// database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [snapshot-source]",
		Short: "Compare audit results with historical data",
		Long: `Compare displays differences between the current and previous audit results.

This command retrieves historical audit data from the database and shows:
- New discrepancies that appeared since the last audit
- Resolved discrepancies that are no longer present
- Changes in severity counts

The comparison requires at least two audits in the database for the
specified snapshot source. Use 'siteaudit audit' to run audits and save
results.

Examples:
  # Compare latest two audits for a snapshot source
  siteaudit compare snapshot.json

  # List all audit history for a source
  siteaudit compare --list snapshot.json

  # Compare with a specific historical audit by ID
  siteaudit compare --with-id 5 snapshot.json

  # Output comparison in JSON format
  siteaudit compare --json snapshot.json

  # List all audited sources in the database
  siteaudit compare --list-sources`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List audit history for the specified snapshot source")
	cmd.Flags().BoolP("list-sources", "L", false,
		"List all audited sources in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-id", "i", 0,
		"Compare with a specific audit by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listSources, err := cmd.Flags().GetBool("list-sources")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database (unless
	// --list-sources); this avoids database locks when validation fails.
	var source string
	if !listSources {
		if len(args) == 0 {
			return errors.New("snapshot source is required (use --list-sources to see available sources)")
		}
		source = args[0]
	}

	dbDir := config.XDGDataDir()

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Read-only access

	ctx := context.Background()

	if listSources {
		return listAuditedSources(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listAuditHistory(ctx, db, source)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	withID, err := cmd.Flags().GetInt64("with-id")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, source, withID, jsonOutput)
}

// listAuditedSources lists all sources with audit records in the database.
func listAuditedSources(ctx context.Context, db *database.AuditDB) error {
	sources, err := db.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	if len(sources) == 0 {
		fmt.Println("No audited sources found in the database.")
		fmt.Println("\nUse 'siteaudit audit <snapshot.json>' to audit a snapshot.")
		return nil
	}

	fmt.Printf("Audited sources (%d):\n\n", len(sources))
	for _, s := range sources {
		fmt.Printf("  • %s\n", s)
	}
	fmt.Println("\nUse 'siteaudit compare --list <source>' to see audit history for a source.")

	return nil
}

// listAuditHistory lists all audit records for a specific source.
func listAuditHistory(ctx context.Context, db *database.AuditDB, source string) error {
	history, err := db.History(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to get audit history: %w", err)
	}

	if len(history) == 0 {
		fmt.Printf("No audit history found for %s\n", source)
		fmt.Println("\nUse 'siteaudit audit' to audit this snapshot.")
		return nil
	}

	fmt.Printf("Audit history for %s (%d audits):\n\n", source, len(history))
	fmt.Printf("  %-6s  %-20s  %s\n", "ID", "Date", "Findings")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, meta := range history {
		fmt.Printf("  %-6d  %-20s  %s\n",
			meta.ID,
			meta.GeneratedAt.Format("2006-01-02 15:04:05"),
			formatFindingSummary(meta),
		)
	}

	fmt.Println("\nUse 'siteaudit compare <source>' to compare the latest two audits.")
	fmt.Println("Use 'siteaudit compare --with-id <id> <source>' to compare with a specific audit.")

	return nil
}

// formatFindingSummary formats finding counts into a short display string.
func formatFindingSummary(meta database.ReportMetadata) string {
	if meta.Total == 0 {
		return noFindingsMessage
	}

	var parts []string
	if meta.HighCount > 0 {
		parts = append(parts, fmt.Sprintf("H:%d", meta.HighCount))
	}
	if meta.MediumCount > 0 {
		parts = append(parts, fmt.Sprintf("M:%d", meta.MediumCount))
	}
	other := meta.Total - meta.HighCount - meta.MediumCount
	if other > 0 {
		parts = append(parts, fmt.Sprintf("other:%d", other))
	}
	return fmt.Sprintf("total %d (%s)", meta.Total, strings.Join(parts, " "))
}

// runComparison performs the actual comparison between audit reports.
func runComparison(ctx context.Context, db *database.AuditDB, source string, withID int64, jsonOutput bool) error {
	reports, err := db.GetLatestReports(ctx, source, 2)
	if err != nil {
		return fmt.Errorf("failed to get audit history: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no audit history found for %s", source)
	}
	if len(reports) < 2 && withID == 0 {
		return fmt.Errorf("at least 2 audits are required for comparison (found %d)", len(reports))
	}

	// Latest report is always the current one
	current := reports[0]

	var previous *model.Report
	if withID > 0 {
		previous, err = db.GetReportByID(ctx, withID)
		if err != nil {
			return fmt.Errorf("failed to get audit with ID %d: %w", withID, err)
		}
		if previous.Source != source {
			return fmt.Errorf("audit ID %d belongs to %s, not %s", withID, previous.Source, source)
		}
	} else {
		previous = reports[1]
	}

	comparison := compareReports(previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two audit reports.
type ComparisonResult struct {
	// Source is the audited snapshot source.
	Source string `json:"source"`

	// PreviousAudit contains summary counts of the previous audit.
	PreviousAudit AuditMetadata `json:"previous_audit"`

	// CurrentAudit contains summary counts of the current audit.
	CurrentAudit AuditMetadata `json:"current_audit"`

	// NewFindings contains discrepancies new in the current audit.
	NewFindings []model.Discrepancy `json:"new_findings,omitempty"`

	// ResolvedFindings contains discrepancies no longer present.
	ResolvedFindings []model.Discrepancy `json:"resolved_findings,omitempty"`

	// UnchangedCount is the number of discrepancies present in both.
	UnchangedCount int `json:"unchanged_count"`

	// Change describes the overall consistency trend.
	Change ConsistencyChange `json:"change"`
}

// AuditMetadata contains summary counts of one audit for display.
type AuditMetadata struct {
	// GeneratedAt is when the audit ran.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalFindings is the total number of discrepancies.
	TotalFindings int `json:"total_findings"`

	HighCount   int `json:"high_count"`
	MediumCount int `json:"medium_count"`
	LowCount    int `json:"low_count"`
	InfoCount   int `json:"info_count"`
}

// ConsistencyChange describes the change between two audits.
type ConsistencyChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	HighDelta   int `json:"high_delta"`
	MediumDelta int `json:"medium_delta"`
	LowDelta    int `json:"low_delta"`
	InfoDelta   int `json:"info_delta"`
}

// compareReports compares two audit reports and generates a comparison
// result.
func compareReports(previous, current *model.Report) *ComparisonResult {
	result := &ComparisonResult{
		Source:        current.Source,
		PreviousAudit: auditMetadata(previous),
		CurrentAudit:  auditMetadata(current),
	}

	previousFindings := make(map[string]model.Discrepancy)
	for _, d := range previous.Discrepancies {
		previousFindings[findingKey(d)] = d
	}
	currentFindings := make(map[string]model.Discrepancy)
	for _, d := range current.Discrepancies {
		currentFindings[findingKey(d)] = d
	}

	// Keep report order for new findings so output is deterministic.
	for _, d := range current.Discrepancies {
		if _, exists := previousFindings[findingKey(d)]; !exists {
			result.NewFindings = append(result.NewFindings, d)
		}
	}
	for _, d := range previous.Discrepancies {
		if _, exists := currentFindings[findingKey(d)]; !exists {
			result.ResolvedFindings = append(result.ResolvedFindings, d)
		} else {
			result.UnchangedCount++
		}
	}

	result.Change = calculateChange(result.PreviousAudit, result.CurrentAudit)
	return result
}

func auditMetadata(r *model.Report) AuditMetadata {
	return AuditMetadata{
		GeneratedAt:   r.GeneratedAt,
		TotalFindings: len(r.Discrepancies),
		HighCount:     r.HighCount,
		MediumCount:   r.MediumCount,
		LowCount:      r.LowCount,
		InfoCount:     r.InfoCount,
	}
}

// findingKey generates a comparison key for a discrepancy. Two findings
// with the same key are treated as the same issue across audits even when
// counts or formatted descriptions drift.
func findingKey(d model.Discrepancy) string {
	return strings.Join([]string{
		d.Type, d.Category, d.Term, d.URL, d.URL1, d.URL2,
	}, "|")
}

// calculateChange calculates the consistency trend between two audits.
func calculateChange(previous, current AuditMetadata) ConsistencyChange {
	change := ConsistencyChange{
		HighDelta:   current.HighCount - previous.HighCount,
		MediumDelta: current.MediumCount - previous.MediumCount,
		LowDelta:    current.LowCount - previous.LowCount,
		InfoDelta:   current.InfoCount - previous.InfoCount,
	}

	// Higher severities weigh more when deciding the overall direction.
	previousScore := previous.HighCount*50 + previous.MediumCount*10 + previous.LowCount*5 + previous.InfoCount
	currentScore := current.HighCount*50 + current.MediumCount*10 + current.LowCount*5 + current.InfoCount

	switch {
	case currentScore < previousScore:
		change.Direction = directionImproved
	case currentScore > previousScore:
		change.Direction = directionWorsened
	default:
		change.Direction = directionUnchanged
	}
	return change
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonText outputs the comparison result in human-readable
// text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Audit Comparison: %s\n", result.Source)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nConsistency: %s\n", formatDirection(result.Change.Direction))

	fmt.Printf("\nPrevious audit: %s\n", result.PreviousAudit.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current audit:  %s\n", result.CurrentAudit.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Println("\nFindings Summary:")
	fmt.Printf("  %-10s  %-10s  %-10s  %-10s\n", "Severity", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "High",
		result.PreviousAudit.HighCount, result.CurrentAudit.HighCount,
		formatDelta(result.Change.HighDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Medium",
		result.PreviousAudit.MediumCount, result.CurrentAudit.MediumCount,
		formatDelta(result.Change.MediumDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Low",
		result.PreviousAudit.LowCount, result.CurrentAudit.LowCount,
		formatDelta(result.Change.LowDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Info",
		result.PreviousAudit.InfoCount, result.CurrentAudit.InfoCount,
		formatDelta(result.Change.InfoDelta))
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Total",
		result.PreviousAudit.TotalFindings, result.CurrentAudit.TotalFindings,
		formatDelta(result.CurrentAudit.TotalFindings-result.PreviousAudit.TotalFindings))

	if len(result.NewFindings) > 0 {
		fmt.Printf("\nNew Findings (%d):\n", len(result.NewFindings))
		for _, d := range result.NewFindings {
			fmt.Printf("  [+] [%s] %s\n", d.SeverityText, d.Description)
		}
	}

	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\nResolved Findings (%d):\n", len(result.ResolvedFindings))
		for _, d := range result.ResolvedFindings {
			fmt.Printf("  [-] [%s] %s\n", d.SeverityText, d.Description)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d findings\n", result.UnchangedCount)
	}

	return nil
}

// formatDirection formats the change direction for display.
func formatDirection(direction string) string {
	switch direction {
	case directionImproved:
		return "IMPROVED (fewer or less severe findings)"
	case directionWorsened:
		return "WORSENED (more or more severe findings)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
