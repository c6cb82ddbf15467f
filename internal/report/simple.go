package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether categories with no discrepancies are
	// shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty categories.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with per-discrepancy contexts.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeDiscrepancies(&sb, report)
	w.writeRecommendations(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    SITE CONSISTENCY AUDIT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if report.Source != "" {
		sb.WriteString(fmt.Sprintf("Source:         %s\n", report.Source))
	}
	sb.WriteString(fmt.Sprintf("Generated:      %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Pages Analyzed: %d\n", report.PagesAnalyzed))
	sb.WriteString(fmt.Sprintf("Languages:      %d English, %d Sinhala, %d mixed\n",
		report.EnglishPages, report.SinhalaPages, report.MixedPages))
	sb.WriteString("\n")
}

// writeSummary writes the severity and category summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  HIGH:   %d\n", report.HighCount))
	sb.WriteString(fmt.Sprintf("  MEDIUM: %d\n", report.MediumCount))
	sb.WriteString(fmt.Sprintf("  LOW:    %d\n", report.LowCount))
	sb.WriteString(fmt.Sprintf("  INFO:   %d\n", report.InfoCount))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL:  %d discrepancies\n", report.TotalDiscrepancies()))
	sb.WriteString("\n")

	for _, category := range categoryOrder {
		sb.WriteString(fmt.Sprintf("  %-35s %d\n", categoryHeading(category)+":", report.CategoryCounts[category]))
	}
	sb.WriteString("\n")
}

// writeDiscrepancies writes every discrepancy grouped by category.
func (w *SimpleWriter) writeDiscrepancies(sb *strings.Builder, report *model.Report) {
	if !report.HasDiscrepancies() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DISCREPANCIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, category := range categoryOrder {
		found := report.ByCategory(category)
		if len(found) == 0 && !w.showEmpty {
			continue
		}
		w.writeCategory(sb, category, found)
	}
}

// writeCategory writes the discrepancies of one category.
func (w *SimpleWriter) writeCategory(sb *strings.Builder, category string, found []model.Discrepancy) {
	sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(categoryHeading(category))))

	if len(found) == 0 {
		sb.WriteString("  No discrepancies\n\n")
		return
	}

	for _, d := range found {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", w.severityIndicator(d.Severity), d.Description))
		if d.PriceRange != "" {
			sb.WriteString(fmt.Sprintf("      Range: %s (%.1f%% difference)\n", d.PriceRange, d.DifferencePercent))
		}
		if d.URL != "" {
			sb.WriteString(fmt.Sprintf("      Page: %s\n", d.URL))
		}
		if d.URL1 != "" && d.URL2 != "" {
			sb.WriteString(fmt.Sprintf("      Pages: %s / %s\n", d.URL1, d.URL2))
		}
		if w.verbose {
			w.writeDetails(sb, d)
		}
	}
	sb.WriteString("\n")
}

// writeDetails writes the per-occurrence evidence for one discrepancy.
func (w *SimpleWriter) writeDetails(sb *strings.Builder, d model.Discrepancy) {
	for _, occ := range d.PriceOccurrences {
		sb.WriteString(fmt.Sprintf("      Rs. %.0f seen %d time(s), e.g. %s (%s)\n",
			occ.Price, occ.Count, occ.URL, occ.Context))
	}
	for _, occ := range d.ContactOccurrences {
		sb.WriteString(fmt.Sprintf("      %s on %s\n", occ.Value, occ.URL))
	}
	for _, occ := range d.TermOccurrences {
		sb.WriteString(fmt.Sprintf("      %q in section %q on %s\n", occ.Text, occ.Section, occ.URL))
	}
}

// writeRecommendations writes the deduplicated remediation lines.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, report *model.Report) {
	recs := report.Recommendations()
	if len(recs) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("  * %s\n", rec))
	}
	sb.WriteString("\n")
}

// severityIndicator returns a visual indicator for the severity level.
func (w *SimpleWriter) severityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityHigh:
		return "!!"
	case model.SeverityMedium:
		return "!"
	case model.SeverityLow:
		return "-"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by siteaudit\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
