package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeDiscrepancies(md, report)
	w.writeRecommendations(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Site Consistency Audit")
	md.PlainText("")

	source := report.Source
	if source == "" {
		source = "-"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + source + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Pages Analyzed", strconv.Itoa(report.PagesAnalyzed)},
			{"English Pages", strconv.Itoa(report.EnglishPages)},
			{"Sinhala Pages", strconv.Itoa(report.SinhalaPages)},
			{"Mixed Pages", strconv.Itoa(report.MixedPages)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the severity summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🟠 High", strconv.Itoa(report.HighCount)},
			{"🟡 Medium", strconv.Itoa(report.MediumCount)},
			{"🔵 Low", strconv.Itoa(report.LowCount)},
			{"⚪ Info", strconv.Itoa(report.InfoCount)},
			{"**Total**", "**" + strconv.Itoa(report.TotalDiscrepancies()) + "**"},
		},
	})
	md.PlainText("")

	if report.HasDiscrepancies() {
		w.writePieChart(md, report)
	}
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of the category distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Discrepancies by Category"),
		piechart.WithShowData(true),
	)

	for _, category := range categoryOrder {
		count := report.CategoryCounts[category]
		if count == 0 {
			continue
		}
		chart.LabelAndIntValue(categoryHeading(category), uint64(count))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on severity counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.HighCount > 0:
		md.Warningf(
			"Customer-facing inconsistencies detected. %d high severity discrepancies should be fixed first.",
			report.HighCount,
		)
	case report.MediumCount > 0:
		md.Importantf(
			"%d medium severity discrepancies found between language editions.",
			report.MediumCount,
		)
	case report.TotalDiscrepancies() > 0:
		md.Note("Only low severity and informational discrepancies detected.")
	default:
		md.Tip("No inconsistencies detected across the snapshot.")
	}
	md.PlainText("")
}

// writeDiscrepancies writes every discrepancy grouped by category.
func (w *MarkdownWriter) writeDiscrepancies(md *markdown.Markdown, report *model.Report) {
	md.H2("Discrepancies")
	md.PlainText("")

	if !report.HasDiscrepancies() {
		md.PlainText("No discrepancies detected.")
		md.PlainText("")
		return
	}

	for _, category := range categoryOrder {
		found := report.ByCategory(category)
		if len(found) == 0 {
			continue
		}

		md.H3(categoryHeading(category))
		md.PlainText("")
		w.writeDiscrepancyTable(md, found)
	}
}

// writeDiscrepancyTable writes a table of discrepancies with details.
func (w *MarkdownWriter) writeDiscrepancyTable(md *markdown.Markdown, found []model.Discrepancy) {
	rows := make([][]string, len(found))
	for i, d := range found {
		location := d.URL
		if location == "" && d.URL1 != "" {
			location = d.URL1 + " / " + d.URL2
		}
		if location == "" {
			location = "-"
		}
		rows[i] = []string{
			d.Type,
			d.SeverityText,
			truncateString(d.Description, 60),
			truncateString(location, 50),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Type", "Severity", "Description", "Location"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRecommendations writes the deduplicated remediation lines.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.Report) {
	recs := report.Recommendations()
	if len(recs) == 0 {
		return
	}

	md.H2("Recommendations")
	md.PlainText("")
	md.BulletList(recs...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by siteaudit*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
