package model

import "time"

// Report is the sole output of one analysis run: summary counters plus the
// ordered sequence of discrepancies. It is built once by the analyzer and
// read-only thereafter; the report writers never mutate it.
//
// Design decision: We maintain the per-category and per-severity counters
// incrementally in AddDiscrepancy rather than recomputing them in the
// writers because several writers render the same report, and incremental
// counting keeps them trivially consistent with the record list.
type Report struct {
	// GeneratedAt is when the analysis ran.
	GeneratedAt time.Time `json:"generated_at"`

	// Source labels where the page records came from (snapshot file path
	// or a caller-supplied label).
	Source string `json:"source,omitempty"`

	// === Corpus counters ===

	// PagesAnalyzed is the number of page records in the run.
	PagesAnalyzed int `json:"pages_analyzed"`

	// Whole-page language bucket sizes.
	EnglishPages int `json:"english_pages"`
	SinhalaPages int `json:"sinhala_pages"`
	MixedPages   int `json:"mixed_pages"`

	// === Findings ===

	// Discrepancies holds every finding in phase order. Within one run the
	// slice is append-only; order is deterministic for fixed input order.
	Discrepancies []Discrepancy `json:"discrepancies"`

	// CategoryCounts maps report category to finding count. Categories
	// that were checked but produced nothing are present with a zero
	// count, so a zero is a trustworthy "checked, found nothing".
	CategoryCounts map[string]int `json:"category_counts"`

	// Per-severity counters.
	HighCount   int `json:"high_count"`
	MediumCount int `json:"medium_count"`
	LowCount    int `json:"low_count"`
	InfoCount   int `json:"info_count"`
}

// NewReport creates an empty report with every category counter
// initialized to zero.
func NewReport(source string) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Source:      source,
		CategoryCounts: map[string]int{
			CategoryPricing:     0,
			CategoryPackage:     0,
			CategoryTranslation: 0,
			CategoryContact:     0,
			CategoryTerminology: 0,
		},
		Discrepancies: make([]Discrepancy, 0),
	}
}

// AddDiscrepancy appends a finding, filling in its severity from the type
// mapping and updating the counters.
func (r *Report) AddDiscrepancy(d Discrepancy) {
	info := GetDiscrepancyInfo(d.Type)
	d.Severity = info.Severity
	d.SeverityText = info.Severity.String()

	r.Discrepancies = append(r.Discrepancies, d)
	r.CategoryCounts[info.Category]++

	switch info.Severity {
	case SeverityHigh:
		r.HighCount++
	case SeverityMedium:
		r.MediumCount++
	case SeverityLow:
		r.LowCount++
	case SeverityInfo:
		r.InfoCount++
	}
}

// TotalDiscrepancies returns the total number of findings.
func (r *Report) TotalDiscrepancies() int {
	return len(r.Discrepancies)
}

// HasDiscrepancies reports whether any finding was recorded.
func (r *Report) HasDiscrepancies() bool {
	return len(r.Discrepancies) > 0
}

// ByCategory returns the findings belonging to one report category,
// preserving report order.
func (r *Report) ByCategory(category string) []Discrepancy {
	var result []Discrepancy
	for _, d := range r.Discrepancies {
		if GetDiscrepancyInfo(d.Type).Category == category {
			result = append(result, d)
		}
	}
	return result
}

// Recommendations returns the deduplicated remediation lines for every
// discrepancy type present in the report, in first-occurrence order.
func (r *Report) Recommendations() []string {
	seen := make(map[string]bool)
	var recs []string
	for _, d := range r.Discrepancies {
		rec := GetDiscrepancyInfo(d.Type).Recommendation
		if rec == "" || seen[rec] {
			continue
		}
		seen[rec] = true
		recs = append(recs, rec)
	}
	return recs
}
