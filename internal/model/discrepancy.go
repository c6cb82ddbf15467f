package model

// Discrepancy is a single detected inconsistency. It carries enough of the
// contributing facts and pages for a human to locate and verify the issue
// without re-running the analysis.
//
// Design decision: We use one flat struct with omitempty payload fields
// rather than one Go type per discrepancy variant because:
//  1. Reports serialize every variant through the same JSON path
//  2. The report writers switch on Type, not on Go types
//  3. It mirrors how the findings are consumed downstream (spreadsheets,
//     ticketing), where a sparse flat record is the natural shape
type Discrepancy struct {
	// Type is one of the Type* constants in severity.go.
	Type string `json:"type"`

	// Severity and SeverityText are filled from the type mapping when the
	// discrepancy is added to a report.
	Severity     Severity `json:"severity"`
	SeverityText string   `json:"severity_text"`

	// Description is a one-line human-readable summary.
	Description string `json:"description,omitempty"`

	// === Pricing payload ===

	// Category is the inferred price category (fiber, adsl, ...) or the
	// feature-group key for package discrepancies.
	Category string `json:"category,omitempty"`

	// PriceRange is the formatted "Rs. MIN - Rs. MAX" span.
	PriceRange string `json:"price_range,omitempty"`

	// DifferencePercent is the cluster spread as a percentage, e.g. 50.0.
	DifferencePercent float64 `json:"difference_percentage,omitempty"`

	// PriceOccurrences lists one entry per price cluster.
	PriceOccurrences []PriceOccurrence `json:"occurrences,omitempty"`

	// === Package payload ===

	SpeedVariations   []float64        `json:"speed_variations,omitempty"`
	DataCapVariations []string         `json:"data_variations,omitempty"`
	Packages          []PackageSummary `json:"packages,omitempty"`

	// === Translation payload ===

	URL1      string    `json:"url1,omitempty"`
	URL2      string    `json:"url2,omitempty"`
	Language1 string    `json:"language1,omitempty"`
	Language2 string    `json:"language2,omitempty"`
	Prices1   []float64 `json:"prices1,omitempty"`
	Prices2   []float64 `json:"prices2,omitempty"`

	// MissingIn1/MissingIn2 are feature keywords present on one language
	// version but absent from the other.
	MissingIn1 []string `json:"missing_in_lang1,omitempty"`
	MissingIn2 []string `json:"missing_in_lang2,omitempty"`

	// URL is the single page involved (internal mismatches, missing
	// translations, terminology findings).
	URL string `json:"url,omitempty"`

	EnglishPrices []float64 `json:"english_prices,omitempty"`
	SinhalaPrices []float64 `json:"sinhala_prices,omitempty"`

	// === Contact payload ===

	// Count is the number of distinct contact identifiers site-wide.
	Count int `json:"count,omitempty"`

	// Values lists the distinct identifiers.
	Values []string `json:"values,omitempty"`

	// ContactOccurrences lists every occurrence with its page and context.
	ContactOccurrences []ContactOccurrence `json:"details,omitempty"`

	// === Terminology payload ===

	// Term is the normalized canonical form the variants collapse to.
	Term string `json:"term,omitempty"`

	// Variations lists the distinct raw spellings observed.
	Variations []string `json:"variations,omitempty"`

	// TermOccurrences locates every variant occurrence.
	TermOccurrences []TermOccurrence `json:"term_occurrences,omitempty"`
}

// PriceOccurrence summarizes one price cluster inside a pricing
// discrepancy: the cluster representative, where it was first seen, and
// how many facts the cluster absorbed.
type PriceOccurrence struct {
	URL      string  `json:"url"`
	Price    float64 `json:"price"`
	Context  string  `json:"context"`
	Language string  `json:"language"`
	Count    int     `json:"count"`
}

// PackageSummary is one page's contribution to a package discrepancy.
type PackageSummary struct {
	URL      string    `json:"url"`
	Speeds   []float64 `json:"speeds,omitempty"`
	DataCaps []string  `json:"data_limits,omitempty"`
	Language string    `json:"language"`
}

// ContactOccurrence locates one contact identifier occurrence.
type ContactOccurrence struct {
	URL     string `json:"url"`
	Value   string `json:"value"`
	Context string `json:"context,omitempty"`
}

// TermOccurrence locates one terminology variant occurrence.
type TermOccurrence struct {
	URL     string `json:"url"`
	Section string `json:"section,omitempty"`
	Text    string `json:"text"`
}
