package model

import "strconv"

// Fact kinds extracted from page text. Facts are derived, transient values:
// they are recomputed on every run and never persisted independently.

// PriceFact is a price amount recognized in page text.
// The value is a currency-agnostic magnitude; the marker ("Rs.", "LKR",
// "රු.", a "/-" or "/month" suffix) only gates recognition.
type PriceFact struct {
	// Value is the numeric amount after separator removal.
	Value float64 `json:"value"`

	// Raw is the matched numeral exactly as it appeared.
	Raw string `json:"raw"`

	// Context is a bounded text window around the match, used for human
	// review, category inference, and language tagging.
	Context string `json:"context"`

	// SourceURL is the page the fact came from.
	SourceURL string `json:"source_url"`

	// Language is the classifier verdict on the context window.
	Language string `json:"language"`
}

// SpeedFact is an advertised connection speed in Mbps-equivalent units.
type SpeedFact struct {
	Value     float64 `json:"value"`
	Context   string  `json:"context"`
	SourceURL string  `json:"source_url"`
}

// DataCapFact is an advertised data allowance. Either Unlimited is true
// or Value holds the GB-equivalent amount.
type DataCapFact struct {
	Unlimited bool    `json:"unlimited,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Context   string  `json:"context"`
	SourceURL string  `json:"source_url"`
}

// Key returns the cap's canonical string form. Unlimited caps and numeric
// caps are deliberately distinct forms: the package phase treats them as
// different advertised values even when marketing would equate them.
func (d DataCapFact) Key() string {
	if d.Unlimited {
		return "unlimited"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// FeatureFact is a service feature keyword matched from the fixed
// vocabulary (fiber, adsl, peotv, ...).
type FeatureFact struct {
	Keyword   string `json:"keyword"`
	Context   string `json:"context"`
	SourceURL string `json:"source_url"`
}

// Contact identifier kinds.
const (
	ContactPhone = "phone"
	ContactEmail = "email"
)

// ContactFact is a phone number or email address found in page text.
type ContactFact struct {
	// Kind is ContactPhone or ContactEmail.
	Kind string `json:"kind"`

	// Value is the identifier as matched (lowercased for emails).
	Value string `json:"value"`

	Context   string `json:"context"`
	SourceURL string `json:"source_url"`
}

// PageFacts bundles everything extracted from a single page.
// One PageFacts is produced per PageRecord and merged into category-wide
// collections in deterministic page order before clustering.
type PageFacts struct {
	// URL is the source page.
	URL string `json:"url"`

	// Language is the whole-page classification verdict.
	Language string `json:"language"`

	Prices   []PriceFact   `json:"prices,omitempty"`
	Speeds   []SpeedFact   `json:"speeds,omitempty"`
	DataCaps []DataCapFact `json:"data_caps,omitempty"`
	Features []FeatureFact `json:"features,omitempty"`
	Contacts []ContactFact `json:"contacts,omitempty"`
}

// FeatureSet returns the page's distinct feature keywords as a set.
func (f PageFacts) FeatureSet() map[string]bool {
	set := make(map[string]bool, len(f.Features))
	for _, feat := range f.Features {
		set[feat.Keyword] = true
	}
	return set
}

// PriceValues returns the page's price magnitudes in extraction order.
func (f PageFacts) PriceValues() []float64 {
	values := make([]float64, 0, len(f.Prices))
	for _, p := range f.Prices {
		values = append(values, p.Value)
	}
	return values
}

// HasAnyFacts reports whether extraction found anything on the page.
func (f PageFacts) HasAnyFacts() bool {
	return len(f.Prices) > 0 || len(f.Speeds) > 0 || len(f.DataCaps) > 0 ||
		len(f.Features) > 0 || len(f.Contacts) > 0
}
