package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// numeral matches an integer with optional thousands separators and an
// optional two-digit decimal part, e.g. "2,500", "1999", "2500.00".
const numeral = `(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

// PriceExtractor recognizes price amounts marked by a currency marker in
// either script. Recognized marker grammars:
//
//   - "Rs. 2500", "Rs.2500", "Rs 2500"
//   - "LKR 2500", "LKR.2500"
//   - "2500/-" (trailing solidus-dash convention)
//   - "2500/month", "2500 per month", "2500 monthly"
//   - "රු. 2500" (Sinhala currency marker)
//
// A numeral co-occurring with two markers yields two facts; downstream
// clustering absorbs the duplicate rather than extraction deduplicating.
type PriceExtractor struct {
	// patterns are tried independently; each yields its own matches.
	patterns []*regexp.Regexp

	// contextWidth is the context window half-width in bytes.
	contextWidth int
}

// PriceExtractorOption configures a PriceExtractor.
type PriceExtractorOption func(*PriceExtractor)

// WithPriceContextWidth overrides the context window half-width.
func WithPriceContextWidth(width int) PriceExtractorOption {
	return func(e *PriceExtractor) {
		if width > 0 {
			e.contextWidth = width
		}
	}
}

// NewPriceExtractor creates a PriceExtractor with the standard marker
// grammars compiled.
func NewPriceExtractor(opts ...PriceExtractorOption) *PriceExtractor {
	e := &PriceExtractor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Rs\.?\s*` + numeral),
			regexp.MustCompile(`(?i)LKR\.?\s*` + numeral),
			regexp.MustCompile(numeral + `\s*/-`),
			regexp.MustCompile(`(?i)` + numeral + `\s*(?:/month|per month|monthly)`),
			regexp.MustCompile(`රු\.?\s*` + numeral),
		},
		contextWidth: DefaultContextWidth,
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the extractor name for logging.
func (e *PriceExtractor) Name() string {
	return "price"
}

// Extract returns one PriceFact per marker-grammar match in the text.
// The Language field is left empty; the analyzer tags it after
// classifying the context window.
func (e *PriceExtractor) Extract(text, sourceURL string) []model.PriceFact {
	facts := make([]model.PriceFact, 0)

	for _, pattern := range e.patterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			// m[2], m[3] bound the numeral capture group.
			raw := text[m[2]:m[3]]
			value, err := parseAmount(raw)
			if err != nil {
				continue
			}

			facts = append(facts, model.PriceFact{
				Value:     value,
				Raw:       raw,
				Context:   contextWindow(text, m[0], m[1], e.contextWidth),
				SourceURL: sourceURL,
			})
		}
	}
	return facts
}

// parseAmount converts a matched numeral to its magnitude by stripping
// thousands separators.
func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

// Price categories inferred from a fact's context window.
const (
	CategoryFiber   = "fiber"
	CategoryADSL    = "adsl"
	CategoryMobile  = "4g_mobile"
	CategoryTV      = "tv"
	CategoryPackage = "package"
	CategoryUnknown = "unknown"
)

// categoryRules maps context keywords to a price category. Rules are
// checked in fixed priority order and the first match wins, so a context
// mentioning both "fiber" and "package" is a fiber price.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{CategoryFiber, []string{"fiber", "fibre", "fttx"}},
	{CategoryADSL, []string{"adsl", "megaline"}},
	{CategoryMobile, []string{"4g", "lte", "mobile"}},
	{CategoryTV, []string{"peotv", "tv", "television"}},
	{CategoryPackage, []string{"package", "plan", "bundle"}},
}

// InferPriceCategory derives a price's service category from keyword
// presence in its context window. The category is computed where the
// pricing analysis needs it rather than stored on the fact.
func InferPriceCategory(context string) string {
	lower := strings.ToLower(context)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryUnknown
}
