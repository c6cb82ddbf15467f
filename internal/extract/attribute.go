package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// featureVocabulary is the fixed set of service feature keywords matched
// by case-insensitive substring containment. Multi-word entries must stay
// after their single-word prefixes are absent ("free installation" has no
// single-word form), but order otherwise does not matter: every matching
// keyword yields a fact.
var featureVocabulary = []string{
	"fiber", "fibre", "adsl", "4g", "lte", "wifi", "wi-fi",
	"peotv", "iptv", "telephone", "voice", "email", "cloud",
	"free installation", "free router", "unlimited", "fixed",
}

// AttributeExtractor recognizes advertised package attributes: connection
// speeds, data allowances, and feature keywords.
//
// No unit conversion is applied to speed or cap magnitudes: the analysis
// compares values for exact distinctness within a feature group, and
// converting units would silently merge values that the site advertises
// differently.
type AttributeExtractor struct {
	speedPattern *regexp.Regexp
	capPattern   *regexp.Regexp

	// unlimitedPatterns match the unlimited-allowance wordings. Both the
	// two-word and bare forms are tried, so "unlimited data" yields two
	// facts; cap comparison is by distinct string form, which absorbs it.
	unlimitedPatterns []*regexp.Regexp

	contextWidth int
}

// AttributeExtractorOption configures an AttributeExtractor.
type AttributeExtractorOption func(*AttributeExtractor)

// WithAttributeContextWidth overrides the context window half-width.
func WithAttributeContextWidth(width int) AttributeExtractorOption {
	return func(e *AttributeExtractor) {
		if width > 0 {
			e.contextWidth = width
		}
	}
}

// NewAttributeExtractor creates an AttributeExtractor with the standard
// unit grammars compiled.
func NewAttributeExtractor(opts ...AttributeExtractorOption) *AttributeExtractor {
	e := &AttributeExtractor{
		speedPattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:Mbps|MB/s|GB/s)`),
		capPattern:   regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:GB|TB)`),
		unlimitedPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)unlimited\s+data`),
			regexp.MustCompile(`(?i)unlimited`),
		},
		contextWidth: DefaultContextWidth,
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the extractor name for logging.
func (e *AttributeExtractor) Name() string {
	return "attribute"
}

// ExtractSpeeds returns one SpeedFact per speed-unit match.
func (e *AttributeExtractor) ExtractSpeeds(text, sourceURL string) []model.SpeedFact {
	facts := make([]model.SpeedFact, 0)
	for _, m := range e.speedPattern.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		facts = append(facts, model.SpeedFact{
			Value:     value,
			Context:   contextWindow(text, m[0], m[1], e.contextWidth),
			SourceURL: sourceURL,
		})
	}
	return facts
}

// ExtractDataCaps returns one DataCapFact per allowance match: numeric
// GB/TB amounts plus the unlimited sentinel wordings.
func (e *AttributeExtractor) ExtractDataCaps(text, sourceURL string) []model.DataCapFact {
	facts := make([]model.DataCapFact, 0)

	for _, m := range e.capPattern.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		facts = append(facts, model.DataCapFact{
			Value:     value,
			Context:   contextWindow(text, m[0], m[1], e.contextWidth),
			SourceURL: sourceURL,
		})
	}

	// Patterns run most-specific first; spans claimed by an earlier
	// pattern are skipped so "unlimited data" yields one sentinel, not
	// one per pattern.
	var claimed [][2]int
	for _, pattern := range e.unlimitedPatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			if overlapsClaimed(claimed, m[0], m[1]) {
				continue
			}
			claimed = append(claimed, [2]int{m[0], m[1]})
			facts = append(facts, model.DataCapFact{
				Unlimited: true,
				Context:   contextWindow(text, m[0], m[1], e.contextWidth),
				SourceURL: sourceURL,
			})
		}
	}
	return facts
}

func overlapsClaimed(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

// ExtractFeatures returns one FeatureFact per vocabulary keyword present
// in the text. Containment is case-insensitive; each keyword is reported
// at most once per page, anchored at its first occurrence.
func (e *AttributeExtractor) ExtractFeatures(text, sourceURL string) []model.FeatureFact {
	facts := make([]model.FeatureFact, 0)
	lower := strings.ToLower(text)

	for _, keyword := range featureVocabulary {
		if !strings.Contains(lower, keyword) {
			continue
		}
		facts = append(facts, model.FeatureFact{
			Keyword:   keyword,
			Context:   firstOccurrenceWindow(text, keyword, e.contextWidth),
			SourceURL: sourceURL,
		})
	}
	return facts
}
