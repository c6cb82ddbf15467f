package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// ContactExtractor recognizes Sri Lankan phone numbers and email addresses.
//
// Phone matching covers the three shapes the operator publishes: the
// country-code or trunk-prefix form with optional spaces, the hyphenated
// area-code form, and the bare ten-digit form. Matched values are
// normalized (spaces and hyphens stripped, emails lowercased) so that the
// same number written two ways counts as one distinct contact.
type ContactExtractor struct {
	phonePatterns []*regexp.Regexp
	emailPattern  *regexp.Regexp
	contextWidth  int
}

// ContactExtractorOption configures a ContactExtractor.
type ContactExtractorOption func(*ContactExtractor)

// WithContactContextWidth overrides the context window half-width.
func WithContactContextWidth(width int) ContactExtractorOption {
	return func(e *ContactExtractor) {
		if width > 0 {
			e.contextWidth = width
		}
	}
}

// NewContactExtractor creates a ContactExtractor with the phone and email
// grammars compiled.
func NewContactExtractor(opts ...ContactExtractorOption) *ContactExtractor {
	e := &ContactExtractor{
		phonePatterns: []*regexp.Regexp{
			// A leading \b would sit before the "+" and never match after
			// a space, so the boundary is kept only on the trunk-0 form.
			regexp.MustCompile(`(?:\+94|0094|\b0)\s*\d{2}\s*\d{7}\b`),
			regexp.MustCompile(`\b\d{3}-\d{7}\b`),
			regexp.MustCompile(`\b\d{10}\b`),
		},
		emailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		contextWidth: DefaultContextWidth,
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the extractor name for logging.
func (e *ContactExtractor) Name() string {
	return "contact"
}

// Extract returns phone and email facts found in text. A span matched by
// more than one phone pattern is reported once, keyed by its normalized
// value and start offset.
func (e *ContactExtractor) Extract(text, sourceURL string) []model.ContactFact {
	facts := make([]model.ContactFact, 0)
	seen := make(map[string]bool)

	for _, pattern := range e.phonePatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			value := normalizePhone(text[m[0]:m[1]])
			key := value + ":" + strconv.Itoa(m[0])
			if seen[key] {
				continue
			}
			seen[key] = true
			facts = append(facts, model.ContactFact{
				Kind:      model.ContactPhone,
				Value:     value,
				Context:   contextWindow(text, m[0], m[1], e.contextWidth),
				SourceURL: sourceURL,
			})
		}
	}

	for _, m := range e.emailPattern.FindAllStringIndex(text, -1) {
		facts = append(facts, model.ContactFact{
			Kind:      model.ContactEmail,
			Value:     strings.ToLower(text[m[0]:m[1]]),
			Context:   contextWindow(text, m[0], m[1], e.contextWidth),
			SourceURL: sourceURL,
		})
	}
	return facts
}

func normalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
