package lang

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for equality and similarity comparisons:
// whitespace runs collapse to single spaces, Unicode compatibility forms
// fold to NFKC, and the result is lowercased.
//
// NFKC matters here because scraped Sinhala text mixes precomposed and
// decomposed vowel signs, and banner OCR output is full of fullwidth and
// compatibility variants that must compare equal to their plain forms.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	collapsed := strings.Join(strings.Fields(text), " ")
	return strings.ToLower(norm.NFKC.String(collapsed))
}

// NormalizedEqual reports whether two texts are equal after normalization.
func NormalizedEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
