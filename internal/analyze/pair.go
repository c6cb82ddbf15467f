package analyze

import (
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// DefaultFeatureOverlapThreshold is the Jaccard ratio above which two
// pages' feature-keyword sets are considered to describe the same offer.
const DefaultFeatureOverlapThreshold = 0.5

// localeSegments are URL path segments that mark a language edition.
var localeSegments = []string{"/en/", "/si/"}

// PagePairer decides whether two pages denote the same logical content,
// for duplicate-claim detection within one language and for matching a
// page with its translated counterpart.
//
// Pairing is intentionally permissive. A missed translation comparison
// hides a real mismatch, while a spurious pair at worst produces one
// extra comparison that usually finds nothing, so any single rule hit is
// sufficient.
type PagePairer struct {
	featureOverlapThreshold float64
}

// PagePairerOption configures a PagePairer.
type PagePairerOption func(*PagePairer)

// WithFeatureOverlapThreshold overrides the Jaccard pairing threshold.
func WithFeatureOverlapThreshold(threshold float64) PagePairerOption {
	return func(p *PagePairer) {
		if threshold > 0 {
			p.featureOverlapThreshold = threshold
		}
	}
}

// NewPagePairer creates a PagePairer with default thresholds.
func NewPagePairer(opts ...PagePairerOption) *PagePairer {
	p := &PagePairer{featureOverlapThreshold: DefaultFeatureOverlapThreshold}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MightPair reports whether a and b plausibly describe the same content.
// Rules are tried in order and any one suffices: URL equality after locale
// segment erasure, price counts differing by at most one with both pages
// priced, or feature-set Jaccard overlap above the threshold.
func (p *PagePairer) MightPair(a, b *model.PageFacts) bool {
	if a == nil || b == nil {
		return false
	}

	if stripLocaleSegments(a.URL) == stripLocaleSegments(b.URL) {
		return true
	}

	na, nb := len(a.Prices), len(b.Prices)
	if na > 0 && nb > 0 {
		diff := na - nb
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			return true
		}
	}

	return p.featureOverlap(a.FeatureSet(), b.FeatureSet()) > p.featureOverlapThreshold
}

// featureOverlap returns the Jaccard ratio of two keyword sets, zero when
// the union is empty.
func (p *PagePairer) featureOverlap(a, b map[string]bool) float64 {
	union := make(map[string]bool, len(a)+len(b))
	intersection := 0
	for k := range a {
		union[k] = true
		if b[k] {
			intersection++
		}
	}
	for k := range b {
		union[k] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

// stripLocaleSegments erases language-edition path segments so the two
// editions of one page normalize to the same URL.
func stripLocaleSegments(url string) string {
	for _, seg := range localeSegments {
		url = strings.ReplaceAll(url, seg, "/")
	}
	return url
}
