package analyze

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/lang"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// DefaultBannerSimilarityThreshold is the similarity ratio below which
// two superlative banner claims are treated as contradictory rather than
// restatements of one slogan.
const DefaultBannerSimilarityThreshold = 0.8

// superlativeMarkers are the marketing-claim tokens that make a banner
// worth comparing. Two banners both claiming a superlative should be the
// same claim; two different superlative claims on one site contradict
// each other.
var superlativeMarkers = []string{
	"best", "fastest", "largest", "leading", "no.1", "no. 1", "#1",
}

// TerminologyPhase flags wording drift: the same term written differently
// across section texts, and contradictory superlative claims across
// banner OCR texts.
type TerminologyPhase struct {
	bannerSimilarityThreshold float64
}

// NewTerminologyPhase creates the terminology phase with the given
// thresholds.
func NewTerminologyPhase(options Options) *TerminologyPhase {
	return &TerminologyPhase{bannerSimilarityThreshold: options.BannerSimilarityThreshold}
}

// Name returns the phase name.
func (p *TerminologyPhase) Name() string {
	return "terminology"
}

// Category returns the report category.
func (p *TerminologyPhase) Category() string {
	return model.CategoryTerminology
}

// Analyze runs the section-term and banner checks.
func (p *TerminologyPhase) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	discrepancies := p.inconsistentTerms(corpus)
	discrepancies = append(discrepancies, p.contradictoryBanners(corpus)...)
	return discrepancies, nil
}

// termGroup collects every raw spelling of one normalized term.
type termGroup struct {
	variations  []string
	seen        map[string]bool
	occurrences []model.TermOccurrence
}

// inconsistentTerms reports terms whose normalized form is shared but
// whose raw spelling differs across section texts.
func (p *TerminologyPhase) inconsistentTerms(corpus *Corpus) []model.Discrepancy {
	groups := make(map[string]*termGroup)
	order := make([]string, 0)

	for _, page := range corpus.Pages() {
		for _, section := range sortedSectionNames(page) {
			for _, item := range page.Sections[section] {
				normalized := lang.Normalize(item.Text)
				if normalized == "" {
					continue
				}

				group, exists := groups[normalized]
				if !exists {
					group = &termGroup{seen: make(map[string]bool)}
					groups[normalized] = group
					order = append(order, normalized)
				}
				if !group.seen[item.Text] {
					group.seen[item.Text] = true
					group.variations = append(group.variations, item.Text)
				}
				group.occurrences = append(group.occurrences, model.TermOccurrence{
					URL:     page.URL,
					Section: section,
					Text:    item.Text,
				})
			}
		}
	}

	out := make([]model.Discrepancy, 0)
	for _, normalized := range order {
		group := groups[normalized]
		if len(group.variations) < 2 {
			continue
		}
		out = append(out, model.Discrepancy{
			Type: model.TypeInconsistentTerminology,
			Description: fmt.Sprintf(
				"The term %q is written %d different ways across the site",
				normalized, len(group.variations)),
			Term:            normalized,
			Variations:      group.variations,
			TermOccurrences: group.occurrences,
		})
	}
	return out
}

// bannerClaim is one OCR text carrying a superlative marker.
type bannerClaim struct {
	url  string
	text string
}

// contradictoryBanners compares every pair of superlative banner texts
// and reports pairs that read as different claims.
func (p *TerminologyPhase) contradictoryBanners(corpus *Corpus) []model.Discrepancy {
	claims := make([]bannerClaim, 0)
	for _, page := range corpus.Pages() {
		for _, text := range page.OCRTexts {
			if hasSuperlative(text) {
				claims = append(claims, bannerClaim{url: page.URL, text: text})
			}
		}
	}

	out := make([]model.Discrepancy, 0)
	for i := 0; i < len(claims); i++ {
		for j := i + 1; j < len(claims); j++ {
			ratio := lang.NormalizedRatio(claims[i].text, claims[j].text)
			if ratio >= p.bannerSimilarityThreshold {
				continue
			}
			out = append(out, model.Discrepancy{
				Type: model.TypeInconsistentBannerText,
				Description: fmt.Sprintf(
					"Banner claims on %s and %s make different superlative statements",
					claims[i].url, claims[j].url),
				URL1:       claims[i].url,
				URL2:       claims[j].url,
				Variations: []string{claims[i].text, claims[j].text},
			})
		}
	}
	return out
}

func hasSuperlative(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range superlativeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func sortedSectionNames(page model.PageRecord) []string {
	names := make([]string, 0, len(page.Sections))
	for name := range page.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
