package analyze

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/lang"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// DefaultPriceListTolerance is the maximum relative difference between
// two paired prices for a pair of price lists to count as matching.
const DefaultPriceListTolerance = 0.05

// TranslationPhase compares the English and Sinhala editions of the site
// for diverging facts.
//
// Paired pages are compared on their price lists and feature sets. Mixed
// pages are additionally checked against themselves: prices whose context
// reads English versus prices whose context reads Sinhala should agree on
// a single page. Finally, pages carrying a locale URL segment with no
// counterpart edition are flagged as untranslated.
type TranslationPhase struct {
	pairer             *PagePairer
	priceListTolerance float64
}

// NewTranslationPhase creates the translation phase with the given
// thresholds.
func NewTranslationPhase(options Options) *TranslationPhase {
	return &TranslationPhase{
		pairer:             NewPagePairer(WithFeatureOverlapThreshold(options.FeatureOverlapThreshold)),
		priceListTolerance: options.PriceListTolerance,
	}
}

// Name returns the phase name.
func (p *TranslationPhase) Name() string {
	return "translation"
}

// Category returns the report category.
func (p *TranslationPhase) Category() string {
	return model.CategoryTranslation
}

// Analyze runs the cross-language, mixed-page, and missing-edition checks.
func (p *TranslationPhase) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	discrepancies := make([]model.Discrepancy, 0)

	english := corpus.ByLanguage(lang.VerdictEnglish)
	sinhala := corpus.ByLanguage(lang.VerdictSinhala)

	for _, en := range english {
		select {
		case <-ctx.Done():
			return discrepancies, ctx.Err()
		default:
		}

		for _, si := range sinhala {
			if !p.pairer.MightPair(en, si) {
				continue
			}
			discrepancies = append(discrepancies, p.comparePair(en, si)...)
		}
	}

	for _, mixed := range corpus.ByLanguage(lang.VerdictMixed) {
		if d, ok := p.internalMismatch(mixed); ok {
			discrepancies = append(discrepancies, d)
		}
	}

	discrepancies = append(discrepancies, p.missingEditions(corpus)...)
	return discrepancies, nil
}

// comparePair checks one English/Sinhala page pair for diverging price
// lists and feature sets.
func (p *TranslationPhase) comparePair(en, si *model.PageFacts) []model.Discrepancy {
	out := make([]model.Discrepancy, 0, 2)

	enPrices := en.PriceValues()
	siPrices := si.PriceValues()
	if len(enPrices) > 0 && len(siPrices) > 0 && !p.priceListsMatch(enPrices, siPrices) {
		out = append(out, model.Discrepancy{
			Type: model.TypeLanguagePriceMismatch,
			Description: fmt.Sprintf(
				"English page lists %d prices and its Sinhala counterpart lists %d, and the lists do not agree",
				len(enPrices), len(siPrices)),
			URL1:      en.URL,
			URL2:      si.URL,
			Language1: en.Language,
			Language2: si.Language,
			Prices1:   enPrices,
			Prices2:   siPrices,
		})
	}

	missingInEnglish := featureDifference(si, en)
	missingInSinhala := featureDifference(en, si)
	if len(missingInEnglish) > 0 || len(missingInSinhala) > 0 {
		out = append(out, model.Discrepancy{
			Type: model.TypeLanguageFeatureMismatch,
			Description: fmt.Sprintf(
				"Feature lists differ between language editions of %s", stripLocaleSegments(en.URL)),
			URL1:       en.URL,
			URL2:       si.URL,
			Language1:  en.Language,
			Language2:  si.Language,
			MissingIn1: missingInEnglish,
			MissingIn2: missingInSinhala,
		})
	}
	return out
}

// internalMismatch checks a mixed page's English-context prices against
// its Sinhala-context prices.
func (p *TranslationPhase) internalMismatch(facts *model.PageFacts) (model.Discrepancy, bool) {
	var englishPrices, sinhalaPrices []float64
	for _, price := range facts.Prices {
		switch lang.Verdict(price.Language) {
		case lang.VerdictEnglish:
			englishPrices = append(englishPrices, price.Value)
		case lang.VerdictSinhala:
			sinhalaPrices = append(sinhalaPrices, price.Value)
		}
	}

	if len(englishPrices) == 0 || len(sinhalaPrices) == 0 {
		return model.Discrepancy{}, false
	}
	if p.priceListsMatch(englishPrices, sinhalaPrices) {
		return model.Discrepancy{}, false
	}
	return model.Discrepancy{
		Type: model.TypeInternalPriceMismatch,
		Description: fmt.Sprintf(
			"Prices stated in English and in Sinhala disagree on the same page %s", facts.URL),
		URL:           facts.URL,
		EnglishPrices: englishPrices,
		SinhalaPrices: sinhalaPrices,
	}, true
}

// missingEditions flags locale-tagged URLs with no counterpart edition
// anywhere in the snapshot.
func (p *TranslationPhase) missingEditions(corpus *Corpus) []model.Discrepancy {
	out := make([]model.Discrepancy, 0)

	for _, facts := range corpus.AllFacts() {
		var missingType, wanted string
		switch {
		case strings.Contains(facts.URL, "/en/"):
			missingType = model.TypeMissingSinhalaTranslation
			wanted = "Sinhala"
		case strings.Contains(facts.URL, "/si/"):
			missingType = model.TypeMissingEnglishTranslation
			wanted = "English"
		default:
			continue
		}

		if p.hasCounterpart(corpus, facts.URL) {
			continue
		}
		out = append(out, model.Discrepancy{
			Type: missingType,
			Description: fmt.Sprintf(
				"No %s edition found for %s", wanted, facts.URL),
			URL: facts.URL,
		})
	}
	return out
}

// hasCounterpart reports whether any other page normalizes to the same
// locale-stripped URL.
func (p *TranslationPhase) hasCounterpart(corpus *Corpus, url string) bool {
	stripped := stripLocaleSegments(url)
	for _, other := range corpus.AllFacts() {
		if other.URL == url {
			continue
		}
		if stripLocaleSegments(other.URL) == stripped {
			return true
		}
	}
	return false
}

// priceListsMatch implements order-insensitive, count-sensitive price
// equality: equal length, then after sorting both ascending each paired
// element differs by at most the tolerance relative to the larger value.
func (p *TranslationPhase) priceListsMatch(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	as := append([]float64(nil), a...)
	bs := append([]float64(nil), b...)
	sort.Float64s(as)
	sort.Float64s(bs)

	for i := range as {
		larger := as[i]
		if bs[i] > larger {
			larger = bs[i]
		}
		diff := as[i] - bs[i]
		if diff < 0 {
			diff = -diff
		}
		if larger == 0 {
			if diff != 0 {
				return false
			}
			continue
		}
		if diff/larger > p.priceListTolerance {
			return false
		}
	}
	return true
}

// featureDifference returns from's feature keywords that to lacks, in
// sorted order.
func featureDifference(from, to *model.PageFacts) []string {
	toSet := to.FeatureSet()
	out := make([]string, 0)
	for keyword := range from.FeatureSet() {
		if !toSet[keyword] {
			out = append(out, keyword)
		}
	}
	sort.Strings(out)
	return out
}
