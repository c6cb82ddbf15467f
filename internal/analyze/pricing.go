package analyze

import (
	"context"
	"fmt"
	"math"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/extract"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// DefaultSpreadThreshold is the relative spread between the cheapest and
// most expensive cluster representatives above which a price category is
// reported.
const DefaultSpreadThreshold = 0.20

// pricingCategories fixes the order categories are checked in, so the
// report lists pricing discrepancies in the same order on every run.
var pricingCategories = []string{
	extract.CategoryFiber,
	extract.CategoryADSL,
	extract.CategoryMobile,
	extract.CategoryTV,
	extract.CategoryPackage,
	extract.CategoryUnknown,
}

// PricingPhase flags service categories advertised at materially different
// price points across the site.
//
// Prices are first clustered so restatements of the same price (rounding,
// promotional cents) collapse into one cluster; only the spread between
// cluster representatives can trigger a report. A single cluster never
// triggers, however many members it has.
type PricingPhase struct {
	clusterTolerance float64
	spreadThreshold  float64
}

// NewPricingPhase creates the pricing phase with the given thresholds.
func NewPricingPhase(options Options) *PricingPhase {
	return &PricingPhase{
		clusterTolerance: options.ClusterTolerance,
		spreadThreshold:  options.SpreadThreshold,
	}
}

// Name returns the phase name.
func (p *PricingPhase) Name() string {
	return "pricing"
}

// Category returns the report category.
func (p *PricingPhase) Category() string {
	return model.CategoryPricing
}

// Analyze clusters all price facts per inferred category and reports each
// category whose cluster spread exceeds the threshold.
func (p *PricingPhase) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	byCategory := make(map[string][]model.PriceFact)
	for _, facts := range corpus.AllFacts() {
		for _, price := range facts.Prices {
			category := extract.InferPriceCategory(price.Context)
			byCategory[category] = append(byCategory[category], price)
		}
	}

	discrepancies := make([]model.Discrepancy, 0)
	for _, category := range pricingCategories {
		select {
		case <-ctx.Done():
			return discrepancies, ctx.Err()
		default:
		}

		prices := byCategory[category]
		if len(prices) < 2 {
			continue
		}

		values := make([]float64, len(prices))
		for i, price := range prices {
			values[i] = price.Value
		}

		clusters := ClusterValues(values, p.clusterTolerance)
		if len(clusters) < 2 {
			continue
		}
		low, high, spread := clusterSpread(clusters)
		if spread <= p.spreadThreshold {
			continue
		}

		occurrences := make([]model.PriceOccurrence, 0, len(clusters))
		for _, cluster := range clusters {
			first := prices[cluster.Indexes[0]]
			occurrences = append(occurrences, model.PriceOccurrence{
				URL:      first.SourceURL,
				Price:    cluster.Representative,
				Context:  first.Context,
				Language: first.Language,
				Count:    cluster.Size(),
			})
		}

		discrepancies = append(discrepancies, model.Discrepancy{
			Type: model.TypePricingInconsistency,
			Description: fmt.Sprintf(
				"Found %d different price points for %s services ranging from Rs. %.0f to Rs. %.0f",
				len(clusters), category, low, high),
			PriceRange:        fmt.Sprintf("Rs. %.0f - Rs. %.0f", low, high),
			DifferencePercent: math.Round(spread*1000) / 10,
			PriceOccurrences:  occurrences,
		})
	}
	return discrepancies, nil
}
