package analyze

import (
	"context"
	"testing"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

func pricedCorpus(context string, values ...float64) *Corpus {
	facts := model.PageFacts{URL: "https://slt.lk/fiber", Language: "english"}
	for _, v := range values {
		facts.Prices = append(facts.Prices, model.PriceFact{
			Value:     v,
			Context:   context,
			SourceURL: facts.URL,
			Language:  "english",
		})
	}
	return NewCorpus(nil, []model.PageFacts{facts})
}

func TestPricingPhase_WithinToleranceDoesNotTrigger(t *testing.T) {
	t.Parallel()

	phase := NewPricingPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), pricedCorpus("fiber plan", 1000, 1030, 1050))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0: %+v", len(got), got)
	}
}

func TestPricingPhase_SpreadTriggers(t *testing.T) {
	t.Parallel()

	phase := NewPricingPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), pricedCorpus("fiber plan", 1000, 1000, 1000, 1500, 1500))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1", len(got))
	}

	d := got[0]
	if d.Type != model.TypePricingInconsistency {
		t.Errorf("Type = %q, want %q", d.Type, model.TypePricingInconsistency)
	}
	if d.PriceRange != "Rs. 1000 - Rs. 1500" {
		t.Errorf("PriceRange = %q, want %q", d.PriceRange, "Rs. 1000 - Rs. 1500")
	}
	if d.DifferencePercent != 50.0 {
		t.Errorf("DifferencePercent = %v, want 50.0", d.DifferencePercent)
	}
	if len(d.PriceOccurrences) != 2 {
		t.Fatalf("PriceOccurrences = %d, want 2", len(d.PriceOccurrences))
	}
	if d.PriceOccurrences[0].Count != 3 || d.PriceOccurrences[0].Price != 1000 {
		t.Errorf("occurrence[0] = %+v, want price 1000 seen 3 times", d.PriceOccurrences[0])
	}
	if d.PriceOccurrences[1].Count != 2 || d.PriceOccurrences[1].Price != 1500 {
		t.Errorf("occurrence[1] = %+v, want price 1500 seen 2 times", d.PriceOccurrences[1])
	}
}

func TestPricingPhase_CategoriesReportedSeparately(t *testing.T) {
	t.Parallel()

	facts := model.PageFacts{URL: "https://slt.lk/packages", Language: "english"}
	for _, p := range []struct {
		value   float64
		context string
	}{
		{1000, "fiber plan"},
		{1500, "fiber plan"},
		{2000, "adsl megaline"},
		{2000, "adsl megaline"},
	} {
		facts.Prices = append(facts.Prices, model.PriceFact{
			Value: p.value, Context: p.context, SourceURL: facts.URL,
		})
	}

	phase := NewPricingPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), NewCorpus(nil, []model.PageFacts{facts}))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1 for the fiber category only", len(got))
	}
}

func TestPricingPhase_SingleClusterManyMembersDoesNotTrigger(t *testing.T) {
	t.Parallel()

	phase := NewPricingPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(),
		pricedCorpus("peotv bundle", 900, 900, 900, 900, 900, 900, 950))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0", len(got))
	}
}
