package analyze

import (
	"context"
	"testing"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

func TestTerminologyPhase_SpellingDrift(t *testing.T) {
	t.Parallel()

	pages := []model.PageRecord{
		{
			URL: "https://slt.lk/a",
			Sections: map[string][]model.SectionItem{
				"packages": {{Text: "PEO TV"}},
			},
		},
		{
			URL: "https://slt.lk/b",
			Sections: map[string][]model.SectionItem{
				"packages": {{Text: "Peo tv"}},
			},
		},
	}
	corpus := NewCorpus(pages, nil)

	phase := NewTerminologyPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), corpus)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1", len(got))
	}

	d := got[0]
	if d.Type != model.TypeInconsistentTerminology {
		t.Errorf("Type = %q, want %q", d.Type, model.TypeInconsistentTerminology)
	}
	if d.Term != "peo tv" {
		t.Errorf("Term = %q, want %q", d.Term, "peo tv")
	}
	if len(d.Variations) != 2 {
		t.Errorf("Variations = %v, want both spellings", d.Variations)
	}
	if len(d.TermOccurrences) != 2 {
		t.Errorf("TermOccurrences = %d, want 2", len(d.TermOccurrences))
	}
}

func TestTerminologyPhase_ConsistentSpellingStaysSilent(t *testing.T) {
	t.Parallel()

	pages := []model.PageRecord{
		{
			URL: "https://slt.lk/a",
			Sections: map[string][]model.SectionItem{
				"packages": {{Text: "PEO TV"}, {Text: "Fiber"}},
			},
		},
		{
			URL: "https://slt.lk/b",
			Sections: map[string][]model.SectionItem{
				"packages": {{Text: "PEO TV"}},
			},
		},
	}

	phase := NewTerminologyPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), NewCorpus(pages, nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0: %+v", len(got), got)
	}
}

func TestTerminologyPhase_ContradictoryBanners(t *testing.T) {
	t.Parallel()

	pages := []model.PageRecord{
		{
			URL:      "https://slt.lk/home",
			OCRTexts: []string{"The fastest fiber network in Sri Lanka"},
		},
		{
			URL:      "https://slt.lk/mobile",
			OCRTexts: []string{"The best 4G coverage islandwide"},
		},
	}

	phase := NewTerminologyPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), NewCorpus(pages, nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1", len(got))
	}

	d := got[0]
	if d.Type != model.TypeInconsistentBannerText {
		t.Errorf("Type = %q, want %q", d.Type, model.TypeInconsistentBannerText)
	}
	if d.URL1 != "https://slt.lk/home" || d.URL2 != "https://slt.lk/mobile" {
		t.Errorf("URLs = %q, %q", d.URL1, d.URL2)
	}
}

func TestTerminologyPhase_SameSloganRestated(t *testing.T) {
	t.Parallel()

	pages := []model.PageRecord{
		{URL: "https://slt.lk/a", OCRTexts: []string{"The fastest fiber network"}},
		{URL: "https://slt.lk/b", OCRTexts: []string{"the FASTEST  fiber network"}},
	}

	phase := NewTerminologyPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), NewCorpus(pages, nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0: %+v", len(got), got)
	}
}

func TestTerminologyPhase_PlainBannersAreIgnored(t *testing.T) {
	t.Parallel()

	pages := []model.PageRecord{
		{URL: "https://slt.lk/a", OCRTexts: []string{"Pay your bill online"}},
		{URL: "https://slt.lk/b", OCRTexts: []string{"New connection offers"}},
	}

	phase := NewTerminologyPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), NewCorpus(pages, nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0: %+v", len(got), got)
	}
}
