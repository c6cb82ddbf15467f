package analyze

import (
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/lang"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// Corpus is the shared input for all phase analyzers: the snapshot pages
// alongside their extracted facts, indexed by URL. Page order is the
// snapshot's insertion order and is preserved so every phase walks pages
// the same way.
type Corpus struct {
	pages []model.PageRecord
	facts map[string]*model.PageFacts
	order []string
}

// NewCorpus builds a Corpus from pages and their extracted facts. Facts
// without a matching page are kept; pages without facts are still listed
// so language counters cover the whole snapshot.
func NewCorpus(pages []model.PageRecord, facts []model.PageFacts) *Corpus {
	c := &Corpus{
		pages: pages,
		facts: make(map[string]*model.PageFacts, len(facts)),
		order: make([]string, 0, len(facts)),
	}
	for i := range facts {
		f := &facts[i]
		if _, exists := c.facts[f.URL]; exists {
			continue
		}
		c.facts[f.URL] = f
		c.order = append(c.order, f.URL)
	}
	return c
}

// Pages returns the snapshot pages in insertion order.
func (c *Corpus) Pages() []model.PageRecord {
	return c.pages
}

// PageCount returns the number of pages in the snapshot.
func (c *Corpus) PageCount() int {
	return len(c.pages)
}

// FactsFor returns the extracted facts for url, or nil when the page
// produced none.
func (c *Corpus) FactsFor(url string) *model.PageFacts {
	return c.facts[url]
}

// AllFacts returns every page's facts in insertion order.
func (c *Corpus) AllFacts() []*model.PageFacts {
	out := make([]*model.PageFacts, 0, len(c.order))
	for _, url := range c.order {
		out = append(out, c.facts[url])
	}
	return out
}

// ByLanguage returns the facts of pages whose page-level verdict matches
// verdict, in insertion order.
func (c *Corpus) ByLanguage(verdict lang.Verdict) []*model.PageFacts {
	out := make([]*model.PageFacts, 0)
	for _, url := range c.order {
		if f := c.facts[url]; f.Language == string(verdict) {
			out = append(out, f)
		}
	}
	return out
}

// LanguageCounts returns the number of pages classified as English,
// Sinhala, and mixed.
func (c *Corpus) LanguageCounts() (english, sinhala, mixed int) {
	for _, url := range c.order {
		switch lang.Verdict(c.facts[url].Language) {
		case lang.VerdictEnglish:
			english++
		case lang.VerdictSinhala:
			sinhala++
		case lang.VerdictMixed:
			mixed++
		}
	}
	return english, sinhala, mixed
}
