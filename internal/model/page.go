package model

import "strings"

// PageRecord is an immutable snapshot of a single crawled page.
// It is the sole input to the analysis core; the caller (crawler or
// snapshot loader) owns it and the core never mutates it.
//
// Design decision: We keep the record deliberately flat and text-only.
// How the text was obtained (DOM traversal, OCR, headless rendering) is
// the caller's concern; the analysis contracts depend only on the text
// fields being populated. Missing optional fields degrade to empty
// collections, never to errors.
type PageRecord struct {
	// URL uniquely identifies the page within one run.
	URL string `json:"url"`

	// Title is the page title. May be empty.
	Title string `json:"title,omitempty"`

	// BodyText is the visible text content of the page with markup removed.
	BodyText string `json:"body_text,omitempty"`

	// Sections maps a section name (e.g. "headings", "paragraphs") to its
	// ordered text items. Sections are optional pre-split structure from
	// the scraper; when absent the page is analyzed as one flat text.
	Sections map[string][]SectionItem `json:"sections,omitempty"`

	// OCRTexts holds auxiliary text blocks recovered from banners and
	// images by the scraper's OCR stage. Treated as part of the page text.
	OCRTexts []string `json:"ocr_texts,omitempty"`
}

// SectionItem is one text item inside a pre-split page section.
type SectionItem struct {
	// Text is the item's text content.
	Text string `json:"text"`

	// Language is the scraper's per-item language tag, if any.
	// Empty means untagged; the classifier is consulted instead.
	Language string `json:"language,omitempty"`
}

// AnalysisText concatenates title, body text, and all OCR blocks into the
// single string the extractors run over. Section items are not included
// here: sections duplicate body text in the scraped data and including
// both would double-count facts.
func (p PageRecord) AnalysisText() string {
	parts := make([]string, 0, 2+len(p.OCRTexts))
	if p.Title != "" {
		parts = append(parts, p.Title)
	}
	if p.BodyText != "" {
		parts = append(parts, p.BodyText)
	}
	for _, ocr := range p.OCRTexts {
		if ocr != "" {
			parts = append(parts, ocr)
		}
	}
	return strings.Join(parts, " ")
}

// HasSections reports whether the scraper supplied pre-split sections.
func (p PageRecord) HasSections() bool {
	return len(p.Sections) > 0
}
