// Package snapshot loads crawled site snapshots from disk.
//
// A snapshot is a JSON document keyed by page URL, produced by the
// crawler. Each entry holds the page title, the flattened body text,
// optional pre-split sections with per-item language tags, and optional
// OCR text blocks lifted from banner images. The loader tolerates absent
// optional fields by treating them as empty, and section items written as
// bare strings by treating them as untagged text.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// ErrEmptySnapshot is returned when a snapshot contains no pages.
var ErrEmptySnapshot = errors.New("snapshot contains no pages")

// pageEntry is the on-disk shape of one page.
type pageEntry struct {
	Title     string                    `json:"title"`
	Text      string                    `json:"text"`
	Sections  map[string][]sectionEntry `json:"sections"`
	OCRImages []ocrEntry                `json:"ocr_images"`
}

type ocrEntry struct {
	Text string `json:"text"`
}

// sectionEntry accepts both the tagged object form and a bare string.
type sectionEntry struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (s *sectionEntry) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Text = plain
		s.Language = ""
		return nil
	}

	type tagged sectionEntry
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*s = sectionEntry(t)
	return nil
}

// Load reads and parses the snapshot file at path.
func Load(path string) ([]model.PageRecord, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided snapshot path is intentional
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return records, nil
}

// Parse decodes a snapshot document from r. Pages are returned sorted by
// URL: JSON object key order is not preserved by decoding, and downstream
// clustering is order-sensitive, so the loader fixes a deterministic
// order here.
func Parse(r io.Reader) ([]model.PageRecord, error) {
	var doc map[string]pageEntry
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, ErrEmptySnapshot
	}

	urls := make([]string, 0, len(doc))
	for url := range doc {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	records := make([]model.PageRecord, 0, len(urls))
	for _, url := range urls {
		records = append(records, toRecord(url, doc[url]))
	}
	return records, nil
}

func toRecord(url string, entry pageEntry) model.PageRecord {
	record := model.PageRecord{
		URL:      url,
		Title:    entry.Title,
		BodyText: entry.Text,
	}

	if len(entry.Sections) > 0 {
		record.Sections = make(map[string][]model.SectionItem, len(entry.Sections))
		for name, items := range entry.Sections {
			converted := make([]model.SectionItem, 0, len(items))
			for _, item := range items {
				converted = append(converted, model.SectionItem{
					Text:     item.Text,
					Language: item.Language,
				})
			}
			record.Sections[name] = converted
		}
	}

	for _, img := range entry.OCRImages {
		if img.Text == "" {
			continue
		}
		record.OCRTexts = append(record.OCRTexts, img.Text)
	}
	return record
}
