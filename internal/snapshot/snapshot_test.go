package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSnapshot = `{
  "https://slt.lk/si/fiber": {
    "title": "ෆයිබර් පැකේජ",
    "text": "රු. 2,500 මාසිකව",
    "ocr_images": [{"text": "The fastest fiber network"}]
  },
  "https://slt.lk/en/fiber": {
    "title": "Fiber Packages",
    "text": "Rs. 2,500 per month with free installation",
    "sections": {
      "packages": [
        {"text": "PEO TV", "language": "english"},
        "Plain string item"
      ]
    }
  }
}`

func TestParse(t *testing.T) {
	t.Parallel()

	records, err := Parse(strings.NewReader(sampleSnapshot))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Parse() = %d records, want 2", len(records))
	}

	// Pages come back sorted by URL regardless of document order.
	if records[0].URL != "https://slt.lk/en/fiber" {
		t.Errorf("records[0].URL = %q, want the /en/ page first", records[0].URL)
	}

	en := records[0]
	if en.Title != "Fiber Packages" {
		t.Errorf("Title = %q", en.Title)
	}
	items := en.Sections["packages"]
	if len(items) != 2 {
		t.Fatalf("sections = %d items, want 2", len(items))
	}
	if items[0].Text != "PEO TV" || items[0].Language != "english" {
		t.Errorf("items[0] = %+v, want tagged PEO TV", items[0])
	}
	if items[1].Text != "Plain string item" || items[1].Language != "" {
		t.Errorf("items[1] = %+v, want untagged plain string", items[1])
	}

	si := records[1]
	if len(si.OCRTexts) != 1 || si.OCRTexts[0] != "The fastest fiber network" {
		t.Errorf("OCRTexts = %v", si.OCRTexts)
	}
	if si.Sections != nil {
		t.Errorf("Sections = %v, want nil for absent field", si.Sections)
	}
}

func TestParse_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	records, err := Parse(strings.NewReader(`{"https://slt.lk/": {}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Parse() = %d records, want 1", len(records))
	}

	r := records[0]
	if r.Title != "" || r.BodyText != "" || r.Sections != nil || r.OCRTexts != nil {
		t.Errorf("record = %+v, want all optional fields empty", r)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	if _, err := Parse(strings.NewReader(`{}`)); !errors.Is(err, ErrEmptySnapshot) {
		t.Errorf("Parse() error = %v, want ErrEmptySnapshot", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := Parse(strings.NewReader(`{"a": `)); err == nil {
		t.Error("Parse() error = nil, want decode error")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0o600); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Load() = %d records, want 2", len(records))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load() error = nil, want open error")
	}
}
