package main

import (
	"testing"
	"time"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/database"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()

	if cmd.Use != "compare [snapshot-source]" {
		t.Errorf("unexpected Use: got %q", cmd.Use)
	}

	flagsWithShort := map[string]string{
		"list":         "l",
		"list-sources": "L",
		"with-id":      "i",
		"json":         "j",
	}
	for flag, shorthand := range flagsWithShort {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("expected flag %q to exist", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
		}
	}
}

func TestCompareReports(t *testing.T) {
	t.Parallel()

	previous := model.NewReport("snapshot.json")
	previous.AddDiscrepancy(model.Discrepancy{
		Type:     model.TypePricingInconsistency,
		Category: "fiber",
	})
	previous.AddDiscrepancy(model.Discrepancy{
		Type: model.TypeMissingSinhalaTranslation,
		URL:  "https://example.lk/en/promo",
	})

	current := model.NewReport("snapshot.json")
	current.AddDiscrepancy(model.Discrepancy{
		Type:     model.TypePricingInconsistency,
		Category: "fiber",
	})
	current.AddDiscrepancy(model.Discrepancy{
		Type:  model.TypeMultiplePhoneNumbers,
		Count: 5,
	})

	result := compareReports(previous, current)

	if len(result.NewFindings) != 1 {
		t.Fatalf("NewFindings = %d, want 1", len(result.NewFindings))
	}
	if result.NewFindings[0].Type != model.TypeMultiplePhoneNumbers {
		t.Errorf("new finding type = %q, want %q",
			result.NewFindings[0].Type, model.TypeMultiplePhoneNumbers)
	}

	if len(result.ResolvedFindings) != 1 {
		t.Fatalf("ResolvedFindings = %d, want 1", len(result.ResolvedFindings))
	}
	if result.ResolvedFindings[0].Type != model.TypeMissingSinhalaTranslation {
		t.Errorf("resolved finding type = %q, want %q",
			result.ResolvedFindings[0].Type, model.TypeMissingSinhalaTranslation)
	}

	if result.UnchangedCount != 1 {
		t.Errorf("UnchangedCount = %d, want 1", result.UnchangedCount)
	}
}

func TestCalculateChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		previous AuditMetadata
		current  AuditMetadata
		want     string
	}{
		{
			name:     "fewer high findings improves",
			previous: AuditMetadata{HighCount: 3, MediumCount: 1},
			current:  AuditMetadata{HighCount: 1, MediumCount: 1},
			want:     directionImproved,
		},
		{
			name:     "new high finding worsens",
			previous: AuditMetadata{MediumCount: 2},
			current:  AuditMetadata{HighCount: 1, MediumCount: 2},
			want:     directionWorsened,
		},
		{
			name:     "identical counts unchanged",
			previous: AuditMetadata{HighCount: 1, InfoCount: 4},
			current:  AuditMetadata{HighCount: 1, InfoCount: 4},
			want:     directionUnchanged,
		},
		{
			name:     "one high outweighs several info",
			previous: AuditMetadata{InfoCount: 10},
			current:  AuditMetadata{HighCount: 1},
			want:     directionWorsened,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			change := calculateChange(tt.previous, tt.current)
			if change.Direction != tt.want {
				t.Errorf("Direction = %q, want %q", change.Direction, tt.want)
			}
		})
	}
}

func TestFindingKeyIgnoresCounts(t *testing.T) {
	t.Parallel()

	a := model.Discrepancy{Type: model.TypeMultiplePhoneNumbers, Count: 4}
	b := model.Discrepancy{Type: model.TypeMultiplePhoneNumbers, Count: 6}

	if findingKey(a) != findingKey(b) {
		t.Error("findings differing only in count should share a key")
	}
}

func TestFormatDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delta int
		want  string
	}{
		{delta: 3, want: "+3"},
		{delta: -2, want: "-2"},
		{delta: 0, want: "0"},
	}

	for _, tt := range tests {
		if got := formatDelta(tt.delta); got != tt.want {
			t.Errorf("formatDelta(%d) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestFormatFindingSummary(t *testing.T) {
	t.Parallel()

	empty := database.ReportMetadata{GeneratedAt: time.Now()}
	if got := formatFindingSummary(empty); got != noFindingsMessage {
		t.Errorf("formatFindingSummary(empty) = %q, want %q", got, noFindingsMessage)
	}

	meta := database.ReportMetadata{Total: 5, HighCount: 2, MediumCount: 1}
	got := formatFindingSummary(meta)
	if got != "total 5 (H:2 M:1 other:2)" {
		t.Errorf("formatFindingSummary() = %q, want %q", got, "total 5 (H:2 M:1 other:2)")
	}
}
