package extract

import (
	"testing"
)

func TestAttributeExtractor_ExtractSpeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "mbps value",
			text: "Blazing 100Mbps fiber connection",
			want: []float64{100},
		},
		{
			name: "decimal value with space",
			text: "Up to 21.6 Mbps on 4G",
			want: []float64{21.6},
		},
		{
			name: "multiple units",
			text: "Download 300 Mbps, upload 150 Mbps, burst 1 GB/s",
			want: []float64{300, 150, 1},
		},
		{
			name: "no speed",
			text: "Unlimited calls to any network",
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewAttributeExtractor()
			facts := e.ExtractSpeeds(tt.text, "u")

			if len(facts) != len(tt.want) {
				t.Fatalf("ExtractSpeeds() returned %d facts, want %d", len(facts), len(tt.want))
			}
			for i, fact := range facts {
				if fact.Value != tt.want[i] {
					t.Errorf("facts[%d].Value = %v, want %v", i, fact.Value, tt.want[i])
				}
			}
		})
	}
}

func TestAttributeExtractor_ExtractDataCaps(t *testing.T) {
	t.Parallel()

	t.Run("numeric caps", func(t *testing.T) {
		t.Parallel()

		e := NewAttributeExtractor()
		facts := e.ExtractDataCaps("400 GB standard or 1 TB anytime", "u")

		if len(facts) != 2 {
			t.Fatalf("ExtractDataCaps() returned %d facts, want 2", len(facts))
		}
		if facts[0].Value != 400 || facts[0].Unlimited {
			t.Errorf("facts[0] = %+v, want value 400", facts[0])
		}
		if facts[1].Value != 1 || facts[1].Unlimited {
			t.Errorf("facts[1] = %+v, want value 1", facts[1])
		}
	})

	t.Run("unlimited sentinel", func(t *testing.T) {
		t.Parallel()

		e := NewAttributeExtractor()
		facts := e.ExtractDataCaps("Truly unlimited data for night time", "u")

		if len(facts) == 0 {
			t.Fatal("ExtractDataCaps() returned no facts, want unlimited sentinel")
		}
		for i, fact := range facts {
			if !fact.Unlimited {
				t.Errorf("facts[%d].Unlimited = false, want true", i)
			}
			if got := fact.Key(); got != "unlimited" {
				t.Errorf("facts[%d].Key() = %q, want %q", i, got, "unlimited")
			}
		}
	})
}

func TestAttributeExtractor_ExtractFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single keyword case insensitive",
			text: "New FIBER connections available islandwide",
			want: []string{"fiber"},
		},
		{
			name: "multi word keyword",
			text: "Sign up today with free installation included",
			want: []string{"free installation"},
		},
		{
			name: "keyword reported once per page",
			text: "fiber here, fiber there, fiber everywhere",
			want: []string{"fiber"},
		},
		{
			name: "several keywords",
			text: "4G router with WiFi and unlimited PEOTV streaming",
			want: []string{"4g", "wifi", "peotv", "unlimited"},
		},
		{
			name: "no keywords",
			text: "Pay your bill online",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewAttributeExtractor()
			facts := e.ExtractFeatures(tt.text, "u")

			got := make(map[string]bool, len(facts))
			for _, fact := range facts {
				got[fact.Keyword] = true
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractFeatures() keywords = %v, want %v", got, tt.want)
			}
			for _, keyword := range tt.want {
				if !got[keyword] {
					t.Errorf("ExtractFeatures() missing keyword %q", keyword)
				}
			}
		})
	}
}
