package extract

import (
	"testing"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

func TestContactExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantPhones []string
		wantEmails []string
	}{
		{
			name:       "country code form with spaces",
			text:       "Hotline +94 11 2021000 open all day",
			wantPhones: []string{"+94112021000"},
		},
		{
			name:       "country code at start of text",
			text:       "+94 11 2021000",
			wantPhones: []string{"+94112021000"},
		},
		{
			name: "trunk form glued to another digit does not match",
			text: "ref 90112021000",
		},
		{
			name:       "trunk prefix form",
			text:       "Call 011 2021000 for support",
			wantPhones: []string{"0112021000"},
		},
		{
			name:       "hyphenated area code",
			text:       "Fax 011-2440001",
			wantPhones: []string{"0112440001"},
		},
		{
			name:       "email lowercased",
			text:       "Write to Support@SLT.lk anytime",
			wantEmails: []string{"support@slt.lk"},
		},
		{
			name:       "mixed contacts",
			text:       "Reach us on 0112021000 or info@example.lk",
			wantPhones: []string{"0112021000"},
			wantEmails: []string{"info@example.lk"},
		},
		{
			name: "no contacts",
			text: "Packages start from Rs. 1,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewContactExtractor()
			facts := e.Extract(tt.text, "u")

			var phones, emails []string
			for _, fact := range facts {
				switch fact.Kind {
				case model.ContactPhone:
					phones = append(phones, fact.Value)
				case model.ContactEmail:
					emails = append(emails, fact.Value)
				}
			}

			if len(phones) != len(tt.wantPhones) {
				t.Fatalf("phones = %v, want %v", phones, tt.wantPhones)
			}
			for i, want := range tt.wantPhones {
				if phones[i] != want {
					t.Errorf("phones[%d] = %q, want %q", i, phones[i], want)
				}
			}
			if len(emails) != len(tt.wantEmails) {
				t.Fatalf("emails = %v, want %v", emails, tt.wantEmails)
			}
			for i, want := range tt.wantEmails {
				if emails[i] != want {
					t.Errorf("emails[%d] = %q, want %q", i, emails[i], want)
				}
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"+94 11 2021000", "+94112021000"},
		{"011-2440001", "0112440001"},
		{"0112021000", "0112021000"},
	}

	for _, tt := range tests {
		if got := normalizePhone(tt.raw); got != tt.want {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
