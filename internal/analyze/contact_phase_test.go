package analyze

import (
	"context"
	"fmt"
	"testing"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

func contactCorpus(phones, emails []string) *Corpus {
	facts := model.PageFacts{URL: "https://slt.lk/contact", Language: "english"}
	for _, v := range phones {
		facts.Contacts = append(facts.Contacts, model.ContactFact{
			Kind: model.ContactPhone, Value: v, SourceURL: facts.URL,
		})
	}
	for _, v := range emails {
		facts.Contacts = append(facts.Contacts, model.ContactFact{
			Kind: model.ContactEmail, Value: v, SourceURL: facts.URL,
		})
	}
	return NewCorpus(nil, []model.PageFacts{facts})
}

func phoneList(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("011%07d", i))
	}
	return out
}

func TestContactPhase_FourDistinctPhonesTrigger(t *testing.T) {
	t.Parallel()

	phase := NewContactPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), contactCorpus(phoneList(4), nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1", len(got))
	}

	d := got[0]
	if d.Type != model.TypeMultiplePhoneNumbers {
		t.Errorf("Type = %q, want %q", d.Type, model.TypeMultiplePhoneNumbers)
	}
	if d.Count != 4 {
		t.Errorf("Count = %d, want 4", d.Count)
	}
	if len(d.ContactOccurrences) != 4 {
		t.Errorf("ContactOccurrences = %d, want every occurrence listed", len(d.ContactOccurrences))
	}
}

func TestContactPhase_ThreeDistinctPhonesDoNotTrigger(t *testing.T) {
	t.Parallel()

	phase := NewContactPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), contactCorpus(phoneList(3), nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0: %+v", len(got), got)
	}
}

func TestContactPhase_RepeatedValueCountsOnce(t *testing.T) {
	t.Parallel()

	phones := append(phoneList(3), phoneList(3)...)

	phase := NewContactPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), contactCorpus(phones, nil))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Analyze() = %d discrepancies, want 0 for repeated values", len(got))
	}
}

func TestContactPhase_EmailAlarm(t *testing.T) {
	t.Parallel()

	emails := []string{"a@slt.lk", "b@slt.lk", "c@slt.lk", "d@slt.lk"}

	phase := NewContactPhase(DefaultOptions())
	got, err := phase.Analyze(context.Background(), contactCorpus(nil, emails))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Analyze() = %d discrepancies, want 1", len(got))
	}
	if got[0].Type != model.TypeMultipleEmailAddresses {
		t.Errorf("Type = %q, want %q", got[0].Type, model.TypeMultipleEmailAddresses)
	}
}
