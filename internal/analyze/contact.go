package analyze

import (
	"context"
	"fmt"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// DefaultContactAlarmThreshold is the number of distinct contact values of
// one kind above which the site is flagged. A handful of hotlines is
// normal; more usually means stale pages left behind after a number
// change.
const DefaultContactAlarmThreshold = 3

// ContactPhase counts distinct phone numbers and email addresses across
// the whole snapshot and raises an alarm when either kind exceeds the
// threshold.
type ContactPhase struct {
	alarmThreshold int
}

// NewContactPhase creates the contact phase with the given threshold.
func NewContactPhase(options Options) *ContactPhase {
	return &ContactPhase{alarmThreshold: options.ContactAlarmThreshold}
}

// Name returns the phase name.
func (p *ContactPhase) Name() string {
	return "contact"
}

// Category returns the report category.
func (p *ContactPhase) Category() string {
	return model.CategoryContact
}

// Analyze checks site-wide contact uniqueness. Distinctness is over
// normalized values, so one number written with and without spaces counts
// once.
func (p *ContactPhase) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	phones := newContactTally()
	emails := newContactTally()

	for _, facts := range corpus.AllFacts() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, contact := range facts.Contacts {
			switch contact.Kind {
			case model.ContactPhone:
				phones.add(contact)
			case model.ContactEmail:
				emails.add(contact)
			}
		}
	}

	discrepancies := make([]model.Discrepancy, 0, 2)
	if len(phones.values) > p.alarmThreshold {
		discrepancies = append(discrepancies, model.Discrepancy{
			Type: model.TypeMultiplePhoneNumbers,
			Description: fmt.Sprintf(
				"Found %d distinct phone numbers across the site", len(phones.values)),
			Count:              len(phones.values),
			Values:             phones.values,
			ContactOccurrences: phones.occurrences,
		})
	}
	if len(emails.values) > p.alarmThreshold {
		discrepancies = append(discrepancies, model.Discrepancy{
			Type: model.TypeMultipleEmailAddresses,
			Description: fmt.Sprintf(
				"Found %d distinct email addresses across the site", len(emails.values)),
			Count:              len(emails.values),
			Values:             emails.values,
			ContactOccurrences: emails.occurrences,
		})
	}
	return discrepancies, nil
}

// contactTally accumulates distinct values in first-seen order alongside
// every occurrence.
type contactTally struct {
	seen        map[string]bool
	values      []string
	occurrences []model.ContactOccurrence
}

func newContactTally() *contactTally {
	return &contactTally{seen: make(map[string]bool)}
}

func (t *contactTally) add(contact model.ContactFact) {
	if !t.seen[contact.Value] {
		t.seen[contact.Value] = true
		t.values = append(t.values, contact.Value)
	}
	t.occurrences = append(t.occurrences, model.ContactOccurrence{
		URL:     contact.SourceURL,
		Value:   contact.Value,
		Context: contact.Context,
	})
}
