package analyze

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// PackagePhase flags pages advertising the same package with different
// speed or data-allowance figures.
//
// The sorted, hyphen-joined feature-keyword list acts as the package
// identity: pages listing identical feature sets are expected to agree on
// speed and data cap. Unlike prices, attribute values are compared for
// exact distinctness with no tolerance clustering, since an advertised
// speed should be stated exactly.
type PackagePhase struct{}

// NewPackagePhase creates the package-details phase.
func NewPackagePhase() *PackagePhase {
	return &PackagePhase{}
}

// Name returns the phase name.
func (p *PackagePhase) Name() string {
	return "packages"
}

// Category returns the report category.
func (p *PackagePhase) Category() string {
	return model.CategoryPackage
}

// Analyze groups pages by feature-set key and reports groups whose member
// pages disagree on speed values or data-cap forms. Groups are visited in
// first-seen order.
func (p *PackagePhase) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	groups := make(map[string][]*model.PageFacts)
	keyOrder := make([]string, 0)

	for _, facts := range corpus.AllFacts() {
		key := featureSetKey(facts)
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], facts)
	}

	discrepancies := make([]model.Discrepancy, 0)
	for _, key := range keyOrder {
		select {
		case <-ctx.Done():
			return discrepancies, ctx.Err()
		default:
		}

		members := groups[key]
		if len(members) < 2 {
			continue
		}

		speeds := distinctSpeeds(members)
		if len(speeds) > 1 {
			discrepancies = append(discrepancies, model.Discrepancy{
				Type: model.TypeSpeedInconsistency,
				Description: fmt.Sprintf(
					"Packages advertising %q list %d different speeds", key, len(speeds)),
				SpeedVariations: speeds,
				Packages:        packageSummaries(members),
			})
		}

		caps := distinctDataCaps(members)
		if len(caps) > 1 {
			discrepancies = append(discrepancies, model.Discrepancy{
				Type: model.TypeDataLimitInconsistency,
				Description: fmt.Sprintf(
					"Packages advertising %q list %d different data allowances", key, len(caps)),
				DataCapVariations: caps,
				Packages:          packageSummaries(members),
			})
		}
	}
	return discrepancies, nil
}

// featureSetKey is the sorted, hyphen-joined feature list. Pages with no
// features return "" and carry no package identity.
func featureSetKey(facts *model.PageFacts) string {
	if len(facts.Features) == 0 {
		return ""
	}
	keywords := make([]string, 0, len(facts.Features))
	for keyword := range facts.FeatureSet() {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return strings.Join(keywords, "-")
}

// distinctSpeeds returns the group's distinct speed values in first-seen
// order.
func distinctSpeeds(members []*model.PageFacts) []float64 {
	seen := make(map[float64]bool)
	out := make([]float64, 0)
	for _, facts := range members {
		for _, speed := range facts.Speeds {
			if seen[speed.Value] {
				continue
			}
			seen[speed.Value] = true
			out = append(out, speed.Value)
		}
	}
	return out
}

// distinctDataCaps returns the group's distinct data-cap string forms in
// first-seen order. The unlimited sentinel is its own form, distinct from
// every numeric value.
func distinctDataCaps(members []*model.PageFacts) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, facts := range members {
		for _, allowance := range facts.DataCaps {
			key := allowance.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

func packageSummaries(members []*model.PageFacts) []model.PackageSummary {
	summaries := make([]model.PackageSummary, 0, len(members))
	for _, facts := range members {
		summary := model.PackageSummary{
			URL:      facts.URL,
			Language: facts.Language,
		}
		for _, speed := range facts.Speeds {
			summary.Speeds = append(summary.Speeds, speed.Value)
		}
		for _, allowance := range facts.DataCaps {
			summary.DataCaps = append(summary.DataCaps, allowance.Key())
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
