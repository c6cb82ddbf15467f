package analyze

import (
	"context"
	"log/slog"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// Options configures threshold behavior across the phase analyzers.
type Options struct {
	// ClusterTolerance is the relative distance within which prices join
	// a cluster.
	ClusterTolerance float64

	// SpreadThreshold is the relative cluster spread above which a price
	// category is reported as inconsistent.
	SpreadThreshold float64

	// PriceListTolerance is the maximum relative difference between two
	// paired prices for the pages' price lists to count as matching.
	PriceListTolerance float64

	// ContactAlarmThreshold is the number of distinct phone numbers or
	// email addresses site-wide above which an alarm is raised.
	ContactAlarmThreshold int

	// FeatureOverlapThreshold is the Jaccard ratio above which two pages
	// pair by feature overlap.
	FeatureOverlapThreshold float64

	// BannerSimilarityThreshold is the similarity ratio below which two
	// superlative banner claims are reported as contradictory.
	BannerSimilarityThreshold float64
}

// DefaultOptions returns the standard analysis thresholds.
func DefaultOptions() Options {
	return Options{
		ClusterTolerance:          DefaultClusterTolerance,
		SpreadThreshold:           DefaultSpreadThreshold,
		PriceListTolerance:        DefaultPriceListTolerance,
		ContactAlarmThreshold:     DefaultContactAlarmThreshold,
		FeatureOverlapThreshold:   DefaultFeatureOverlapThreshold,
		BannerSimilarityThreshold: DefaultBannerSimilarityThreshold,
	}
}

// PhaseAnalyzer is one consistency check over the corpus. Each phase
// focuses on a single discrepancy family and knows nothing about the
// other phases.
type PhaseAnalyzer interface {
	// Name returns the phase name for logging.
	Name() string

	// Category returns the report category the phase's discrepancies
	// belong to.
	Category() string

	// Analyze inspects the corpus and returns the discrepancies found.
	Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error)
}

// Analyzer coordinates the phase analyzers over a corpus.
//
// Phases run sequentially in a fixed registration order, pricing first
// and terminology last, so the discrepancy sequence in the report is
// deterministic for a given snapshot. Every phase runs even when its
// bucket is empty; a zero count in the report means checked and clean,
// not skipped.
type Analyzer struct {
	phases  []PhaseAnalyzer
	options Options
	logger  *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithOptions replaces the default analysis thresholds.
func WithOptions(options Options) AnalyzerOption {
	return func(a *Analyzer) {
		a.options = options
	}
}

// WithLogger sets the logger used for phase diagnostics.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an Analyzer with the built-in phases registered in
// their fixed order.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		options: DefaultOptions(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Register(NewPricingPhase(a.options))
	a.Register(NewPackagePhase())
	a.Register(NewTranslationPhase(a.options))
	a.Register(NewContactPhase(a.options))
	a.Register(NewTerminologyPhase(a.options))
	return a
}

// Register appends a phase to the run order.
func (a *Analyzer) Register(phase PhaseAnalyzer) {
	a.phases = append(a.phases, phase)
}

// Analyze runs every phase over the corpus and returns all discrepancies
// in phase order. A failing phase is logged and skipped so the remaining
// phases still report.
func (a *Analyzer) Analyze(ctx context.Context, corpus *Corpus) ([]model.Discrepancy, error) {
	all := make([]model.Discrepancy, 0)

	for _, phase := range a.phases {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		found, err := phase.Analyze(ctx, corpus)
		if err != nil {
			a.logger.Warn("phase failed",
				slog.String("phase", phase.Name()),
				slog.String("error", err.Error()))
			continue
		}
		a.logger.Debug("phase complete",
			slog.String("phase", phase.Name()),
			slog.Int("discrepancies", len(found)))

		all = append(all, found...)
	}
	return all, nil
}
