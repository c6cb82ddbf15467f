package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/analyze"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/extract"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/lang"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/snapshot"
)

// LoadStep reads the snapshot file named by the audit source into page
// records.
type LoadStep struct{}

// NewLoadStep creates the snapshot loading step.
func NewLoadStep() *LoadStep {
	return &LoadStep{}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads the snapshot. Pages come back sorted by URL, which fixes the
// extraction and clustering order for the whole run.
func (s *LoadStep) Do(_ context.Context, audit *Audit) error {
	pages, err := snapshot.Load(audit.Source)
	if err != nil {
		return err
	}
	audit.Pages = pages
	return nil
}

// ExtractStep runs every fact extractor over every page.
//
// Pages are processed concurrently: extraction is per-page pure, so the
// only ordering requirement is that results merge back in page order.
// Each goroutine writes to its own index of a pre-allocated slice, which
// keeps the merge deterministic without locks.
type ExtractStep struct {
	classifier *lang.Classifier
	prices     *extract.PriceExtractor
	attributes *extract.AttributeExtractor
	contacts   *extract.ContactExtractor

	// concurrency bounds the number of pages extracted at once.
	concurrency int
}

// ExtractOption configures an ExtractStep.
type ExtractOption func(*ExtractStep)

// WithClassifier replaces the default language classifier.
func WithClassifier(classifier *lang.Classifier) ExtractOption {
	return func(s *ExtractStep) {
		if classifier != nil {
			s.classifier = classifier
		}
	}
}

// WithContextWidth sets the context window half-width for all extractors.
func WithContextWidth(width int) ExtractOption {
	return func(s *ExtractStep) {
		if width > 0 {
			s.prices = extract.NewPriceExtractor(extract.WithPriceContextWidth(width))
			s.attributes = extract.NewAttributeExtractor(extract.WithAttributeContextWidth(width))
			s.contacts = extract.NewContactExtractor(extract.WithContactContextWidth(width))
		}
	}
}

// WithExtractConcurrency bounds the number of pages extracted at once.
func WithExtractConcurrency(n int) ExtractOption {
	return func(s *ExtractStep) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewExtractStep creates the extraction step with default extractors.
func NewExtractStep(opts ...ExtractOption) *ExtractStep {
	s := &ExtractStep{
		classifier:  lang.NewClassifier(),
		prices:      extract.NewPriceExtractor(),
		attributes:  extract.NewAttributeExtractor(),
		contacts:    extract.NewContactExtractor(),
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do extracts facts from every page.
func (s *ExtractStep) Do(ctx context.Context, audit *Audit) error {
	facts := make([]model.PageFacts, len(audit.Pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, page := range audit.Pages {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			facts[i] = s.extractPage(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	audit.Facts = facts
	return nil
}

// extractPage runs all extractors over one page's analysis text and tags
// each fact with the language verdict of its own context window.
func (s *ExtractStep) extractPage(page model.PageRecord) model.PageFacts {
	text := page.AnalysisText()

	facts := model.PageFacts{
		URL:      page.URL,
		Language: string(s.classifier.ClassifyPage(text)),
	}

	facts.Prices = s.prices.Extract(text, page.URL)
	for i := range facts.Prices {
		facts.Prices[i].Language = string(s.classifier.ClassifySnippet(facts.Prices[i].Context))
	}

	facts.Speeds = s.attributes.ExtractSpeeds(text, page.URL)
	facts.DataCaps = s.attributes.ExtractDataCaps(text, page.URL)
	facts.Features = s.attributes.ExtractFeatures(text, page.URL)
	facts.Contacts = s.contacts.Extract(text, page.URL)
	return facts
}

// AnalyzeStep builds the corpus, runs the phase analyzers, and assembles
// the report.
type AnalyzeStep struct {
	options analyze.Options
	logger  *slog.Logger
}

// AnalyzeOption configures an AnalyzeStep.
type AnalyzeOption func(*AnalyzeStep)

// WithAnalyzeOptions replaces the default analysis thresholds.
func WithAnalyzeOptions(options analyze.Options) AnalyzeOption {
	return func(s *AnalyzeStep) {
		s.options = options
	}
}

// WithAnalyzeLogger sets the logger passed to the analyzer.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeOption {
	return func(s *AnalyzeStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAnalyzeStep creates the analysis step.
func NewAnalyzeStep(opts ...AnalyzeOption) *AnalyzeStep {
	s := &AnalyzeStep{
		options: analyze.DefaultOptions(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do analyzes the corpus and fills in the report.
func (s *AnalyzeStep) Do(ctx context.Context, audit *Audit) error {
	audit.Corpus = analyze.NewCorpus(audit.Pages, audit.Facts)

	analyzer := analyze.NewAnalyzer(
		analyze.WithOptions(s.options),
		analyze.WithLogger(s.logger),
	)
	discrepancies, err := analyzer.Analyze(ctx, audit.Corpus)
	if err != nil {
		return err
	}

	report := model.NewReport(audit.Source)
	report.PagesAnalyzed = audit.Corpus.PageCount()
	report.EnglishPages, report.SinhalaPages, report.MixedPages = audit.Corpus.LanguageCounts()
	for _, d := range discrepancies {
		report.AddDiscrepancy(d)
	}

	audit.Report = report
	return nil
}
