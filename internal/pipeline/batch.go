package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// ErrNoSources is returned when a batch run is started without any
// snapshot paths.
var ErrNoSources = errors.New("pipeline: no snapshot sources given")

// PipelineFactory builds a fresh pipeline for one snapshot source.
// Each batch entry gets its own pipeline so steps never share state.
type PipelineFactory func() *Pipeline

// BatchProcessor runs a pipeline per snapshot file with bounded
// concurrency. Results come back in source order regardless of which
// audit finishes first.
type BatchProcessor struct {
	factory     PipelineFactory
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchConcurrency bounds the number of audits running at once.
func WithBatchConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets the logger used for per-source progress.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchProcessor creates a batch processor around a pipeline factory.
func NewBatchProcessor(factory PipelineFactory, opts ...BatchOption) *BatchProcessor {
	b := &BatchProcessor{
		factory:     factory,
		concurrency: 4,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run audits every snapshot source and returns one report per source,
// in the order the sources were given. The first failing audit cancels
// the rest.
func (b *BatchProcessor) Run(ctx context.Context, sources []string) ([]*model.Report, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	reports := make([]*model.Report, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			b.logger.Debug("starting audit", "source", source)

			audit := &Audit{Source: source}
			if err := b.factory().Execute(ctx, audit); err != nil {
				return err
			}

			reports[i] = audit.Report
			b.logger.Debug("audit complete",
				"source", source,
				"discrepancies", audit.Report.TotalDiscrepancies())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
