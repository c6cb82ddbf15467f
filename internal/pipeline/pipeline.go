package pipeline

import (
	"context"
	"log/slog"

	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/analyze"
	"github.com/Mevinu-Gunaratne/Discrepancy-detection/internal/model"
)

// Audit is the state threaded through the pipeline steps. Each step fills
// in the fields later steps read.
type Audit struct {
	// Source is the snapshot file path (or a caller-supplied label).
	Source string

	// Pages is the loaded snapshot, fixed before extraction starts.
	Pages []model.PageRecord

	// Facts holds per-page extraction results in page order.
	Facts []model.PageFacts

	// Corpus is the indexed view over Pages and Facts.
	Corpus *analyze.Corpus

	// Report is the final analysis output.
	Report *model.Report
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the audit state
// accumulated by previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features
type Step interface {
	// Do executes the pipeline step.
	Do(ctx context.Context, audit *Audit) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, a default logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// Execute runs all pipeline steps in sequence. The pipeline stops on the
// first failing step: every step produces state the next one depends on,
// so continuing past a failure would only turn one clear error into a
// cascade.
//
// Cancellation is checked before each step; steps handle their own
// internal cancellation points.
func (p *Pipeline) Execute(ctx context.Context, audit *Audit) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"source", audit.Source,
		)

		if err := step.Do(ctx, audit); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", audit.Source,
				"error", err,
			)
			return err
		}
	}
	return nil
}
