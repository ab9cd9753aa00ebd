package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/imgscan/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the scan state
// accumulated by previous steps.
type Step interface {
	// Do executes the pipeline step.
	// Per-candidate problems are recorded in the scan and return nil;
	// a returned error aborts the run.
	Do(ctx context.Context, scan *model.Scan) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, a default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
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

// Execute runs all steps in sequence and stops at the first error.
// Cancellation is checked before each step; steps that loop over
// candidates also check it between candidates.
// FinishedAt is set on every return path.
func (p *Pipeline) Execute(ctx context.Context, scan *model.Scan) error {
	defer func() {
		scan.FinishedAt = time.Now()
	}()

	p.logger.Debug("pipeline started",
		"page", scan.PageURL,
		"steps", p.stepNames(),
	)

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
			"page", scan.PageURL,
		)

		if err := step.Do(ctx, scan); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"page", scan.PageURL,
				"error", err,
			)
			return err
		}
	}
	return nil
}

// stepNames returns the names of all steps in execution order.
func (p *Pipeline) stepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
