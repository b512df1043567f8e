package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/taggregate/internal/model"
)

// Step is one stage of an aggregation run.
// Each command is a different list of steps over the same Aggregation.
//
// Design decision: Steps communicate only through the Aggregation rather than
// through return values. A step can then be reused by several commands
// without knowing which steps ran before it, and the report writers see
// everything the run produced in one place.
type Step interface {
	// Do reads what earlier steps stored in agg and adds its own result.
	Do(ctx context.Context, agg *model.Aggregation) error

	// Name identifies the step in logs and in Aggregation.PerformedSteps.
	Name() string
}

// Pipeline is an ordered list of steps sharing one logger.
//
// Design decision: The pipeline is strictly sequential. Every step depends on
// the output of the one before it (scan needs the corpus, reconcile needs the
// resolved order), so running steps concurrently would gain nothing.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. A nil logger selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps in order and stops at the first error.
// ctx is checked before every step; a running step is not interrupted.
// Completed steps are recorded in agg.PerformedSteps.
func (p *Pipeline) Execute(ctx context.Context, agg *model.Aggregation) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("aggregation cancelled", "before", step.Name(), "reason", err)
			return err
		}

		p.logger.Debug("step started", "step", step.Name())
		if err := step.Do(ctx, agg); err != nil {
			p.logger.Error("step failed", "step", step.Name(), "error", err)
			return err
		}

		agg.PerformedSteps = append(agg.PerformedSteps, step.Name())
	}

	p.logger.Debug("aggregation finished",
		"steps", len(agg.PerformedSteps),
		"tags", len(agg.Tags),
	)
	return nil
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
