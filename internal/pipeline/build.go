package pipeline

import (
	"log/slog"

	"github.com/nao1215/taggregate/internal/config"
	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/order"
)

// orderSteps returns the steps shared by every command that computes the
// final order.
func orderSteps(cfg *config.Config, source model.Source, logger *slog.Logger) []Step {
	reconciler := order.NewReconciler(
		order.WithAllowEmptyRanges(cfg.AllowEmptyRanges),
		order.WithReconcilerLogger(logger),
	)
	return []Step{
		NewLoadStep(cfg.SourceFiles, logger),
		NewScanStep(source),
		NewResolveStep(),
		NewReconcileStep(reconciler),
	}
}

func injectStep(cfg *config.Config, logger *slog.Logger) Step {
	return NewInjectStep(cfg.TagFile, cfg.TagField, cfg.CompiledPath, logger)
}

// NewListPipeline computes the final order without writing anything.
func NewListPipeline(cfg *config.Config, source model.Source, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(orderSteps(cfg, source, logger)...)
	return p
}

// NewAggregatePipeline computes the final order and writes the tag file.
func NewAggregatePipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	p := NewListPipeline(cfg, model.SourceAll, logger)
	p.AddStep(NewWriteTagFileStep(cfg.TagFile, cfg.TagSuffix))
	return p
}

// NewInsertPipeline injects an existing tag file into the source documents.
func NewInsertPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(cfg.SourceFiles, logger),
		injectStep(cfg, logger),
	)
	return p
}

// NewRunPipeline aggregates and then injects in a single run.
func NewRunPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	p := NewAggregatePipeline(cfg, logger)
	p.AddStep(injectStep(cfg, logger))
	return p
}
