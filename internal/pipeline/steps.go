package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/taggregate/internal/corpus"
	"github.com/nao1215/taggregate/internal/header"
	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/order"
	"github.com/nao1215/taggregate/internal/tagfile"
)

// LoadStep reads the source documents into the aggregation.
type LoadStep struct {
	paths  []string
	logger *slog.Logger
}

// NewLoadStep creates a step that loads paths in order.
func NewLoadStep(paths []string, logger *slog.Logger) *LoadStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStep{paths: paths, logger: logger}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads every document and records a per-document summary.
func (s *LoadStep) Do(_ context.Context, agg *model.Aggregation) error {
	c, err := corpus.Load(s.paths)
	if err != nil {
		return err
	}
	agg.Corpus = c

	agg.Documents = agg.Documents[:0]
	for _, doc := range c.Documents() {
		summary := model.Summarize(doc)
		s.logger.Debug("document loaded",
			"path", summary.Path,
			"header", summary.HasHeader,
			"tags", summary.Tags,
			"ranges", summary.Ranges,
		)
		agg.Documents = append(agg.Documents, summary)
	}
	return nil
}

// ScanStep collects the occurrence list and the declared ranges.
//
// The source selects which occurrences are ordered. Ranges are always taken
// from the whole text.
type ScanStep struct {
	source model.Source
}

// NewScanStep creates a scan step for the given occurrence source.
func NewScanStep(source model.Source) *ScanStep {
	if source == "" {
		source = model.SourceAll
	}
	return &ScanStep{source: source}
}

// Name returns the step name.
func (s *ScanStep) Name() string {
	return "scan"
}

// Do scans the loaded corpus.
func (s *ScanStep) Do(_ context.Context, agg *model.Aggregation) error {
	if agg.Corpus == nil {
		return errNoCorpus
	}

	switch s.source {
	case model.SourceText:
		agg.Occurrences = agg.Corpus.TextMentions()
	case model.SourceCaptions:
		agg.Occurrences = agg.Corpus.ImageTags()
	default:
		agg.Occurrences = agg.Corpus.Tags()
	}
	agg.Source = s.source
	agg.Ranges = agg.Corpus.Ranges()
	return nil
}

// ResolveStep deduplicates the occurrences into the canonical sequence.
type ResolveStep struct{}

// NewResolveStep creates a resolve step. The ordering mode is taken from
// the aggregation.
func NewResolveStep() *ResolveStep {
	return &ResolveStep{}
}

// Name returns the step name.
func (s *ResolveStep) Name() string {
	return "resolve"
}

// Do resolves agg.Occurrences into agg.Canonical.
func (s *ResolveStep) Do(_ context.Context, agg *model.Aggregation) error {
	agg.Canonical = order.Resolve(agg.Occurrences, agg.FigureWise)
	return nil
}

// ReconcileStep moves range members next to their range end.
type ReconcileStep struct {
	reconciler *order.Reconciler
}

// NewReconcileStep creates a reconcile step.
func NewReconcileStep(reconciler *order.Reconciler) *ReconcileStep {
	if reconciler == nil {
		reconciler = order.NewReconciler()
	}
	return &ReconcileStep{reconciler: reconciler}
}

// Name returns the step name.
func (s *ReconcileStep) Name() string {
	return "reconcile"
}

// Do reconciles agg.Canonical against agg.Ranges into agg.Tags.
func (s *ReconcileStep) Do(_ context.Context, agg *model.Aggregation) error {
	result, err := s.reconciler.Reconcile(agg.Canonical, agg.Ranges)
	if err != nil {
		return err
	}
	agg.Tags = result.Tags
	agg.Placed = result.Placed
	agg.Skipped = result.Skipped
	return nil
}

// WriteTagFileStep writes the final order to the tag file.
type WriteTagFileStep struct {
	path   string
	suffix string
}

// NewWriteTagFileStep creates a step writing "{<identity>:<suffix>}" lines
// to path.
func NewWriteTagFileStep(path, suffix string) *WriteTagFileStep {
	return &WriteTagFileStep{path: path, suffix: suffix}
}

// Name returns the step name.
func (s *WriteTagFileStep) Name() string {
	return "write_tag_file"
}

// Do writes agg.Tags.
func (s *WriteTagFileStep) Do(_ context.Context, agg *model.Aggregation) error {
	if err := tagfile.Write(s.path, tagfile.Entries(agg.Tags, s.suffix)); err != nil {
		return err
	}
	agg.TagFile = s.path
	return nil
}

// InjectStep copies each loaded document into the compiled directory with
// the tag file lines set in its metadata block.
//
// The tag list is read back from the tag file rather than taken from the
// aggregation, so insert runs on its own after a separate aggregate.
// Compiled copies keep the line endings of their source and are written as
// UTF-8 without a byte order mark.
type InjectStep struct {
	tagFile   string
	field     string
	outputFor func(source string) string
	logger    *slog.Logger
}

// NewInjectStep creates an inject step. outputFor maps a source path to the
// path of its compiled copy.
func NewInjectStep(tagFile, field string, outputFor func(string) string, logger *slog.Logger) *InjectStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &InjectStep{
		tagFile:   tagFile,
		field:     field,
		outputFor: outputFor,
		logger:    logger,
	}
}

// Name returns the step name.
func (s *InjectStep) Name() string {
	return "inject"
}

// Do writes one compiled document per loaded document. Cancellation is
// checked between documents.
func (s *InjectStep) Do(ctx context.Context, agg *model.Aggregation) error {
	if agg.Corpus == nil {
		return errNoCorpus
	}

	entries, err := tagfile.Read(s.tagFile)
	if err != nil {
		return err
	}

	for _, doc := range agg.Corpus.Documents() {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := header.Inject(doc.Text, s.field, entries)
		if err != nil {
			return fmt.Errorf("inject %s: %w", doc.Path, err)
		}

		// The injected block is logged whole; the handler clips it.
		block, _ := header.Extract(text)

		out := s.outputFor(doc.Path)
		if err := os.MkdirAll(filepath.Dir(out), 0o750); err != nil {
			return fmt.Errorf("create compiled directory: %w", err)
		}
		if err := os.WriteFile(out, []byte(doc.RestoreLineEndings(text)), 0o600); err != nil {
			return fmt.Errorf("write compiled document %s: %w", out, err)
		}

		s.logger.Debug("document compiled", "source", doc.Path, "output", out, "header", block)
		agg.Compiled = append(agg.Compiled, out)
	}
	return nil
}
