package report

import (
	"io"
	"maps"
	"slices"

	"github.com/nao1215/taggregate/internal/model"
	"github.com/nao1215/taggregate/internal/tag"
)

// Writer defines the interface for report output.
//
// Design decision: Writers receive the whole Aggregation instead of a
// prepared view. Each report format picks different parts of it, and adding
// a field to the Aggregation then needs no change to this interface.
type Writer interface {
	// Write outputs the aggregation to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(agg *model.Aggregation) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// sortedKinds returns the kinds present in counts in letter order.
func sortedKinds(counts map[model.Kind]int) []model.Kind {
	return slices.Sorted(maps.Keys(counts))
}

// orderMode describes how the canonical sequence was ordered.
func orderMode(agg *model.Aggregation) string {
	if agg.FigureWise {
		return "first figure definition"
	}
	return "first mention"
}

// placedIn returns the range that id was moved into, if any.
func placedIn(agg *model.Aggregation, id tag.Identity) (tag.Range, bool) {
	for _, p := range agg.Placed {
		if p.Member == id {
			return p.Range, true
		}
	}
	return tag.Range{}, false
}

// memberOf returns the member placed into rng, or "" when the range was
// skipped.
func memberOf(agg *model.Aggregation, rng tag.Range) tag.Identity {
	for _, p := range agg.Placed {
		if p.Range == rng {
			return p.Member
		}
	}
	return ""
}
