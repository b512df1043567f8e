package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/taggregate/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose adds the per-document table and the canonical order before
	// reconciliation.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the aggregation in human-readable format.
func (w *SimpleWriter) Write(agg *model.Aggregation) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, agg)
	w.writeOrder(&sb, agg)
	w.writeRanges(&sb, agg)
	if w.verbose {
		w.writeCanonical(&sb, agg)
		w.writeDocuments(&sb, agg)
	}
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

func section(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, agg *model.Aggregation) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         TAGGREGATE REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Date:       %s\n", agg.DateAggregated.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Documents:  %d\n", len(agg.Documents))
	fmt.Fprintf(sb, "Order:      %s\n", orderMode(agg))
	fmt.Fprintf(sb, "Source:     %s\n", agg.Source)
	if agg.TagFile != "" {
		fmt.Fprintf(sb, "Tag file:   %s\n", agg.TagFile)
	}
	sb.WriteString("\n")
}

// writeOrder writes the final tag order, one tag per line.
func (w *SimpleWriter) writeOrder(sb *strings.Builder, agg *model.Aggregation) {
	section(sb, fmt.Sprintf("TAG ORDER (%d)", len(agg.Tags)))

	if len(agg.Tags) == 0 {
		sb.WriteString("  No tags found\n\n")
		return
	}

	for i, id := range agg.Tags {
		mark := ""
		if agg.IsImplied(id) {
			mark = "  (implied by range)"
		}
		fmt.Fprintf(sb, "  %3d  %s%s\n", i+1, id, mark)
	}
	sb.WriteString("\n")

	counts := agg.KindCounts()
	for _, k := range sortedKinds(counts) {
		fmt.Fprintf(sb, "  %s: %d\n", k.Label(), counts[k])
	}
	sb.WriteString("\n")
}

// writeRanges writes each declared range with its implied member.
func (w *SimpleWriter) writeRanges(sb *strings.Builder, agg *model.Aggregation) {
	if len(agg.Ranges) == 0 {
		return
	}

	section(sb, "RANGES")
	for _, rng := range agg.Ranges {
		member := memberOf(agg, rng)
		if member == "" {
			fmt.Fprintf(sb, "  [!] %s  skipped, no implied tag\n", rng)
			continue
		}
		fmt.Fprintf(sb, "  [+] %s  implies %s\n", rng, member)
	}
	sb.WriteString("\n")
}

// writeCanonical writes the order before range reconciliation.
func (w *SimpleWriter) writeCanonical(sb *strings.Builder, agg *model.Aggregation) {
	section(sb, "CANONICAL ORDER")
	for i, id := range agg.Canonical {
		fmt.Fprintf(sb, "  %3d  %s\n", i+1, id)
	}
	sb.WriteString("\n")
}

// writeDocuments writes per-document scan counts.
func (w *SimpleWriter) writeDocuments(sb *strings.Builder, agg *model.Aggregation) {
	section(sb, "DOCUMENTS")
	for _, d := range agg.Documents {
		header := "yes"
		if !d.HasHeader {
			header = "no"
		}
		fmt.Fprintf(sb, "  %s\n    header: %s  tags: %d  ranges: %d  captions: %d\n",
			d.Path, header, d.Tags, d.Ranges, d.Captions)
	}
	sb.WriteString("\n")
}
