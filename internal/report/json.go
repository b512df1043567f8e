package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nao1215/taggregate/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	pretty bool

	// prefix and indent are passed to json.MarshalIndent when pretty is set.
	prefix, indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent pretty-prints with the given line prefix and indent unit.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.pretty = true
		w.prefix = prefix
		w.indent = indent
	}
}

// WithPrettyPrint pretty-prints with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter. Output is compact unless an indent
// option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the aggregation in JSON format.
func (w *JSONWriter) Write(agg *model.Aggregation) (int, error) {
	return w.writeJSON(agg)
}

// writeJSON writes v followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	marshal := json.Marshal
	if w.pretty {
		marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, w.prefix, w.indent)
		}
	}

	data, err := marshal(v)
	if err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}
	return w.output.Write(append(data, '\n'))
}

// JSONReport wraps an aggregation with the version of the tool that
// produced it.
type JSONReport struct {
	// Version is the Taggregate version that generated this report.
	Version string `json:"version"`

	// Kinds counts final tags per kind label.
	Kinds map[string]int `json:"kinds"`

	// Aggregation is the full run result.
	Aggregation *model.Aggregation `json:"aggregation"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(agg *model.Aggregation, version string) *JSONReport {
	kinds := make(map[string]int)
	for k, n := range agg.KindCounts() {
		kinds[k.Label()] = n
	}
	return &JSONReport{
		Version:     version,
		Kinds:       kinds,
		Aggregation: agg,
	}
}

// FullJSONWriter outputs aggregations with the metadata wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the Taggregate version string.
	version string
}

// NewFullJSONWriter creates a writer for wrapped reports.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the aggregation wrapped with metadata.
func (w *FullJSONWriter) Write(agg *model.Aggregation) (int, error) {
	return w.writeJSON(NewJSONReport(agg, w.version))
}
