package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/taggregate/internal/model"
)

// MarkdownWriter outputs reports in GitHub-flavored Markdown, with alerts
// for skipped ranges and a mermaid chart of the kind distribution.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the aggregation in Markdown format.
func (w *MarkdownWriter) Write(agg *model.Aggregation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, agg)
	w.writeOrder(md, agg)
	w.writeRanges(md, agg)
	w.writeDocuments(md, agg)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, agg *model.Aggregation) {
	md.H1("Taggregate Report")
	md.PlainText("")

	tagFile := agg.TagFile
	if tagFile == "" {
		tagFile = "-"
	} else {
		tagFile = "`" + tagFile + "`"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Date", agg.DateAggregated.Format("2006-01-02 15:04:05 MST")},
			{"Documents", strconv.Itoa(len(agg.Documents))},
			{"Order", orderMode(agg)},
			{"Source", string(agg.Source)},
			{"Tag file", tagFile},
		},
	})
	md.PlainText("")
}

// writeOrder writes the final order table and the kind distribution.
func (w *MarkdownWriter) writeOrder(md *markdown.Markdown, agg *model.Aggregation) {
	md.H2("Tag Order")
	md.PlainText("")

	if len(agg.Tags) == 0 {
		md.Tip("No tags found in the source documents.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(agg.Tags))
	for i, id := range agg.Tags {
		note := "-"
		if rng, ok := placedIn(agg, id); ok {
			note = "implied by `" + rng.String() + "`"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + id.String() + "`",
			model.Kind(id.Kind()).Label(),
			note,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Tag", "Kind", "Note"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, agg)
}

// writePieChart writes a mermaid pie chart of the kind distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, agg *model.Aggregation) {
	counts := agg.KindCounts()
	if len(counts) < 2 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Tags by Kind"),
		piechart.WithShowData(true),
	)
	for _, k := range sortedKinds(counts) {
		chart.LabelAndIntValue(k.Label(), uint64(counts[k]))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRanges writes each declared range with its implied member.
func (w *MarkdownWriter) writeRanges(md *markdown.Markdown, agg *model.Aggregation) {
	md.H2("Ranges")
	md.PlainText("")

	if len(agg.Ranges) == 0 {
		md.PlainText("No ranges declared.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(agg.Ranges))
	for i, rng := range agg.Ranges {
		member := "-"
		if m := memberOf(agg, rng); m != "" {
			member = "`" + m.String() + "`"
		}
		rows[i] = []string{"`" + rng.Start.String() + "`", "`" + rng.End.String() + "`", member}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Start", "End", "Implied"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(agg.Skipped) > 0 {
		md.Warningf("%d range(s) imply no tag and were skipped.", len(agg.Skipped))
		md.PlainText("")
	}
}

// writeDocuments writes per-document scan counts.
func (w *MarkdownWriter) writeDocuments(md *markdown.Markdown, agg *model.Aggregation) {
	md.H2("Documents")
	md.PlainText("")

	rows := make([][]string, len(agg.Documents))
	missing := 0
	for i, d := range agg.Documents {
		header := "yes"
		if !d.HasHeader {
			header = "no"
			missing++
		}
		rows[i] = []string{
			"`" + d.Path + "`",
			header,
			strconv.Itoa(d.Tags),
			strconv.Itoa(d.Ranges),
			strconv.Itoa(d.Captions),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Path", "Header", "Tags", "Ranges", "Captions"},
		Rows:   rows,
	})
	md.PlainText("")

	if missing > 0 {
		md.Note("Documents without a metadata block cannot receive the tag list.")
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [Taggregate](https://github.com/nao1215/taggregate)*")
}
