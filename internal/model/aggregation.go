package model

import (
	"time"

	"github.com/nao1215/taggregate/internal/corpus"
	"github.com/nao1215/taggregate/internal/order"
	"github.com/nao1215/taggregate/internal/scan"
	"github.com/nao1215/taggregate/internal/tag"
)

// Aggregation is the state of one run, filled in step by step by the
// pipeline and finally handed to a report writer.
//
// Design decision: Intermediate results (occurrences and range placements)
// are kept next to the final tag list. The list command and the JSON report
// show how the order came about, which is what users need when a figure ends
// up in an unexpected position.
type Aggregation struct {
	// DateAggregated is when the run started.
	DateAggregated time.Time `json:"date_aggregated"`

	// FigureWise records the ordering mode used for the canonical sequence.
	FigureWise bool `json:"figure_wise"`

	// Source selects which occurrences were ordered.
	Source Source `json:"source"`

	// Documents summarizes each scanned document in processing order.
	Documents []DocumentSummary `json:"documents"`

	// Occurrences is the concatenated occurrence list, duplicates included.
	Occurrences []tag.Token `json:"-"`

	// Ranges lists every declared range in document order.
	Ranges []tag.Range `json:"ranges"`

	// Canonical is the deduplicated order before range reconciliation.
	Canonical []tag.Identity `json:"canonical"`

	// Tags is the final, reconciled order.
	Tags []tag.Identity `json:"tags"`

	// Placed lists the range members moved during reconciliation.
	Placed []order.Placement `json:"placed,omitempty"`

	// Skipped lists ranges that implied no member.
	Skipped []tag.Range `json:"skipped,omitempty"`

	// TagFile is where the tag list was written, if it was.
	TagFile string `json:"tag_file,omitempty"`

	// Compiled lists the documents written with injected metadata.
	Compiled []string `json:"compiled,omitempty"`

	// PerformedSteps names the pipeline steps that completed.
	PerformedSteps []string `json:"performed_steps"`

	// Corpus holds the loaded documents between steps.
	Corpus *corpus.Corpus `json:"-"`
}

// NewAggregation creates an empty Aggregation.
func NewAggregation(figureWise bool) *Aggregation {
	return &Aggregation{
		DateAggregated: time.Now(),
		FigureWise:     figureWise,
		Source:         SourceAll,
		Documents:      make([]DocumentSummary, 0),
		PerformedSteps: make([]string, 0),
	}
}

// DocumentSummary holds per-document scan counts.
type DocumentSummary struct {
	Path      string `json:"path"`
	HasHeader bool   `json:"has_header"`
	Tags      int    `json:"tags"`
	Ranges    int    `json:"ranges"`
	Captions  int    `json:"captions"`
}

// Summarize computes the summary of a single document.
func Summarize(doc corpus.Document) DocumentSummary {
	return DocumentSummary{
		Path:      doc.Path,
		HasHeader: doc.HasHeader(),
		Tags:      len(scan.Tags(doc.Text)),
		Ranges:    len(scan.Ranges(doc.Text)),
		Captions:  len(scan.ImageCaptions(doc.Text)),
	}
}

// KindCounts returns how many final tags belong to each kind, keyed by the
// kind letter.
func (a *Aggregation) KindCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, id := range a.Tags {
		counts[Kind(id.Kind())]++
	}
	return counts
}

// IsImplied reports whether id was placed by range reconciliation.
func (a *Aggregation) IsImplied(id tag.Identity) bool {
	for _, p := range a.Placed {
		if p.Member == id {
			return true
		}
	}
	return false
}
