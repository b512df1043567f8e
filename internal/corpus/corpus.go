package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nao1215/taggregate/internal/scan"
	"github.com/nao1215/taggregate/internal/tag"
)

// Document is one source text and the path it was read from.
type Document struct {
	// Path identifies the document; for loaded files it is the file path.
	Path string

	// Text is the decoded content with "\n" line endings.
	Text string

	// CRLF records that the source used Windows line endings before Text
	// was normalized.
	CRLF bool
}

// RestoreLineEndings converts text derived from Text back to the line endings
// of the source file. The byte order mark is not restored; output is UTF-8.
func (d Document) RestoreLineEndings(text string) string {
	if !d.CRLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", "\r\n")
}

// HasHeader reports whether the document starts with a metadata block.
func (d Document) HasHeader() bool {
	_, ok := scan.Header(d.Text)
	return ok
}

// Corpus is an ordered list of documents.
// Document order is significant: it decides which occurrence of a tag is
// seen first.
//
// Design decision: The corpus keeps the documents separate rather than
// concatenating them. Scans still run over the whole list in order, but
// errors and log records can name the file they come from, and compiled
// copies are written per document.
type Corpus struct {
	docs []Document
}

// New creates a Corpus from documents in processing order.
func New(docs ...Document) *Corpus {
	return &Corpus{docs: docs}
}

// Load reads every path in order. The first read failure aborts the load.
func Load(paths []string) (*Corpus, error) {
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		doc, err := ReadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return New(docs...), nil
}

// ReadDocument reads a single document from disk.
// A UTF-8 or UTF-16 byte order mark selects the decoding; text without one is
// read as UTF-8. Windows line endings are normalized to "\n" and remembered
// in Document.CRLF so that rewritten copies can keep them.
func ReadDocument(path string) (Document, error) {
	f, err := os.Open(path) //nolint:gosec // Document paths come from the user's configuration
	if err != nil {
		return Document{}, fmt.Errorf("read document %s: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return Document{}, fmt.Errorf("read document %s: %w", path, err)
	}

	raw := string(data)
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	return Document{Path: path, Text: text, CRLF: len(text) != len(raw)}, nil
}

// Documents returns the documents in processing order.
func (c *Corpus) Documents() []Document {
	return c.docs
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Tags concatenates scan.Tags over all documents.
func (c *Corpus) Tags() []tag.Token {
	return collect(c.docs, scan.Tags)
}

// Ranges concatenates scan.Ranges over all documents.
func (c *Corpus) Ranges() []tag.Range {
	return collect(c.docs, scan.Ranges)
}

// TextMentions concatenates scan.TextMentions over all documents.
func (c *Corpus) TextMentions() []tag.Token {
	return collect(c.docs, scan.TextMentions)
}

// ImageCaptions concatenates scan.ImageCaptions over all documents.
func (c *Corpus) ImageCaptions() []string {
	return collect(c.docs, scan.ImageCaptions)
}

// ImageTags returns the tokens quoted inside image captions across all
// documents.
func (c *Corpus) ImageTags() []tag.Token {
	return scan.TagsFromCaptions(c.ImageCaptions())
}

func collect[T any](docs []Document, extract func(string) []T) []T {
	out := make([]T, 0)
	for _, d := range docs {
		out = append(out, extract(d.Text)...)
	}
	return out
}
