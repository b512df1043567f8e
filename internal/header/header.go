// Package header reads and rewrites the YAML metadata block at the top of a
// document.
//
// The block is located with the same rule the scanner uses to exclude it
// (a leading "---" line up to the next "---"), decoded with
// adrg/frontmatter and re-encoded with yaml.v3. Keys are written in sorted
// order and long lines are never wrapped.
package header

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/taggregate/internal/scan"
	"github.com/nao1215/taggregate/internal/tag"
)

// DefaultField is the metadata key that receives the tag list.
const DefaultField = "manuscript-figures"

// ErrNoHeader is returned for documents without a metadata block.
var ErrNoHeader = fmt.Errorf("%w: document has no metadata block", tag.ErrMalformedInput)

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Extract returns the raw YAML content of the metadata block.
func Extract(text string) (string, error) {
	content, ok := scan.Header(text)
	if !ok {
		return "", ErrNoHeader
	}
	return content, nil
}

// Decode parses the metadata block into a map.
//
// The block is the span scan.HeaderIndex reports, which ends at the first
// "---" even inside a line, so "title: a---b" yields only "title: a". The
// same span is what Inject replaces; decoding anything else would make the
// rewritten block disagree with the text around it.
func Decode(text string) (map[string]any, error) {
	content, ok := scan.Header(text)
	if !ok {
		return nil, ErrNoHeader
	}

	block := "---\n" + content + "\n---\n"
	var meta map[string]any
	if _, err := frontmatter.MustParse(strings.NewReader(block), &meta, yamlFormat); err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("%w: decode metadata block: %w", tag.ErrMalformedInput, err)
	}
	if meta == nil {
		meta = make(map[string]any)
	}
	return meta, nil
}

// Encode renders metadata as YAML with two-space indentation.
func Encode(meta map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encode metadata block: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode metadata block: %w", err)
	}
	return buf.String(), nil
}

// Inject sets field to values in the metadata block of text and returns the
// rewritten document. Everything outside the block is left byte-for-byte
// unchanged; any existing value of field is replaced.
func Inject(text, field string, values []string) (string, error) {
	start, end, ok := scan.HeaderIndex(text)
	if !ok {
		return "", ErrNoHeader
	}

	meta, err := Decode(text)
	if err != nil {
		return "", err
	}
	if values == nil {
		values = []string{}
	}
	meta[field] = values

	encoded, err := Encode(meta)
	if err != nil {
		return "", err
	}

	return text[:start] + encoded + text[end:], nil
}
