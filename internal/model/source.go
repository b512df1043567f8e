package model

import "fmt"

// Source selects which occurrences feed the order resolver.
type Source string

const (
	// SourceAll orders every occurrence outside the metadata block.
	SourceAll Source = "all"

	// SourceText orders body-text mentions only, excluding image captions.
	SourceText Source = "text"

	// SourceCaptions orders occurrences quoted in image captions only.
	SourceCaptions Source = "captions"
)

// ParseSource converts a command-line value to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceAll, SourceText, SourceCaptions:
		return Source(s), nil
	default:
		return "", fmt.Errorf("unknown tag source %q (expected all, text or captions)", s)
	}
}
