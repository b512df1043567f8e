// Package tagfile reads and writes the flat tag list shared between the
// aggregate and insert commands.
//
// The file holds one entry per line, each entry being a tag identity rendered
// back into token form with a fixed type suffix, e.g. "{#f:one:m}".
package tagfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/taggregate/internal/tag"
)

// DefaultDelimiter separates entries in the tag file.
const DefaultDelimiter = "\n"

// DefaultSuffix is the type flag written after each identity.
const DefaultSuffix = "m"

// Entries renders identities as tag file entries.
func Entries(ids []tag.Identity, suffix string) []string {
	entries := make([]string, len(ids))
	for i, id := range ids {
		entries[i] = id.Token(suffix)
	}
	return entries
}

// Text joins entries, terminating every entry with delimiter.
func Text(entries []string, delimiter string) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e)
		sb.WriteString(delimiter)
	}
	return sb.String()
}

// Write writes entries to path, creating parent directories as needed.
func Write(path string, entries []string) error {
	return WriteWithDelimiter(path, entries, DefaultDelimiter)
}

// WriteWithDelimiter is Write with a custom entry terminator.
func WriteWithDelimiter(path string, entries []string, delimiter string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create tag file directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(Text(entries, delimiter)), 0600); err != nil {
		return fmt.Errorf("write tag file %s: %w", path, err)
	}
	return nil
}

// Read returns the non-empty lines of the tag file at path.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Tag file path comes from the user's configuration
	if err != nil {
		return nil, fmt.Errorf("read tag file %s: %w", path, err)
	}
	return Split(string(data)), nil
}

// Split breaks tag file text into entries, dropping empty lines.
func Split(text string) []string {
	lines := strings.Split(text, "\n")
	entries := make([]string, 0, len(lines))
	for _, l := range lines {
		if l == "" {
			continue
		}
		entries = append(entries, l)
	}
	return entries
}
