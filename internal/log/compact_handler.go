package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMaxValueLen is the longest string value written unclipped.
const DefaultMaxValueLen = 120

// CompactHandler wraps an slog.Handler and clips long string attributes.
// Newlines inside string values are escaped so that each record stays on
// one line even with the text handler.
type CompactHandler struct {
	// handler is the underlying slog handler that receives compacted records.
	handler slog.Handler

	// maxLen is the number of runes kept from a long value.
	maxLen int
}

// NewCompactHandler creates a CompactHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A maxLen of zero or
// less selects DefaultMaxValueLen.
func NewCompactHandler(handler slog.Handler, maxLen int) *CompactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &CompactHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
func (h *CompactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle compacts the record's attributes and passes it on.
func (h *CompactHandler) Handle(ctx context.Context, r slog.Record) error {
	compacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		compacted.AddAttrs(h.compactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, compacted)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	compacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		compacted[i] = h.compactAttr(a)
	}
	return &CompactHandler{handler: h.handler.WithAttrs(compacted), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// compactAttr compacts a single attribute, recursively handling groups.
func (h *CompactHandler) compactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		compacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			compacted[i] = h.compactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(compacted...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, h.clip(a.Value.String()))
	}

	return a
}

// clip escapes newlines and shortens s to maxLen runes.
func (h *CompactHandler) clip(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	n := utf8.RuneCountInString(s)
	if n <= h.maxLen {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (%d chars)", string(runes[:h.maxLen]), n)
}

// NewLogger creates a text logger with compact handling.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewCompactHandler(slog.NewTextHandler(w, opts), DefaultMaxValueLen))
}

// NewJSONLogger creates a JSON logger with compact handling.
// Useful for structured log aggregation in build pipelines.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewCompactHandler(slog.NewJSONHandler(w, opts), DefaultMaxValueLen))
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
