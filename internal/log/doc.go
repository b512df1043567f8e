// Package log provides the structured logger used by Taggregate, built on
// top of the standard slog package.
//
// The CompactHandler wraps any slog.Handler and clips long string values.
// The metadata block written into each compiled document is logged whole at
// debug level and grows with the tag list; clipping keeps each log record on
// a readable single line while preserving the original length in the clipped
// value.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("scanned document", "path", path, "tags", len(tags))
//	slog.SetDefault(logger)
package log
