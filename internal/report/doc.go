// Package report renders an aggregation for people and tools.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown output for sharing alongside a manuscript
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably by the list command.
package report
