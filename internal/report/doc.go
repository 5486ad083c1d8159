// Package report writes the derived data of a dashboard build as text.
//
// This package contains writers for different output formats:
//   - SimpleWriter: aligned plain text for terminal display
//   - MarkdownWriter: Markdown tables plus a mermaid pie chart of the ranking
//   - JSONWriter: structured JSON for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
