// Package report presents the result of a scan.
//
// This package contains writers for the output file formats:
//   - TextWriter: one URL per line, the default
//   - MarkdownWriter: a table of images with a summary and chart
//   - JSONWriter: structured output for tool integration
//
// WriteFile replaces the destination atomically once the scan is complete.
// Stream prints accepted URLs the moment they are accepted, and Notifier
// prints colored user-facing notices to standard error.
package report
