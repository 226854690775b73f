// Package logging assembles structured slog loggers and formatting helpers used
// across ladderview commands and the HTTP viewer.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context helpers so request handlers can tag log lines with
// correlation IDs and record positions. A no-op logger is provided for tests
// and library code that runs without a configured sink.
package logging
