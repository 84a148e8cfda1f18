// Package logging assembles structured slog loggers and formatting helpers used
// across cmddoc.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so integration code can
// automatically tag log lines with correlation, application, and guild IDs.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
//
// Logs default to stderr so rendered documentation on stdout stays clean.
package logging
