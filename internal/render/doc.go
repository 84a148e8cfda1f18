// Package render turns compiled commands into documentation.
//
// Markdown output is a two-column table of usage lines and descriptions,
// optionally followed by a per-command options section. Table renders the
// same rows for a terminal, and JSON/YAML emit a machine-readable view.
package render
