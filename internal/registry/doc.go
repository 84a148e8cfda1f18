// Package registry maps the command registry's wire schema into the
// commands data model.
//
// The registry describes options with a numeric type and a loosely typed
// nested options list. This package decodes that shape from JSON or YAML,
// validates field constraints, and converts each tree into the commands
// package's tagged variants. Trees the variants cannot express (groups nested
// in groups, subcommands below subcommands, choices on a subcommand) are
// rejected here with an error naming the offending path, so the flattener
// only ever sees well-formed input.
package registry
