// Package commands models application command schemas and flattens them into
// documentation-ready leaf commands.
//
// A CommandDefinition is a root command whose options may contain subcommand
// groups and subcommands. Option is a closed tagged variant: *SubcommandGroup,
// *Subcommand, and *Scalar each carry only the fields valid for their kind, so
// a Scalar is the only option that can hold choices or a required flag.
//
// Flatten is pure. It never mutates its input, never fails, and returns
// compiled commands ordered by their full invocation path. Mapping external
// registry payloads into these types (and rejecting shapes the types cannot
// express) is the job of the registry package.
package commands
