// Package main hosts the cmddoc CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration, fetches registered commands
// from Discord or reads a local export, flattens them into leaf commands and
// renders documentation. Domain logic lives in the internal packages; this
// package only wires flags, configuration and output together.
package main
