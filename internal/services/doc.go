// Package services defines shared utilities consumed by the CLI and the
// external integrations it drives.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers, application IDs, and
//     guild IDs for logging.
//   - Structured error markers plus the Wrap helper that classify failures so
//     the CLI can choose an exit code and hint (configuration vs. transient).
//
// Use these helpers when wiring new integrations so operational behaviour
// stays uniform across commands.
package services
