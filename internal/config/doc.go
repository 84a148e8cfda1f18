// Package config loads, normalizes, and validates cmddoc configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a .env file from the working directory,
// and honours environment fallbacks such as DISCORD_BOT_TOKEN. The Config type
// centralizes the registry credentials, output preferences, and logging knobs
// the CLI needs.
//
// Always obtain settings through this package so commands receive sanitized
// values and clear validation errors.
package config
