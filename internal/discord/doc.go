// Package discord fetches registered application commands from the Discord
// REST API.
//
// Only the two read endpoints needed for documentation are covered: the
// global command listing and the per-guild listing. Responses are decoded
// into registry payload types so callers validate and map them the same way
// as exported files.
package discord
