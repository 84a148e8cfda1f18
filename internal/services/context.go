package services

import "context"

type contextKey string

const (
	requestIDKey     contextKey = "request_id"
	applicationIDKey contextKey = "application_id"
	guildIDKey       contextKey = "guild_id"
)

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithApplicationID annotates context with the application whose commands are processed.
func WithApplicationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, applicationIDKey, id)
}

// ApplicationIDFromContext returns the application ID if present.
func ApplicationIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(applicationIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithGuildID annotates context with the guild scope of a command listing.
func WithGuildID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, guildIDKey, id)
}

// GuildIDFromContext returns the guild ID if present.
func GuildIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(guildIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
