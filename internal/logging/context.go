package logging

import (
	"context"
	"log/slog"

	"cmddoc/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the standardized structured logging key for per-invocation correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldApplicationID is the standardized structured logging key for registry application IDs.
	FieldApplicationID = "application_id"
	// FieldGuildID is the standardized structured logging key for guild scopes.
	FieldGuildID = "guild_id"
	// FieldCommandCount is the number of root commands received from the registry.
	FieldCommandCount = "command_count"
	// FieldCompiledCount is the number of leaf commands produced by flattening.
	FieldCompiledCount = "compiled_count"
	// FieldFormat is the output format being rendered.
	FieldFormat = "format"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries a short next step for the operator.
	FieldErrorHint = "error_hint"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	if app, ok := services.ApplicationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldApplicationID, app))
	}
	if guild, ok := services.GuildIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldGuildID, guild))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
