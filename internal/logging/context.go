package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldRecord is the structured logging key for the 1-based record position.
	FieldRecord = "record"
	// FieldSource is the structured logging key for the uploaded file or share token origin.
	FieldSource = "source"
)

type contextKey int

const (
	correlationIDKey contextKey = iota
	recordKey
)

// WithCorrelationID stores a request correlation identifier on the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation identifier, if any.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok && id != ""
}

// WithRecord stores the 1-based record position being handled.
func WithRecord(ctx context.Context, position int) context.Context {
	if position <= 0 {
		return ctx
	}
	return context.WithValue(ctx, recordKey, position)
}

// RecordFromContext returns the 1-based record position, if any.
func RecordFromContext(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	pos, ok := ctx.Value(recordKey).(int)
	return pos, ok
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if pos, ok := RecordFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldRecord, pos))
	}
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
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
