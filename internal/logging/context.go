package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for reconciliation run identifiers.
	FieldRunID = "run_id"
	// FieldMetric is the standardized structured logging key for similarity metric names.
	FieldMetric = "metric"
	// FieldSource is the standardized structured logging key for transcript source labels.
	FieldSource = "source"
)

type runIDKey struct{}

// WithRunID stores a reconciliation run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext extracts the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	runID, ok := ctx.Value(runIDKey{}).(string)
	return runID, ok && runID != ""
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID, ok := RunIDFromContext(ctx); ok {
		return logger.With(slog.String(FieldRunID, runID))
	}
	return logger
}
