package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

const (
	logAttrTraceID = "trace_id"
	logAttrSpanID  = "span_id"
)

// TraceLogger implements eventstore.ContextualLogger on top of slog and adds
// the trace and span ids of the active span in ctx to every record.
type TraceLogger struct {
	logger *slog.Logger
}

// NewTraceLogger wraps an slog logger.
func NewTraceLogger(logger *slog.Logger) *TraceLogger {
	return &TraceLogger{logger: logger}
}

func (l *TraceLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, withTraceIDs(ctx, args)...)
}

func (l *TraceLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, withTraceIDs(ctx, args)...)
}

func (l *TraceLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, withTraceIDs(ctx, args)...)
}

func (l *TraceLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, withTraceIDs(ctx, args)...)
}

func withTraceIDs(ctx context.Context, args []any) []any {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return args
	}

	return append(args, logAttrTraceID, spanCtx.TraceID().String(), logAttrSpanID, spanCtx.SpanID().String())
}

var _ eventstore.ContextualLogger = (*TraceLogger)(nil)
