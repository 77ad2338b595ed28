package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerRetriesMetric tracks commands that needed retries, labeled with the number of retries.
	CommandHandlerRetriesMetric = "commandhandler_retries_total"

	// CommandHandlerRetryDelayMetric tracks the total backoff delay of retried commands.
	CommandHandlerRetryDelayMetric = "commandhandler_retry_delay_seconds"

	// CommandHandlerMaxRetriesReachedMetric tracks commands that exhausted their retries.
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	StatusSuccess             = "success"
	StatusError               = "error"
	StatusIdempotent          = "idempotent"
	StatusCanceled            = "canceled"
	StatusTimeout             = "timeout"
	StatusConcurrencyConflict = "concurrency_conflict"
	StatusAccessDenied        = "access_denied"

	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType   = "command_type"
	LogAttrQueryType     = "query_type"
	LogAttrStatus        = "status"
	LogAttrDurationMS    = "duration_ms"
	LogAttrError         = "error"
	LogAttrAttemptNumber = "attempt_number"
	LogAttrErrorType     = "error_type"

	SpanAttrCommandType = "command.type"
	SpanAttrQueryType   = "query.type"
	SpanAttrDurationMS  = "duration_ms"
	SpanAttrError       = "error"
)

// These match the eventstore observability interfaces, so one adapter serves the engines and the handlers.
type (
	Logger           = eventstore.Logger
	ContextualLogger = eventstore.ContextualLogger
	MetricsCollector = eventstore.MetricsCollector
	TracingCollector = eventstore.TracingCollector
	SpanContext      = eventstore.SpanContext
)

// BuildCommandLabels creates the standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{LogAttrCommandType: commandType, LogAttrStatus: status}
}

// BuildQueryLabels creates the standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}
}

// BuildRetryLabels creates the standard metric labels for retry operations.
func BuildRetryLabels(commandType string, attemptNumber int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType:   commandType,
		LogAttrAttemptNumber: strconv.Itoa(attemptNumber),
		LogAttrErrorType:     errorType,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// StatusFor maps an error to the status used in metrics, spans and logs.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	case IsConcurrencyConflictError(err):
		return StatusConcurrencyConflict
	case errors.Is(err, core.ErrAccessDenied):
		return StatusAccessDenied
	default:
		return StatusError
	}
}

// RecordMetrics records the calls counter and the duration of a handler execution.
func RecordMetrics(collector MetricsCollector, callsMetric, durationMetric string, labels map[string]string, duration time.Duration) {
	if collector == nil {
		return
	}

	collector.IncrementCounter(callsMetric, labels)
	collector.RecordDuration(durationMetric, duration, labels)
}

// StartSpan starts a span, or returns the original context and nil if tracing is disabled.
func StartSpan(ctx context.Context, collector TracingCollector, name string, attrs map[string]string) (context.Context, SpanContext) {
	if collector == nil {
		return ctx, nil
	}

	return collector.StartSpan(ctx, name, attrs)
}

// FinishSpan completes a span with the outcome.
func FinishSpan(collector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	if collector == nil || span == nil {
		return
	}

	attrs := map[string]string{SpanAttrDurationMS: strconv.FormatFloat(ToMilliseconds(duration), 'f', 2, 64)}
	if err != nil {
		attrs[SpanAttrError] = err.Error()
	}

	collector.FinishSpan(span, status, attrs)
}

// Log prefers the contextual logger (for trace correlation) and falls back to the plain one.
func Log(ctx context.Context, logger Logger, contextualLogger ContextualLogger, failed bool, msg string, args ...any) {
	switch {
	case contextualLogger != nil && failed:
		contextualLogger.ErrorContext(ctx, msg, args...)
	case contextualLogger != nil:
		contextualLogger.InfoContext(ctx, msg, args...)
	case logger != nil && failed:
		logger.Error(msg, args...)
	case logger != nil:
		logger.Info(msg, args...)
	}
}

// IsCancellationError checks if an error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if an error is due to context deadline exceeded.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// IsConcurrencyConflictError checks if an error is due to optimistic concurrency control failure.
func IsConcurrencyConflictError(err error) bool {
	return errors.Is(err, eventstore.ErrConcurrencyConflict)
}
