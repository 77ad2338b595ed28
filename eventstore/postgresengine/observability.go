package postgresengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

const (
	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsAppended       = "eventstore_events_appended"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricDatabaseErrors       = "eventstore_database_errors_total"
	spanNamePrefix             = "eventstore."
	spanAttrOperation          = "operation"
	spanAttrEventCount         = "event_count"
	spanAttrErrorType          = "error_type"
	labelStatus                = "status"
	statusSuccess              = "success"
	statusError                = "error"
	statusConflict             = "conflict"
	statusCanceled             = "canceled"
	statusTimeout              = "timeout"
)

func (es *EventStore) startSpan(ctx context.Context, operation string) (context.Context, eventstore.SpanContext) {
	if es.tracingCollector == nil {
		return ctx, nil
	}

	return es.tracingCollector.StartSpan(
		ctx,
		spanNamePrefix+operation,
		map[string]string{spanAttrOperation: operation, "table": es.eventTableName},
	)
}

func (es *EventStore) finishSpan(span eventstore.SpanContext, status string, attrs map[string]string) {
	if es.tracingCollector == nil || span == nil {
		return
	}

	es.tracingCollector.FinishSpan(span, status, attrs)
}

// finishFailed closes the span and counts the error with a coarse error type.
func (es *EventStore) finishFailed(span eventstore.SpanContext, operation string, err error) {
	status, errorType := classifyError(err)

	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(
			metricDatabaseErrors,
			map[string]string{spanAttrOperation: operation, labelStatus: status, spanAttrErrorType: errorType},
		)
	}

	es.finishSpan(span, status, map[string]string{spanAttrErrorType: errorType})
}

func (es *EventStore) recordDuration(operation string, status string, duration time.Duration) {
	if es.metricsCollector == nil {
		return
	}

	metric := metricQueryDuration
	if operation == operationAppend {
		metric = metricAppendDuration
	}

	es.metricsCollector.RecordDuration(metric, duration, map[string]string{spanAttrOperation: operation, labelStatus: status})
}

func (es *EventStore) incrementCounter(metric string, operation string, status string) {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(metric, map[string]string{spanAttrOperation: operation, labelStatus: status})
	}
}

func (es *EventStore) recordValue(metric string, value float64) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordValue(metric, value, map[string]string{spanAttrOperation: operationAppend})
	}
}

func classifyError(err error) (status string, errorType string) {
	switch {
	case errors.Is(err, context.Canceled):
		return statusCanceled, "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return statusTimeout, "context_deadline_exceeded"
	case errors.Is(err, eventstore.ErrBuildingQueryFailed):
		return statusError, "build_query"
	case errors.Is(err, eventstore.ErrScanningDBRowFailed), errors.Is(err, eventstore.ErrBuildingStorableEventFailed):
		return statusError, "scan"
	default:
		return statusError, "database"
	}
}
