package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryWrapper adds metrics, tracing and logging around any query handler.
type QueryWrapper[Q shell.Query, R shell.QueryResult] struct {
	coreHandler      shell.QueryHandler[Q, R]
	queryType        string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R shell.QueryResult](
	coreHandler shell.QueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {

	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the wrapped handler and records timing and errors.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	start := time.Now()
	ctx, span := shell.StartSpan(ctx, w.tracingCollector, "query."+w.queryType,
		map[string]string{shell.SpanAttrQueryType: w.queryType})
	shell.Log(ctx, w.logger, w.contextualLogger, false, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(start)
	status := shell.StatusFor(err)

	shell.RecordMetrics(
		w.metricsCollector,
		shell.QueryHandlerCallsMetric,
		shell.QueryHandlerDurationMetric,
		shell.BuildQueryLabels(w.queryType, status),
		duration,
	)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	if err != nil {
		shell.Log(ctx, w.logger, w.contextualLogger, true, shell.LogMsgQueryFailed,
			shell.LogAttrQueryType, w.queryType,
			shell.LogAttrStatus, status,
			shell.LogAttrError, err.Error(),
		)

		return result, err
	}

	shell.Log(ctx, w.logger, w.contextualLogger, false, shell.LogMsgQueryCompleted,
		shell.LogAttrQueryType, w.queryType,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R shell.QueryResult] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R shell.QueryResult](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R shell.QueryResult](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger for the QueryWrapper.
func WithQueryContextualLogging[Q shell.Query, R shell.QueryResult](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R shell.QueryResult](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}
