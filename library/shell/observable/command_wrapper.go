package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// CommandWrapper adds metrics, tracing and logging around any command handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {

	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the wrapped handler and translates its HandlerResult into metrics, spans and logs.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	start := time.Now()
	ctx, span := shell.StartSpan(ctx, w.tracingCollector, "command."+w.commandType,
		map[string]string{shell.SpanAttrCommandType: w.commandType})
	shell.Log(ctx, w.logger, w.contextualLogger, false, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(start)

	w.recordRetryMetrics(result)

	status := shell.StatusFor(err)
	if err == nil && result.Idempotent {
		status = shell.StatusIdempotent
	}

	shell.RecordMetrics(
		w.metricsCollector,
		shell.CommandHandlerCallsMetric,
		shell.CommandHandlerDurationMetric,
		shell.BuildCommandLabels(w.commandType, status),
		duration,
	)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	if err != nil {
		shell.Log(ctx, w.logger, w.contextualLogger, true, shell.LogMsgCommandFailed,
			shell.LogAttrCommandType, w.commandType,
			shell.LogAttrStatus, status,
			shell.LogAttrError, err.Error(),
		)

		return result, err
	}

	shell.Log(ctx, w.logger, w.contextualLogger, false, shell.LogMsgCommandCompleted,
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrStatus, status,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	)

	return result, nil
}

func (w *CommandWrapper[C]) recordRetryMetrics(result shell.HandlerResult) {
	if w.metricsCollector == nil {
		return
	}

	if result.RetryAttempts > 1 {
		w.metricsCollector.IncrementCounter(
			shell.CommandHandlerRetriesMetric,
			shell.BuildRetryLabels(w.commandType, result.RetryAttempts-1, result.LastErrorType),
		)
		w.metricsCollector.RecordDuration(
			shell.CommandHandlerRetryDelayMetric,
			result.TotalRetryDelay,
			map[string]string{shell.LogAttrCommandType: w.commandType},
		)
	}

	if result.RetriesExhausted {
		w.metricsCollector.IncrementCounter(
			shell.CommandHandlerMaxRetriesReachedMetric,
			map[string]string{shell.LogAttrCommandType: w.commandType},
		)
	}
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}
