package shell

import "time"

// HandlerResult represents the outcome of a command handler execution.
// It captures the business outcome (idempotency) and the retry metadata
// without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Idempotent indicates that no state change was needed. This is a business outcome, not an error.
	Idempotent bool

	// RetryAttempts is the total number of attempts made (1 for no retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in backoff delays, excluding execution time.
	TotalRetryDelay time.Duration

	// LastErrorType is one of "none", "concurrency_conflict", "context_canceled",
	// "context_deadline_exceeded" or "other".
	LastErrorType string

	// RetriesExhausted is true only when all attempts failed with a retryable error.
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for successful operations (non-idempotent).
func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(false, retryMetrics)
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(true, retryMetrics)
}

// NewErrorResult creates a HandlerResult for failed operations.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(false, retryMetrics)
}

func newResult(idempotent bool, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Idempotent:       idempotent,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
