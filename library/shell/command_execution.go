package shell

import (
	"context"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// DecideFunc is a feature's Decide function with the command already bound.
type DecideFunc func(history core.DomainEvents) core.DecisionResult

// HandleCommand runs the command workflow Query -> Unmarshal -> Decide -> Append and retries
// the whole workflow with exponential backoff on concurrency conflicts.
//
// The history is queried with strong consistency, decisions must never be based on a lagging replica.
func HandleCommand(
	ctx context.Context,
	eventStore EventStore,
	filter eventstore.Filter,
	actor core.Actor,
	decide DecideFunc,
	retryOptions ...RetryOption,
) (HandlerResult, error) {

	var isIdempotent bool

	retryMetrics, err := RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		idempotent, execErr := executeCommand(retryCtx, eventStore, filter, actor, decide)
		isIdempotent = idempotent

		return execErr
	}, retryOptions...)

	if isIdempotent && err == nil {
		return NewIdempotentResult(retryMetrics), nil
	}

	if err != nil {
		return NewErrorResult(retryMetrics), err
	}

	return NewSuccessResult(retryMetrics), nil
}

// RejectedResult is the result for a command that was refused before touching the event store,
// e.g. because the actor lacks the permission.
func RejectedResult() HandlerResult {
	return NewErrorResult(RetryMetrics{LastErrorType: "other"})
}

func executeCommand(
	ctx context.Context,
	eventStore EventStore,
	filter eventstore.Filter,
	actor core.Actor,
	decide DecideFunc,
) (bool, error) {

	ctx = eventstore.WithStrongConsistency(ctx)

	// Query phase
	storableEvents, maxSequenceNumber, err := eventStore.Query(ctx, filter)
	if err != nil {
		return false, err
	}

	// Unmarshal phase
	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return false, err
	}

	// Business logic phase - delegate to the pure core function
	result := decide(history)

	if !result.HasEventToAppend() {
		return true, nil
	}

	// Append phase
	storableEvent, err := StorableEventFrom(result.Event, BuildEventMetadata(ctx, actor.Name))
	if err != nil {
		return false, err
	}

	if err = eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return false, err
	}

	return false, result.HasError()
}

// QueryHistory runs Query -> Unmarshal for query handlers. Reads may be served by a replica.
func QueryHistory(
	ctx context.Context,
	eventStore QueriesEvents,
	filter eventstore.Filter,
) (core.DomainEvents, eventstore.MaxSequenceNumberUint, error) {

	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, maxSequenceNumber, err := eventStore.Query(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	history, err := DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, 0, err
	}

	return history, maxSequenceNumber, nil
}
