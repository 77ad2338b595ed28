package shell

import (
	"context"

	"github.com/AntonStoeckl/library-books-go/eventstore"
)

// QueriesEvents is the read side of the event store.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need: query the history and append guarded by it.
// Both the postgresengine and the memengine satisfy it.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvent eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by all command types. CommandType is used for observability.
type Command interface {
	CommandType() string
}

// Query is implemented by all query types. QueryType is used for observability.
type Query interface {
	QueryType() string
}

// QueryResult is implemented by all projections. The sequence number is the highest one
// of the events the projection was built from.
type QueryResult interface {
	GetSequenceNumber() uint
}

// CommandHandler processes a command and reports the business outcome and retry metadata.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueryHandler processes a query and returns its projection.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
