package listbooks

import (
	"context"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for catalog searches.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle checks the actor's permission and projects the search result.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Books, error) {
	if err := core.Authorize(query.Actor, core.PermissionReadCatalog); err != nil {
		return Books{}, err
	}

	history, maxSeq, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return Books{}, err
	}

	return Project(history, query, maxSeq), nil
}
