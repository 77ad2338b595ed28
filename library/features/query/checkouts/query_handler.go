package checkouts

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for rents.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle checks the actor's permission and projects the rents.
// Asking for a single rent that does not exist is ErrNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Checkouts, error) {
	if err := core.Authorize(query.Actor, core.PermissionReadCatalog); err != nil {
		return Checkouts{}, err
	}

	history, maxSeq, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter())
	if err != nil {
		return Checkouts{}, err
	}

	result := Project(history, query, maxSeq)
	if query.RentID != "" && result.Count == 0 {
		return result, fmt.Errorf("%w: rent %q", core.ErrNotFound, query.RentID)
	}

	return result, nil
}
