package checkbookisbn

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for ISBN checks.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle checks the actor's permission and checks the ISBN of the book. An unknown book is ErrNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ISBNCheck, error) {
	if err := core.Authorize(query.Actor, core.PermissionReadCatalog); err != nil {
		return ISBNCheck{}, err
	}

	history, maxSeq, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.BookID))
	if err != nil {
		return ISBNCheck{}, err
	}

	check := Project(history, query, maxSeq)
	if !check.Found {
		return check, fmt.Errorf("%w: book %q", core.ErrNotFound, query.BookID)
	}

	return check, nil
}
