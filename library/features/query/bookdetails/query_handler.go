package bookdetails

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for the details of one book.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle checks the actor's permission and projects the book. An unknown book is ErrNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookView, error) {
	if err := core.Authorize(query.Actor, core.PermissionReadCatalog); err != nil {
		return BookView{}, err
	}

	history, maxSeq, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.BookID))
	if err != nil {
		return BookView{}, err
	}

	view := Project(history, query, maxSeq)
	if !view.Found {
		return view, fmt.Errorf("%w: book %q", core.ErrNotFound, query.BookID)
	}

	return view, nil
}
