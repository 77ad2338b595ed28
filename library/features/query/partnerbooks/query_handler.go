package partnerbooks

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project for the books of a partner.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle checks the actor's permission and projects the books of the partner. An unknown partner is ErrNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (PartnerBooks, error) {
	if err := core.Authorize(query.Actor, core.PermissionReadCatalog); err != nil {
		return PartnerBooks{}, err
	}

	history, maxSeq, err := shell.QueryHistory(ctx, h.eventStore, BuildEventFilter(query.PartnerID))
	if err != nil {
		return PartnerBooks{}, err
	}

	result := Project(history, query, maxSeq)
	if !result.Found {
		return result, fmt.Errorf("%w: partner %q", core.ErrNotFound, query.PartnerID)
	}

	return result, nil
}
