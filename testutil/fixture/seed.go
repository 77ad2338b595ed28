// Package fixture seeds event stores with domain events for feature and web tests.
package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// Seed appends the events one by one, in order, bypassing all business rules.
func Seed(t testing.TB, store shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	ctx := context.Background()
	anyEvent := eventstore.BuildEventFilter().MatchingAnyEvent()

	for _, event := range events {
		storable, err := shell.StorableEventFrom(event, shell.EventMetadata{})
		require.NoError(t, err)

		_, maxSeq, err := store.Query(ctx, anyEvent)
		require.NoError(t, err)
		require.NoError(t, store.Append(ctx, anyEvent, maxSeq, storable))
	}
}
