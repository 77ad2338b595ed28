package listbooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/query/listbooks"
	"github.com/AntonStoeckl/library-books-go/testutil/fixture"
)

func Test_QueryHandler_Handle_ReturnsMatchingBooks(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	fixture.Seed(t, store,
		givenBookAdded("b-1", "Refactoring", "2018-11-20", ""),
		givenBookAdded("b-2", "Domain-Driven Design", "2003-08-20", ""),
	)
	reader := core.BuildActor("rita", string(core.GroupLibraryUser))

	// act
	result, err := listbooks.NewQueryHandler(store).Handle(context.Background(), listbooks.BuildQuery("design", reader, today))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"b-2"}, bookIDsOf(result))
	assert.Equal(t, uint(2), result.GetSequenceNumber())
}

func Test_QueryHandler_Handle_RejectsActorWithoutGroup(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()

	// act
	_, err := listbooks.NewQueryHandler(store).Handle(context.Background(), listbooks.BuildQuery("", core.BuildActor("guest"), today))

	// assert
	assert.ErrorIs(t, err, core.ErrAccessDenied)
}
