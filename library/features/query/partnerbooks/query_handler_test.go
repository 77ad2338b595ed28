package partnerbooks_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/query/partnerbooks"
	"github.com/AntonStoeckl/library-books-go/testutil/fixture"
)

var fakeClock = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func Test_QueryHandler_Handle_ListsPublishedAndAuthoredBooks(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	fixture.Seed(t, store,
		core.BuildPartnerRegistered(core.Partner{PartnerID: "p-1", Name: "Martin Fowler", CountryCode: "GB"}, fakeClock),
		core.BuildBookAddedToCatalog("b-1", core.BookDetails{Title: "Refactoring", AuthorIDs: []string{"p-1", "p-2"}}, fakeClock),
		core.BuildBookAddedToCatalog("b-2", core.BookDetails{Title: "Analysis Patterns", PublisherID: "p-1", AuthorIDs: []string{"p-1"}}, fakeClock),
		core.BuildBookAddedToCatalog("b-3", core.BookDetails{Title: "UML Distilled", AuthorIDs: []string{"p-1"}}, fakeClock),
		core.BuildBookAddedToCatalog("b-4", core.BookDetails{Title: "Accelerate", AuthorIDs: []string{"p-3"}}, fakeClock),
		core.BuildBookRemovedFromCatalog("b-3", fakeClock),
		core.BuildPartnerCountryChanged("p-1", "US", fakeClock),
	)

	// act
	result, err := partnerbooks.NewQueryHandler(store).Handle(context.Background(), partnerbooks.BuildQuery("p-1", core.SystemActor))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "US", result.Partner.CountryCode)
	assert.Equal(t, []partnerbooks.BookRef{{BookID: "b-2", DisplayName: "Analysis Patterns"}}, result.Published)
	assert.Equal(t, 2, result.AuthoredCount)
	assert.Equal(t, "b-2", result.Authored[0].BookID)
	assert.Equal(t, "b-1", result.Authored[1].BookID)
}

func Test_QueryHandler_Handle_UnknownPartnerIsNotFound(t *testing.T) {
	// act
	_, err := partnerbooks.NewQueryHandler(memengine.NewEventStore()).
		Handle(context.Background(), partnerbooks.BuildQuery("p-404", core.SystemActor))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}
