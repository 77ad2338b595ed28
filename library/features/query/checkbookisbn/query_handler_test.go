package checkbookisbn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/query/checkbookisbn"
	"github.com/AntonStoeckl/library-books-go/testutil/fixture"
)

var fakeClock = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func Test_Project_Outcomes(t *testing.T) {
	testCases := []struct {
		name            string
		isbn            string
		expectedOutcome checkbookisbn.Outcome
		expectWarning   bool
	}{
		{name: "valid isbn-13", isbn: "978-1-098-10013-1", expectedOutcome: checkbookisbn.OutcomeValid},
		{name: "valid isbn-10", isbn: "0-306-40615-2", expectedOutcome: checkbookisbn.OutcomeValid},
		{name: "missing", isbn: "", expectedOutcome: checkbookisbn.OutcomeMissing, expectWarning: true},
		{name: "wrong check digit", isbn: "978-1-098-10013-2", expectedOutcome: checkbookisbn.OutcomeInvalid},
		{name: "wrong length", isbn: "12345", expectedOutcome: checkbookisbn.OutcomeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			history := core.DomainEvents{givenBookAdded("b-1", tc.isbn)}

			// act
			result := checkbookisbn.Project(history, checkbookisbn.BuildQuery("b-1", core.SystemActor), 1)

			// assert
			assert.True(t, result.Found)
			assert.Equal(t, tc.expectedOutcome, result.Outcome)
			assert.Equal(t, tc.expectWarning, result.IsWarning())
		})
	}
}

func Test_Project_UsesTheRevisedISBN(t *testing.T) {
	// arrange
	history := core.DomainEvents{
		givenBookAdded("b-1", ""),
		core.BuildBookDetailsRevised("b-1", core.BookDetails{Title: "Learning Domain-Driven Design", ISBN: "978-1-098-10013-1"}, fakeClock),
	}

	// act
	result := checkbookisbn.Project(history, checkbookisbn.BuildQuery("b-1", core.SystemActor), 2)

	// assert
	assert.Equal(t, checkbookisbn.OutcomeValid, result.Outcome)
	assert.Empty(t, result.Message)
}

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	fixture.Seed(t, store, givenBookAdded("b-1", "978-1-098-10013-2"))
	handler := checkbookisbn.NewQueryHandler(store)

	// act
	check, err := handler.Handle(context.Background(), checkbookisbn.BuildQuery("b-1", core.SystemActor))
	_, notFoundErr := handler.Handle(context.Background(), checkbookisbn.BuildQuery("b-2", core.SystemActor))

	// assert
	require.NoError(t, err)
	assert.Equal(t, checkbookisbn.OutcomeInvalid, check.Outcome)
	assert.Contains(t, check.Message, "check digit")
	assert.ErrorIs(t, notFoundErr, core.ErrNotFound)
}

/*** helpers ***/

func givenBookAdded(bookID, isbn string) core.BookAddedToCatalog {
	return core.BuildBookAddedToCatalog(bookID, core.BookDetails{Title: "Learning Domain-Driven Design", ISBN: isbn}, fakeClock)
}
