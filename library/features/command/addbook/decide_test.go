package addbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/addbook"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide_Success_WhenCatalogIsEmpty(t *testing.T) {
	// arrange
	command := addbook.BuildCommand("book-1", givenDetails("Domain-Driven Design", "2003-08-20"), core.SystemActor, fakeClock)

	// act
	result := addbook.Decide(core.DomainEvents{}, command)

	// assert
	require.NoError(t, result.HasError())
	event, ok := result.Event.(core.BookAddedToCatalog)
	require.True(t, ok, "expected BookAddedToCatalog, got %T", result.Event)
	assert.Equal(t, "book-1", event.BookID)
	assert.Equal(t, core.BookTypeOther, event.BookType)
	assert.Equal(t, core.DefaultCopies, event.Copies)
}

func Test_Decide_Idempotent_WhenBookAlreadyAdded(t *testing.T) {
	// arrange
	details := givenDetails("Domain-Driven Design", "2003-08-20")
	history := core.DomainEvents{core.BuildBookAddedToCatalog("book-1", details, fakeClock.Add(-time.Hour))}

	// act
	result := addbook.Decide(history, addbook.BuildCommand("book-1", details, core.SystemActor, fakeClock))

	// assert
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Error_WhenTitleAndReleaseDateAreTaken(t *testing.T) {
	// arrange
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("book-1", givenDetails("Domain-Driven Design", "2003-08-20"), fakeClock.Add(-time.Hour)),
	}
	command := addbook.BuildCommand("book-2", givenDetails("domain-driven design ", "2003-08-20"), core.SystemActor, fakeClock)

	// act
	result := addbook.Decide(history, command)

	// assert
	assertFailure(t, result, core.ErrAlreadyExists)
}

func Test_Decide_Success_WhenDuplicateWasRevisedOrRemoved(t *testing.T) {
	testCases := []struct {
		name    string
		history core.DomainEvents
	}{
		{
			name: "revised to another title",
			history: core.DomainEvents{
				core.BuildBookAddedToCatalog("book-1", givenDetails("Domain-Driven Design", "2003-08-20"), fakeClock.Add(-2*time.Hour)),
				core.BuildBookDetailsRevised("book-1", givenDetails("DDD Reference", "2003-08-20"), fakeClock.Add(-time.Hour)),
			},
		},
		{
			name: "removed",
			history: core.DomainEvents{
				core.BuildBookAddedToCatalog("book-1", givenDetails("Domain-Driven Design", "2003-08-20"), fakeClock.Add(-2*time.Hour)),
				core.BuildBookRemovedFromCatalog("book-1", fakeClock.Add(-time.Hour)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := addbook.Decide(tc.history, addbook.BuildCommand("book-2", givenDetails("Domain-Driven Design", "2003-08-20"), core.SystemActor, fakeClock))

			// assert
			assert.NoError(t, result.HasError())
			assert.IsType(t, core.BookAddedToCatalog{}, result.Event)
		})
	}
}

func Test_Decide_Error_WhenDetailsAreInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(d *core.BookDetails)
		expected error
	}{
		{name: "missing title", mutate: func(d *core.BookDetails) { d.Title = " " }, expected: core.ErrMissingValue},
		{name: "invalid isbn", mutate: func(d *core.BookDetails) { d.ISBN = "978-0-321-12521-6" }, expected: core.ErrISBNInvalid},
		{name: "future release", mutate: func(d *core.BookDetails) { d.ReleaseDate = fakeClock.AddDate(0, 0, 1) }, expected: core.ErrReleaseDateInFuture},
		{name: "negative pages", mutate: func(d *core.BookDetails) { d.Pages = -1 }, expected: core.ErrPagesNotPositive},
		{name: "unknown type", mutate: func(d *core.BookDetails) { d.BookType = "scroll" }, expected: core.ErrUnknownBookType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			details := givenDetails("Domain-Driven Design", "2003-08-20")
			tc.mutate(&details)

			// act
			result := addbook.Decide(core.DomainEvents{}, addbook.BuildCommand("book-1", details, core.SystemActor, fakeClock))

			// assert
			assertFailure(t, result, tc.expected)
		})
	}
}

func Test_Decide_Error_WhenCategoryIsNotDefined(t *testing.T) {
	// arrange
	details := givenDetails("Domain-Driven Design", "2003-08-20")
	details.CategoryID = "cat-1"

	// act
	result := addbook.Decide(core.DomainEvents{}, addbook.BuildCommand("book-1", details, core.SystemActor, fakeClock))

	// assert
	assertFailure(t, result, core.ErrNotFound)
}

func Test_Decide_Success_WhenCategoryIsDefined(t *testing.T) {
	// arrange
	details := givenDetails("Domain-Driven Design", "2003-08-20")
	details.CategoryID = "cat-1"
	history := core.DomainEvents{
		core.BuildCategoryDefined(core.Category{CategoryID: "cat-1", Name: "Software"}, fakeClock.Add(-time.Hour)),
	}

	// act
	result := addbook.Decide(history, addbook.BuildCommand("book-1", details, core.SystemActor, fakeClock))

	// assert
	assert.NoError(t, result.HasError())
}

func Test_BuildEventFilter(t *testing.T) {
	assert.Len(t, addbook.BuildEventFilter("").Items(), 1)
	assert.Len(t, addbook.BuildEventFilter("cat-1").Items(), 2)
}

/*** helpers ***/

func givenDetails(title string, releaseDate string) core.BookDetails {
	released, _ := time.Parse(time.DateOnly, releaseDate)

	return core.BookDetails{
		Title:       title,
		ISBN:        "978-0-321-12521-7",
		ReleaseDate: released,
		Pages:       560,
	}
}

func assertFailure(t *testing.T, result core.DecisionResult, expected error) {
	t.Helper()

	assert.ErrorIs(t, result.HasError(), expected)
	event, ok := result.Event.(core.AddingBookFailed)
	require.True(t, ok, "expected AddingBookFailed, got %T", result.Event)
	assert.True(t, event.IsErrorEvent())
	assert.NotEmpty(t, event.FailureInfo)
}
