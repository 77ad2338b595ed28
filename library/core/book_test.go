package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

func Test_BookDetails_Validate(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		mutate      func(d *core.BookDetails)
		expectedErr error
	}{
		{name: "valid", mutate: func(_ *core.BookDetails) {}, expectedErr: nil},
		{name: "title missing", mutate: func(d *core.BookDetails) { d.Title = "  " }, expectedErr: core.ErrTitleMissing},
		{name: "negative pages", mutate: func(d *core.BookDetails) { d.Pages = -1 }, expectedErr: core.ErrPagesNotPositive},
		{name: "release tomorrow", mutate: func(d *core.BookDetails) { d.ReleaseDate = today.AddDate(0, 0, 1) }, expectedErr: core.ErrReleaseDateInFuture},
		{name: "release today", mutate: func(d *core.BookDetails) { d.ReleaseDate = today.Add(20 * time.Hour) }, expectedErr: nil},
		{name: "invalid isbn", mutate: func(d *core.BookDetails) { d.ISBN = "9780134190441" }, expectedErr: core.ErrISBNInvalid},
		{name: "unknown book type", mutate: func(d *core.BookDetails) { d.BookType = "scroll" }, expectedErr: core.ErrUnknownBookType},
		{name: "negative price", mutate: func(d *core.BookDetails) { d.CostPrice = -3 }, expectedErr: core.ErrPricesNegative},
		{name: "rating above 5", mutate: func(d *core.BookDetails) { d.ReaderRating = 5.5 }, expectedErr: core.ErrReaderRatingOutRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			details := givenValidDetails(today)
			tc.mutate(&details)

			// act
			err := details.Validate(today)

			// assert
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BookDetails_Validate_ReportsAllViolations(t *testing.T) {
	// arrange
	details := core.BookDetails{Pages: -10, ISBN: "123"}

	// act
	err := details.Validate(time.Now())

	// assert
	assert.ErrorIs(t, err, core.ErrTitleMissing)
	assert.ErrorIs(t, err, core.ErrPagesNotPositive)
	assert.ErrorIs(t, err, core.ErrISBNLengthUnsupported)
}

func Test_BookDetails_NormalizedAndDisplayName(t *testing.T) {
	// arrange
	details := core.BookDetails{Title: " Refactoring ", ISBN: " 978-0-13-475759-9 ", ReleaseDate: time.Date(2018, 11, 20, 13, 0, 0, 0, time.UTC)}

	// act
	normalized := details.Normalized()

	// assert
	assert.Equal(t, "978-0-13-475759-9", normalized.ISBN)
	assert.Empty(t, core.BookDetails{Title: "Untitled", ISBN: "   "}.Normalized().ISBN)
	assert.Equal(t, "Refactoring (2018-11-20)", normalized.DisplayName())
	assert.Equal(t, core.BookTypeOther, normalized.BookType)
	assert.Equal(t, core.DefaultCopies, normalized.Copies)
	assert.Equal(t, "Untitled", core.BookDetails{Title: "Untitled"}.DisplayName())
}

func Test_UniqueKey_IgnoresCaseAndClock(t *testing.T) {
	a := core.BookDetails{Title: "Go in Action", ReleaseDate: time.Date(2015, 11, 4, 8, 0, 0, 0, time.UTC)}
	b := core.BookDetails{Title: "go in action ", ReleaseDate: time.Date(2015, 11, 4, 22, 0, 0, 0, time.UTC)}
	c := core.BookDetails{Title: "Go in Action", ReleaseDate: time.Date(2016, 11, 4, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, a.UniqueKey(), b.UniqueKey())
	assert.NotEqual(t, a.UniqueKey(), c.UniqueKey())
}

func Test_AgeDays_AndInverse(t *testing.T) {
	// arrange
	today := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	release := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	// act
	age := core.AgeDays(release, today)

	// assert
	assert.Equal(t, 28, age)
	assert.Equal(t, release, core.ReleaseDateForAge(age, today))
	assert.Equal(t, 0, core.AgeDays(time.Time{}, today))
}

func Test_Book_CheckRevision_PagesReadOnlyWhileLost(t *testing.T) {
	// arrange
	book := core.Book{
		BookDetails: core.BookDetails{Title: "Lost Book", Pages: 300},
		Lifecycle:   core.BookLifecycle{State: core.BookStateLost},
	}
	changedPages := book.BookDetails
	changedPages.Pages = 310
	changedTitle := book.BookDetails
	changedTitle.Title = "Found Book?"

	// act & assert
	assert.ErrorIs(t, book.CheckRevision(changedPages), core.ErrPagesReadOnly)
	assert.NoError(t, book.CheckRevision(changedTitle))

	book.Lifecycle.State = core.BookStateAvailable
	assert.NoError(t, book.CheckRevision(changedPages))
}

func Test_Category_BorrowPeriod_OnNilCategory(t *testing.T) {
	var category *core.Category

	assert.Equal(t, core.DefaultBorrowPeriodDays, category.BorrowPeriod())
}

func Test_BookDetails_Equal(t *testing.T) {
	// arrange
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	details := givenValidDetails(today)
	sameInOtherZone := details
	sameInOtherZone.ReleaseDate = details.ReleaseDate.In(time.FixedZone("CET", 3600))
	sameInOtherZone.AuthorIDs = []string{}
	otherAuthors := details
	otherAuthors.AuthorIDs = []string{"p-1"}

	// act & assert
	assert.True(t, details.Equal(sameInOtherZone))
	assert.False(t, details.Equal(otherAuthors))
}

func Test_Book_Evolve_FollowsTheLifecycleOfOneBook(t *testing.T) {
	// arrange
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	details := givenValidDetails(today)
	history := core.DomainEvents{
		core.BuildBookAddedToCatalog("b-1", details, today),
		core.BuildBookAddedToCatalog("b-2", details, today),
		core.BuildBookStateChanged("b-1", core.NewBookLifecycle(), core.BookLifecycle{State: core.BookStateAvailable}, today),
		core.BuildBookBorrowed("b-1", "r-1", "m-1", today.AddDate(0, 0, 10), today.Add(time.Hour)),
		core.BuildBookArchiveToggled("b-2", false, today),
	}

	// act
	book := core.Book{BookID: "b-1"}
	for _, event := range history {
		book = book.Evolve(event)
	}

	// assert
	assert.Equal(t, core.BookStateBorrowed, book.Lifecycle.State)
	assert.Equal(t, today.AddDate(0, 0, 10), book.Lifecycle.DueDate)
	assert.Equal(t, today, book.LastBorrowDate)
	assert.True(t, book.Active)
	assert.Equal(t, details.Title, book.Title)
}

func givenValidDetails(today time.Time) core.BookDetails {
	return core.BookDetails{
		Title:       "Learning Domain-Driven Design",
		ISBN:        "978-1-098-10013-1",
		ReleaseDate: today.AddDate(-4, 0, 0),
		Pages:       340,
		CostPrice:   30,
		RetailPrice: 49.99,
		Currency:    "EUR",
		BookType:    core.BookTypePaper,
		Copies:      2,
	}
}
