package revisebook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/revisebook"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide(t *testing.T) {
	original := givenDetails("Refactoring", 448)

	retitled := original
	retitled.Title = "Refactoring, Second Edition"

	otherPages := original
	otherPages.Pages = 450

	takenTitle := original
	takenTitle.Title = "Working Effectively with Legacy Code"

	unknownCategory := original
	unknownCategory.CategoryID = "cat-x"

	noTitle := original
	noTitle.Title = ""

	testCases := []struct {
		name          string
		history       core.DomainEvents
		details       core.BookDetails
		expectedEvent any
		expectedErr   error
		idempotent    bool
	}{
		{
			name:          "retitle an existing book",
			history:       givenBookInCatalog(original),
			details:       retitled,
			expectedEvent: core.BookDetailsRevised{},
		},
		{
			name:       "unchanged details",
			history:    givenBookInCatalog(original),
			details:    original,
			idempotent: true,
		},
		{
			name:          "unknown book",
			history:       core.DomainEvents{},
			details:       retitled,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrNotFound,
		},
		{
			name: "removed book",
			history: append(givenBookInCatalog(original),
				core.BuildBookRemovedFromCatalog("book-1", fakeClock.Add(-time.Minute))),
			details:       retitled,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrNotFound,
		},
		{
			name:          "missing title",
			history:       givenBookInCatalog(original),
			details:       noTitle,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrTitleMissing,
		},
		{
			name: "pages of a lost book",
			history: append(givenBookInCatalog(original),
				core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateDraft}, core.BookLifecycle{State: core.BookStateAvailable}, fakeClock.Add(-3*time.Minute)),
				core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateAvailable}, core.BookLifecycle{State: core.BookStateLost}, fakeClock.Add(-2*time.Minute))),
			details:       otherPages,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrPagesReadOnly,
		},
		{
			name: "pages of a found book",
			history: append(givenBookInCatalog(original),
				core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateAvailable}, core.BookLifecycle{State: core.BookStateLost}, fakeClock.Add(-2*time.Minute)),
				core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateLost}, core.BookLifecycle{State: core.BookStateAvailable}, fakeClock.Add(-time.Minute))),
			details:       otherPages,
			expectedEvent: core.BookDetailsRevised{},
		},
		{
			name: "title and release date of another book",
			history: append(givenBookInCatalog(original),
				core.BuildBookAddedToCatalog("book-2", givenDetails("Working Effectively with Legacy Code", 456), fakeClock.Add(-time.Minute))),
			details:       takenTitle,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrDuplicateTitleDate,
		},
		{
			name:          "undefined category",
			history:       givenBookInCatalog(original),
			details:       unknownCategory,
			expectedEvent: core.RevisingBookFailed{},
			expectedErr:   core.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := revisebook.Decide(tc.history, revisebook.BuildCommand("book-1", tc.details, core.SystemActor, fakeClock))

			// assert
			if tc.idempotent {
				assert.False(t, result.HasEventToAppend())
				return
			}

			require.True(t, result.HasEventToAppend())
			assert.IsType(t, tc.expectedEvent, result.Event)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			} else {
				assert.NoError(t, result.HasError())
			}
		})
	}
}

func Test_Decide_WithPatch_ClearsAndResetsFields(t *testing.T) {
	// arrange
	original := givenDetails("Refactoring", 448)
	original.ISBN = "9780134757599"
	original.OutOfPrint = true
	original.Notes = "signed copy"
	noISBN := core.ISBNString("")
	inPrint := false
	zeroPages := 0

	patch := revisebook.Patch{ISBN: &noISBN, OutOfPrint: &inPrint, Pages: &zeroPages}

	// act
	result := revisebook.Decide(givenBookInCatalog(original), revisebook.BuildPatchCommand("book-1", patch, core.SystemActor, fakeClock))

	// assert
	require.NoError(t, result.HasError())
	require.True(t, result.HasEventToAppend())
	revised, ok := result.Event.(core.BookDetailsRevised)
	require.True(t, ok)
	assert.Empty(t, revised.ISBN)
	assert.False(t, revised.OutOfPrint)
	assert.Zero(t, revised.Pages)
	assert.Equal(t, "signed copy", revised.Notes)
	assert.Equal(t, "Refactoring", revised.Title)
}

func Test_Decide_WithPatch_AppliesOnTopOfTheLatestRevision(t *testing.T) {
	// arrange
	original := givenDetails("Refactoring", 448)
	revised := original
	revised.Notes = "second edition"
	history := append(givenBookInCatalog(original), core.BuildBookDetailsRevised("book-1", revised, fakeClock.Add(-time.Minute)))
	title := "Refactoring, 2nd Edition"

	// act
	result := revisebook.Decide(history, revisebook.BuildPatchCommand("book-1", revisebook.Patch{Title: &title}, core.SystemActor, fakeClock))

	// assert
	require.True(t, result.HasEventToAppend())
	event, ok := result.Event.(core.BookDetailsRevised)
	require.True(t, ok)
	assert.Equal(t, title, event.Title)
	assert.Equal(t, "second edition", event.Notes)
}

func Test_Decide_WithEmptyPatch_IsIdempotent(t *testing.T) {
	// act
	result := revisebook.Decide(
		givenBookInCatalog(givenDetails("Refactoring", 448)),
		revisebook.BuildPatchCommand("book-1", revisebook.Patch{}, core.SystemActor, fakeClock),
	)

	// assert
	assert.False(t, result.HasEventToAppend())
	assert.NoError(t, result.HasError())
}

/*** helpers ***/

func givenDetails(title string, pages int) core.BookDetails {
	return core.BookDetails{
		Title:       title,
		ReleaseDate: time.Date(2018, 11, 20, 0, 0, 0, 0, time.UTC),
		Pages:       pages,
	}.Normalized()
}

func givenBookInCatalog(details core.BookDetails) core.DomainEvents {
	return core.DomainEvents{core.BuildBookAddedToCatalog("book-1", details, fakeClock.Add(-time.Hour))}
}
