package borrowbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/features/command/borrowbook"
)

var fakeClock = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func Test_Decide_Success_WithDefaultBorrowPeriod(t *testing.T) {
	// arrange
	history := append(givenAvailableBook(""), givenMember(time.Time{}))

	// act
	result := borrowbook.Decide(history, givenCommand("rent-1"))

	// assert
	require.NoError(t, result.HasError())
	event, ok := result.Event.(core.BookBorrowed)
	require.True(t, ok, "expected BookBorrowed, got %T", result.Event)
	assert.Equal(t, "rent-1", event.RentID)
	assert.Equal(t, "member-1", event.MemberID)
	assert.Equal(t, time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), event.DueDate)
}

func Test_Decide_Success_WithCategoryBorrowPeriod(t *testing.T) {
	// arrange
	history := core.DomainEvents{
		core.BuildCategoryDefined(core.Category{CategoryID: "cat-1", Name: "Reference", BorrowPeriodDays: 3}, fakeClock.Add(-72*time.Hour)),
	}
	history = append(history, givenAvailableBook("cat-1")...)
	history = append(history, givenMember(time.Time{}))

	// act
	result := borrowbook.Decide(history, givenCommand("rent-1"))

	// assert
	event, ok := result.Event.(core.BookBorrowed)
	require.True(t, ok, "expected BookBorrowed, got %T", result.Event)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), event.DueDate)
}

func Test_Decide_Idempotent_WhenAlreadyBorrowedUnderSameRent(t *testing.T) {
	// arrange
	history := append(givenAvailableBook(""), givenMember(time.Time{}),
		core.BuildBookBorrowed("book-1", "rent-1", "member-1", fakeClock.AddDate(0, 0, 10), fakeClock.Add(-time.Minute)))

	// act
	result := borrowbook.Decide(history, givenCommand("rent-1"))

	// assert
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		history     core.DomainEvents
		expectedErr error
	}{
		{
			name:        "book not in catalog",
			history:     core.DomainEvents{givenMember(time.Time{})},
			expectedErr: core.ErrNotFound,
		},
		{
			name:        "member not registered",
			history:     givenAvailableBook(""),
			expectedErr: core.ErrNotFound,
		},
		{
			name:        "membership ended",
			history:     append(givenAvailableBook(""), givenMember(fakeClock.AddDate(0, 0, -1))),
			expectedErr: borrowbook.ErrMemberNotActive,
		},
		{
			name: "book archived",
			history: append(givenAvailableBook(""), givenMember(time.Time{}),
				core.BuildBookArchiveToggled("book-1", false, fakeClock.Add(-time.Minute))),
			expectedErr: borrowbook.ErrBookArchived,
		},
		{
			name: "book still a draft",
			history: core.DomainEvents{
				core.BuildBookAddedToCatalog("book-1", core.BookDetails{Title: "Accelerate"}, fakeClock.Add(-48*time.Hour)),
				givenMember(time.Time{}),
			},
			expectedErr: core.ErrTransitionNotAllowed,
		},
		{
			name: "book borrowed by someone else",
			history: append(givenAvailableBook(""), givenMember(time.Time{}),
				core.BuildBookBorrowed("book-1", "rent-0", "member-0", fakeClock.AddDate(0, 0, 10), fakeClock.Add(-time.Minute))),
			expectedErr: core.ErrTransitionNotAllowed,
		},
		{
			name: "book lost",
			history: append(givenAvailableBook(""), givenMember(time.Time{}),
				core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateAvailable}, core.BookLifecycle{State: core.BookStateLost}, fakeClock.Add(-time.Minute))),
			expectedErr: core.ErrTransitionNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := borrowbook.Decide(tc.history, givenCommand("rent-1"))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			assert.IsType(t, core.BorrowingBookFailed{}, result.Event)
		})
	}
}

/*** helpers ***/

func givenCommand(rentID string) borrowbook.Command {
	return borrowbook.BuildCommand("book-1", "member-1", rentID, core.BuildActor("anna", "library_user"), fakeClock)
}

func givenAvailableBook(categoryID string) core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookAddedToCatalog("book-1", core.BookDetails{Title: "Accelerate", CategoryID: categoryID}, fakeClock.Add(-48*time.Hour)),
		core.BuildBookStateChanged("book-1", core.BookLifecycle{State: core.BookStateDraft}, core.BookLifecycle{State: core.BookStateAvailable}, fakeClock.Add(-47*time.Hour)),
	}
}

func givenMember(end time.Time) core.MemberRegistered {
	return core.BuildMemberRegistered(core.Member{
		MemberID:     "member-1",
		Partner:      core.Partner{PartnerID: "partner-1", Name: "Anna"},
		MemberNumber: "M-0001",
		Since:        fakeClock.AddDate(-1, 0, 0),
		End:          end,
	}, fakeClock.Add(-100*time.Hour))
}
