package togglebookarchive

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrBorrowedBookCannotBeArchived is returned when archiving a book that is out on a rent.
var ErrBorrowedBookCannotBeArchived = fmt.Errorf("%w: a borrowed book can not be archived", core.ErrInvalidValue)

type state struct {
	bookIsInCatalog bool
	bookIsActive    bool
	bookIsBorrowed  bool
}

// Decide implements the business logic of toggling the archive flag of a book.
// Archived books are hidden from the catalog listing and can not be borrowed.
//
// Business Rules:
//
//	GIVEN: A book in the catalog with BookID
//	WHEN: ToggleBookArchive command is received
//	THEN: BookArchiveToggled event with the flipped active flag is generated
//	ERROR: the book is not in the catalog
//	ERROR: the book is active and currently borrowed
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if s.bookIsActive && s.bookIsBorrowed {
		return fail(command, ErrBorrowedBookCannotBeArchived)
	}

	return core.SuccessDecision(core.BuildBookArchiveToggled(command.BookID, !s.bookIsActive, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildTogglingBookArchiveFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
				s.bookIsActive = true
			}

		case core.BookArchiveToggled:
			if e.BookID == bookID {
				s.bookIsActive = e.Active
			}

		case core.BookBorrowed:
			if e.BookID == bookID {
				s.bookIsBorrowed = true
			}

		case core.BookReturned:
			if e.BookID == bookID {
				s.bookIsBorrowed = false
			}

		case core.BookStateChanged:
			if e.BookID == bookID {
				s.bookIsBorrowed = e.ToState == core.BookStateBorrowed
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for the events of the book that decide about archiving.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookArchiveToggledEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookStateChangedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
