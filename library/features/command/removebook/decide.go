package removebook

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrBorrowedBookCannotBeRemoved is returned when removing a book that is out on a rent.
var ErrBorrowedBookCannotBeRemoved = fmt.Errorf("%w: a borrowed book can not be removed", core.ErrInvalidValue)

type state struct {
	bookWasAdded   bool
	bookIsRemoved  bool
	bookIsBorrowed bool
}

// Decide implements the business logic of removing a book from the catalog.
//
// Business Rules:
//
//	GIVEN: A book in the catalog with BookID
//	WHEN: RemoveBook command is received
//	THEN: BookRemovedFromCatalog event is generated
//	ERROR: the book was never added
//	ERROR: the book is currently borrowed
//	IDEMPOTENCY: If the book was already removed, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if s.bookIsRemoved {
		return core.IdempotentDecision()
	}

	if !s.bookWasAdded {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if s.bookIsBorrowed {
		return fail(command, ErrBorrowedBookCannotBeRemoved)
	}

	return core.SuccessDecision(core.BuildBookRemovedFromCatalog(command.BookID, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildRemovingBookFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookWasAdded = true
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
				s.bookIsRemoved = true
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for the events of the book that decide about its removal.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookStateChangedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
