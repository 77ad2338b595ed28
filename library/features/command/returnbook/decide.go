package returnbook

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrBookNotBorrowed is returned for a book that has no ongoing rent.
var ErrBookNotBorrowed = fmt.Errorf("%w: book is not borrowed", core.ErrInvalidValue)

type state struct {
	bookIsInCatalog bool
	lifecycle       core.BookLifecycle
	rentID          core.RentIDString
	memberID        core.MemberIDString
}

// Decide implements the business logic of returning a book.
//
// Business Rules:
//
//	GIVEN: A borrowed book with BookID
//	WHEN: ReturnBook command is received
//	THEN: BookReturned event is generated for the ongoing rent
//	ERROR: the book is not in the catalog
//	ERROR: the book is not borrowed
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if s.lifecycle.State != core.BookStateBorrowed {
		return fail(command, ErrBookNotBorrowed)
	}

	if _, err := s.lifecycle.MakeAvailable(command.OccurredAt); err != nil {
		return fail(command, err)
	}

	return core.SuccessDecision(core.BuildBookReturned(command.BookID, s.rentID, s.memberID, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildReturningBookFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{lifecycle: core.NewBookLifecycle()}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
			}

		case core.BookStateChanged:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: e.ToState, DueDate: e.DueDate}
			}

		case core.BookBorrowed:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: core.BookStateBorrowed, DueDate: e.DueDate}
				s.rentID = e.RentID
				s.memberID = e.MemberID
			}

		case core.BookReturned:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: core.BookStateAvailable}
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for the lifecycle events of the book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookStateChangedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
