package changebookstate

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrBorrowNeedsMember is returned when the target state is borrowed.
var ErrBorrowNeedsMember = fmt.Errorf("%w: borrowing needs a member, use the borrow operation", core.ErrInvalidValue)

type state struct {
	bookIsInCatalog bool
	lifecycle       core.BookLifecycle
	rentID          core.RentIDString
	memberID        core.MemberIDString
}

// Decide implements the business logic of changing the lifecycle state of a book.
//
// Business Rules:
//
//	GIVEN: A book in the catalog with BookID
//	WHEN: ChangeBookState command is received with the target state available or lost
//	THEN: BookStateChanged event is generated
//	THEN: BookReturned event is generated instead if a borrowed book is made available
//	ERROR: the book is not in the catalog
//	ERROR: the target state is borrowed
//	ERROR: the transition is not allowed, including staying in the same state
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if _, err := core.ParseBookState(string(command.ToState)); err != nil {
		return fail(command, err)
	}

	if command.ToState == core.BookStateBorrowed {
		return fail(command, ErrBorrowNeedsMember)
	}

	next, err := s.lifecycle.ChangeState(command.ToState, nil, command.OccurredAt)
	if err != nil {
		return fail(command, err)
	}

	if s.lifecycle.State == core.BookStateBorrowed && next.State == core.BookStateAvailable {
		return core.SuccessDecision(core.BuildBookReturned(command.BookID, s.rentID, s.memberID, command.OccurredAt))
	}

	return core.SuccessDecision(core.BuildBookStateChanged(command.BookID, s.lifecycle, next, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildChangingBookStateFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{lifecycle: core.NewBookLifecycle()}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
				s.lifecycle = core.NewBookLifecycle()
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
				s.rentID = ""
				s.memberID = ""
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for all lifecycle events of the book.
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
