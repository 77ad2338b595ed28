package revisebook

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

type state struct {
	book              core.Book
	bookIsInCatalog   bool
	categoryIsDefined map[core.CategoryIDString]bool
	uniqueKeys        map[string]core.BookIDString
}

// Decide implements the business logic of revising the details of a book.
//
// Business Rules:
//
//	GIVEN: A book in the catalog with BookID
//	WHEN: ReviseBook command is received
//	THEN: BookDetailsRevised event is generated
//	PATCH: only the fields set in the patch change, on top of the details in the history
//	ERROR: the book is not in the catalog
//	ERROR: any validation error of the details
//	ERROR: pages are changed while the book is lost
//	ERROR: the category is not defined
//	ERROR: another book with the same title and release date is in the catalog
//	IDEMPOTENCY: If the details do not change, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	details := command.Details
	if command.Patch != nil {
		details = command.Patch.ApplyTo(s.book.BookDetails)
	}
	details = details.Normalized()

	if details.Equal(s.book.BookDetails) {
		return core.IdempotentDecision()
	}

	if err := details.Validate(command.OccurredAt); err != nil {
		return fail(command, err)
	}

	if err := s.book.CheckRevision(details); err != nil {
		return fail(command, err)
	}

	if details.CategoryID != "" && !s.categoryIsDefined[details.CategoryID] {
		return fail(command, fmt.Errorf("%w: category %s", core.ErrNotFound, details.CategoryID))
	}

	if owner, taken := s.uniqueKeys[details.UniqueKey()]; taken && owner != command.BookID {
		return fail(command, fmt.Errorf("%w: %s", core.ErrDuplicateTitleDate, details.DisplayName()))
	}

	return core.SuccessDecision(core.BuildBookDetailsRevised(command.BookID, details, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildRevisingBookFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{
		categoryIsDefined: make(map[core.CategoryIDString]bool),
		uniqueKeys:        make(map[string]core.BookIDString),
	}
	keyOf := make(map[core.BookIDString]string)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
				s.book = core.Book{BookID: e.BookID, BookDetails: e.BookDetails, Lifecycle: core.NewBookLifecycle()}
			}
			keyOf[e.BookID] = e.UniqueKey()
			s.uniqueKeys[e.UniqueKey()] = e.BookID

		case core.BookDetailsRevised:
			if e.BookID == bookID {
				s.book.BookDetails = e.BookDetails
			}
			delete(s.uniqueKeys, keyOf[e.BookID])
			keyOf[e.BookID] = e.UniqueKey()
			s.uniqueKeys[e.UniqueKey()] = e.BookID

		case core.BookStateChanged:
			if e.BookID == bookID {
				s.book.Lifecycle = core.BookLifecycle{State: e.ToState, DueDate: e.DueDate}
			}

		case core.BookBorrowed:
			if e.BookID == bookID {
				s.book.Lifecycle = core.BookLifecycle{State: core.BookStateBorrowed, DueDate: e.DueDate}
			}

		case core.BookReturned:
			if e.BookID == bookID {
				s.book.Lifecycle = core.BookLifecycle{State: core.BookStateAvailable}
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}
			delete(s.uniqueKeys, keyOf[e.BookID])
			delete(keyOf, e.BookID)

		case core.CategoryDefined:
			s.categoryIsDefined[e.CategoryID] = true
		}
	}

	return s
}

// BuildEventFilter creates the filter for the lifecycle of the book, all catalog entries for the
// uniqueness rule and the category definitions.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookRemovedFromCatalogEventType,
			core.CategoryDefinedEventType,
		).
		OrMatching().
		AnyEventTypeOf(
			core.BookStateChangedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
