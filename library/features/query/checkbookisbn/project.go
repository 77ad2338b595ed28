package checkbookisbn

import (
	"errors"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Project checks the current ISBN of the book. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A book with BookID
//	WHEN: CheckBookISBN query is executed
//	THEN: ISBNCheck is returned with the outcome valid, missing (warning) or invalid (error)
func Project(history core.DomainEvents, query Query, maxSequence uint) ISBNCheck {
	var isbn core.ISBNString
	found := false

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == query.BookID {
				found = true
				isbn = e.ISBN
			}

		case core.BookDetailsRevised:
			if e.BookID == query.BookID {
				isbn = e.ISBN
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == query.BookID {
				found = false
			}
		}
	}

	result := ISBNCheck{
		BookID:         query.BookID,
		Found:          found,
		ISBN:           isbn,
		SequenceNumber: maxSequence,
	}

	if !found {
		return result
	}

	err := core.CheckISBN(isbn)
	switch {
	case err == nil:
		result.Outcome = OutcomeValid
	case errors.Is(err, core.ErrMissingValue):
		result.Outcome = OutcomeMissing
		result.Message = err.Error()
	default:
		result.Outcome = OutcomeInvalid
		result.Message = err.Error()
	}

	return result
}

// BuildEventFilter creates the filter for the catalog events of one book.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}
