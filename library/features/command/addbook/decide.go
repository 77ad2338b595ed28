package addbook

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

type state struct {
	bookAlreadyAdded  bool
	categoryIsDefined bool
	uniqueKeys        map[string]core.BookIDString
}

// Decide implements the business logic of adding a book to the catalog.
//
// Business Rules:
//
//	GIVEN: A book with BookID and its details
//	WHEN: AddBook command is received
//	THEN: BookAddedToCatalog event is generated, the book is a draft
//	ERROR: any validation error of the details (missing title, invalid ISBN, release date in the future, ...)
//	ERROR: the category is not defined
//	ERROR: another book with the same title and release date is in the catalog
//	IDEMPOTENCY: If a book with this BookID was already added, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID, command.Details.CategoryID)

	if s.bookAlreadyAdded {
		return core.IdempotentDecision()
	}

	details := command.Details.Normalized()

	if err := details.Validate(command.OccurredAt); err != nil {
		return fail(command, err)
	}

	if details.CategoryID != "" && !s.categoryIsDefined {
		return fail(command, fmt.Errorf("%w: category %s", core.ErrNotFound, details.CategoryID))
	}

	if _, taken := s.uniqueKeys[details.UniqueKey()]; taken {
		return fail(command, fmt.Errorf("%w: %s", core.ErrDuplicateTitleDate, details.DisplayName()))
	}

	return core.SuccessDecision(core.BuildBookAddedToCatalog(command.BookID, details, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildAddingBookFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString, categoryID core.CategoryIDString) state {
	s := state{uniqueKeys: make(map[string]core.BookIDString)}
	keyOf := make(map[core.BookIDString]string)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookAlreadyAdded = true
			}
			keyOf[e.BookID] = e.UniqueKey()
			s.uniqueKeys[e.UniqueKey()] = e.BookID

		case core.BookDetailsRevised:
			delete(s.uniqueKeys, keyOf[e.BookID])
			keyOf[e.BookID] = e.UniqueKey()
			s.uniqueKeys[e.UniqueKey()] = e.BookID

		case core.BookRemovedFromCatalog:
			delete(s.uniqueKeys, keyOf[e.BookID])
			delete(keyOf, e.BookID)

		case core.CategoryDefined:
			if e.CategoryID == categoryID {
				s.categoryIsDefined = true
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for all catalog entries, which the uniqueness rule needs,
// plus the definition of the referenced category.
func BuildEventFilter(categoryID core.CategoryIDString) eventstore.Filter {
	books := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookRemovedFromCatalogEventType,
		)

	if categoryID == "" {
		return books.Finalize()
	}

	return books.
		OrMatching().
		AnyEventTypeOf(core.CategoryDefinedEventType).
		AndAnyPredicateOf(eventstore.P("CategoryID", categoryID)).
		Finalize()
}
