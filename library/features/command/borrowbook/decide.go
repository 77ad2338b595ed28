package borrowbook

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

var (
	ErrBookArchived    = fmt.Errorf("%w: book is archived", core.ErrInvalidValue)
	ErrMemberNotActive = fmt.Errorf("%w: membership is not active", core.ErrInvalidValue)
)

type state struct {
	bookIsInCatalog    bool
	bookIsActive       bool
	lifecycle          core.BookLifecycle
	categoryID         core.CategoryIDString
	categories         map[core.CategoryIDString]core.Category
	currentRentID      core.RentIDString
	memberIsRegistered bool
	member             core.Member
}

// Decide implements the business logic of borrowing a book.
//
// Business Rules:
//
//	GIVEN: An available book with BookID and a member with MemberID
//	WHEN: BorrowBook command is received
//	THEN: BookBorrowed event is generated, the due date comes from the category's borrow period
//	ERROR: the book is not in the catalog
//	ERROR: the book is archived
//	ERROR: the member is not registered or the membership is not active
//	ERROR: the book is not available
//	IDEMPOTENCY: If the book is already borrowed under this RentID, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID, command.MemberID)

	if s.lifecycle.State == core.BookStateBorrowed && s.currentRentID == command.RentID {
		return core.IdempotentDecision()
	}

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if !s.bookIsActive {
		return fail(command, ErrBookArchived)
	}

	if !s.memberIsRegistered {
		return fail(command, fmt.Errorf("%w: member %s", core.ErrNotFound, command.MemberID))
	}

	if !s.member.IsActive(command.OccurredAt) {
		return fail(command, ErrMemberNotActive)
	}

	var category *core.Category
	if c, ok := s.categories[s.categoryID]; ok {
		category = &c
	}

	next, err := s.lifecycle.MakeBorrowed(category, command.OccurredAt)
	if err != nil {
		return fail(command, err)
	}

	return core.SuccessDecision(
		core.BuildBookBorrowed(command.BookID, command.RentID, command.MemberID, next.DueDate, command.OccurredAt),
	)
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildBorrowingBookFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString, memberID core.MemberIDString) state { //nolint:gocognit // one case per relevant event type
	s := state{
		lifecycle:  core.NewBookLifecycle(),
		categories: make(map[core.CategoryIDString]core.Category),
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
				s.bookIsActive = true
				s.categoryID = e.CategoryID
			}

		case core.BookDetailsRevised:
			if e.BookID == bookID {
				s.categoryID = e.CategoryID
			}

		case core.BookArchiveToggled:
			if e.BookID == bookID {
				s.bookIsActive = e.Active
			}

		case core.BookStateChanged:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: e.ToState, DueDate: e.DueDate}
			}

		case core.BookBorrowed:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: core.BookStateBorrowed, DueDate: e.DueDate}
				s.currentRentID = e.RentID
			}

		case core.BookReturned:
			if e.BookID == bookID {
				s.lifecycle = core.BookLifecycle{State: core.BookStateAvailable}
				s.currentRentID = ""
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}

		case core.CategoryDefined:
			s.categories[e.CategoryID] = e.Category

		case core.MemberRegistered:
			if e.MemberID == memberID {
				s.memberIsRegistered = true
				s.member = core.Member{
					MemberID:     e.MemberID,
					Partner:      core.Partner{PartnerID: e.PartnerID},
					MemberNumber: e.MemberNumber,
					Since:        e.Since,
					End:          e.End,
				}
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for the book's events, the category definitions and the member registration.
func BuildEventFilter(bookID core.BookIDString, memberID core.MemberIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookArchiveToggledEventType,
			core.BookStateChangedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(core.CategoryDefinedEventType).
		OrMatching().
		AnyEventTypeOf(core.MemberRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", memberID)).
		Finalize()
}
