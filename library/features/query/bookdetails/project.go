package bookdetails

import (
	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Project builds the detail view of one book. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A book with BookID
//	WHEN: BookDetails query is executed
//	THEN: BookView is returned with the book, its category and its partners
//	INCLUDES: age in days, publisher city and country, author names, due date
//	EXCLUDES: Nothing, Found is false if the book was never added or was removed
func Project(history core.DomainEvents, query Query, maxSequence uint) BookView {
	book := core.Book{BookID: query.BookID}
	found := false
	partners := make(map[core.PartnerIDString]core.Partner)
	categories := make(map[core.CategoryIDString]core.Category)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			found = found || e.BookID == query.BookID

		case core.BookRemovedFromCatalog:
			found = found && e.BookID != query.BookID

		case core.PartnerRegistered:
			partners[e.PartnerID] = e.Partner

		case core.PartnerCountryChanged:
			partner := partners[e.PartnerID]
			partner.CountryCode = e.CountryCode
			partners[e.PartnerID] = partner

		case core.CategoryDefined:
			categories[e.CategoryID] = e.Category
		}

		book = book.Evolve(event)
	}

	if !found {
		return BookView{Book: core.Book{BookID: query.BookID}, SequenceNumber: maxSequence}
	}

	category, hasCategory := categories[book.CategoryID]
	publisher := partners[book.PublisherID]

	view := BookView{
		Book:             book,
		Found:            true,
		DisplayName:      book.DisplayName(),
		AgeDays:          core.AgeDays(book.ReleaseDate, query.Today),
		CategoryName:     category.Name,
		BorrowPeriodDays: core.DefaultBorrowPeriodDays,
		PublisherName:    publisher.Name,
		PublisherCity:    publisher.City,
		PublisherCountry: publisher.CountryCode,
		AuthorNames:      make([]string, 0, len(book.AuthorIDs)),
		DueDate:          book.Lifecycle.DueDate,
		SequenceNumber:   maxSequence,
	}

	if hasCategory {
		view.BorrowPeriodDays = category.BorrowPeriod()
	}

	for _, authorID := range book.AuthorIDs {
		if author, ok := partners[authorID]; ok {
			view.AuthorNames = append(view.AuthorNames, author.Name)
		}
	}

	if book.Lifecycle.State == core.BookStateBorrowed && !book.Lifecycle.DueDate.IsZero() {
		view.Overdue = core.ToDate(query.Today).After(book.Lifecycle.DueDate)
	}

	return view
}

// BuildEventFilter creates the filter for the events of one book plus all categories and partners.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookStateChangedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.BookArchiveToggledEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(
			core.CategoryDefinedEventType,
			core.PartnerRegisteredEventType,
			core.PartnerCountryChangedEventType,
		).
		Finalize()
}
