package listbooks

import (
	"cmp"
	"slices"
	"strings"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Project implements the catalog search. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The history of all books and partners
//	WHEN: ListBooks query is executed
//	THEN: Books is returned with every book matching the text and all predicates
//	EXCLUDES: Removed books, and archived books unless IncludeArchived is set
func Project(history core.DomainEvents, query Query, maxSequence uint) Books { //nolint:gocognit // one case per relevant event type
	books := make(map[core.BookIDString]core.Book)
	countries := make(map[core.PartnerIDString]string)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			books[e.BookID] = core.Book{BookID: e.BookID}.Evolve(e)

		case core.BookRemovedFromCatalog:
			delete(books, e.BookID)

		case core.PartnerRegistered:
			countries[e.PartnerID] = e.CountryCode

		case core.PartnerCountryChanged:
			countries[e.PartnerID] = e.CountryCode

		case core.BookDetailsRevised:
			evolve(books, e.BookID, e)

		case core.BookStateChanged:
			evolve(books, e.BookID, e)

		case core.BookBorrowed:
			evolve(books, e.BookID, e)

		case core.BookReturned:
			evolve(books, e.BookID, e)

		case core.BookArchiveToggled:
			evolve(books, e.BookID, e)
		}
	}

	infos := make([]BookInfo, 0, len(books))
	for _, book := range books {
		info := BookInfo{
			BookID:           book.BookID,
			DisplayName:      book.DisplayName(),
			Title:            book.Title,
			ISBN:             book.ISBN,
			ReleaseDate:      book.ReleaseDate,
			AgeDays:          core.AgeDays(book.ReleaseDate, query.Today),
			State:            book.Lifecycle.State,
			Active:           book.Active,
			PublisherID:      book.PublisherID,
			PublisherCountry: countries[book.PublisherID],
		}

		if matches(book, info, query) {
			infos = append(infos, info)
		}
	}

	slices.SortFunc(infos, func(a, b BookInfo) int {
		return cmp.Or(
			b.ReleaseDate.Compare(a.ReleaseDate),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.BookID, b.BookID),
		)
	})

	return Books{
		Books:          infos,
		Count:          len(infos),
		SequenceNumber: maxSequence,
	}
}

func evolve(books map[core.BookIDString]core.Book, bookID core.BookIDString, event core.DomainEvent) {
	if book, ok := books[bookID]; ok {
		books[bookID] = book.Evolve(event)
	}
}

func matches(book core.Book, info BookInfo, query Query) bool {
	if !book.Active && !query.IncludeArchived {
		return false
	}

	if query.Text != "" && !containsFold(query.Text, book.Title, book.ShortName, book.ISBN) {
		return false
	}

	for _, predicate := range query.Predicates {
		switch predicate.Field {
		case core.SearchFieldReleaseDate:
			if !predicate.MatchesDate(book.ReleaseDate) {
				return false
			}
		case core.SearchFieldPublisherCountry:
			if !predicate.MatchesText(info.PublisherCountry) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func containsFold(text string, fields ...string) bool {
	text = strings.ToLower(text)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}

	return false
}

// BuildEventFilter creates the filter for all book and partner events.
func BuildEventFilter() eventstore.Filter {
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
			core.PartnerRegisteredEventType,
			core.PartnerCountryChangedEventType,
		).
		Finalize()
}
