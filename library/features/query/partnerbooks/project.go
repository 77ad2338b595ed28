package partnerbooks

import (
	"cmp"
	"slices"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Project implements the query logic for the books of a partner. This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A partner with PartnerID
//	WHEN: PartnerBooks query is executed
//	THEN: PartnerBooks is returned with the published and the authored books
//	EXCLUDES: Books removed from the catalog
func Project(history core.DomainEvents, query Query, maxSequence uint) PartnerBooks {
	result := PartnerBooks{
		Partner:        core.Partner{PartnerID: query.PartnerID},
		SequenceNumber: maxSequence,
	}
	books := make(map[core.BookIDString]core.BookDetails)

	for _, event := range history {
		switch e := event.(type) {
		case core.PartnerRegistered:
			if e.PartnerID == query.PartnerID {
				result.Partner = e.Partner
				result.Found = true
			}

		case core.PartnerCountryChanged:
			if e.PartnerID == query.PartnerID {
				result.Partner.CountryCode = e.CountryCode
			}

		case core.BookAddedToCatalog:
			books[e.BookID] = e.BookDetails

		case core.BookDetailsRevised:
			books[e.BookID] = e.BookDetails

		case core.BookRemovedFromCatalog:
			delete(books, e.BookID)
		}
	}

	result.Published = make([]BookRef, 0)
	result.Authored = make([]BookRef, 0)

	for bookID, details := range books {
		ref := BookRef{BookID: bookID, DisplayName: details.DisplayName()}

		if details.PublisherID == query.PartnerID {
			result.Published = append(result.Published, ref)
		}

		if slices.Contains(details.AuthorIDs, query.PartnerID) {
			result.Authored = append(result.Authored, ref)
		}
	}

	byName := func(a, b BookRef) int {
		return cmp.Or(cmp.Compare(a.DisplayName, b.DisplayName), cmp.Compare(a.BookID, b.BookID))
	}
	slices.SortFunc(result.Published, byName)
	slices.SortFunc(result.Authored, byName)
	result.AuthoredCount = len(result.Authored)

	return result
}

// BuildEventFilter creates the filter for the partner and all catalog events, since the
// author lists of books can not be matched by a predicate.
func BuildEventFilter(partnerID core.PartnerIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.PartnerRegisteredEventType,
			core.PartnerCountryChangedEventType,
		).
		AndAnyPredicateOf(eventstore.P("PartnerID", partnerID)).
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		Finalize()
}
