package changepublishercountry

import (
	"fmt"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// ErrBookHasNoPublisher is returned for books without a publisher partner.
var ErrBookHasNoPublisher = fmt.Errorf("%w: book has no publisher", core.ErrMissingValue)

type state struct {
	bookIsInCatalog bool
	publisherID     core.PartnerIDString
	countries       map[core.PartnerIDString]string
}

// Decide implements the business logic of setting a book's publisher country.
//
// Business Rules:
//
//	GIVEN: A book in the catalog with a registered publisher
//	WHEN: ChangePublisherCountry command is received
//	THEN: PartnerCountryChanged event is generated for the publisher
//	ERROR: the book is not in the catalog
//	ERROR: the book has no publisher or the publisher is not registered
//	ERROR: the country code is not two letters
//	IDEMPOTENCY: If the publisher already has this country, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID)

	if !s.bookIsInCatalog {
		return fail(command, fmt.Errorf("%w: book %s", core.ErrNotFound, command.BookID))
	}

	if s.publisherID == "" {
		return fail(command, ErrBookHasNoPublisher)
	}

	current, registered := s.countries[s.publisherID]
	if !registered {
		return fail(command, fmt.Errorf("%w: publisher %s", core.ErrNotFound, s.publisherID))
	}

	country, err := core.NormalizeCountryCode(command.CountryCode)
	if err != nil {
		return fail(command, err)
	}

	if country == current {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildPartnerCountryChanged(s.publisherID, country, command.OccurredAt))
}

func fail(command Command, err error) core.DecisionResult {
	event := core.BuildChangingPublisherCountryFailed(command.BookID, err.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.IsEventType(), err))
}

func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{countries: make(map[core.PartnerIDString]string)}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = true
				s.publisherID = e.PublisherID
			}

		case core.BookDetailsRevised:
			if e.BookID == bookID {
				s.publisherID = e.PublisherID
			}

		case core.BookRemovedFromCatalog:
			if e.BookID == bookID {
				s.bookIsInCatalog = false
			}

		case core.PartnerRegistered:
			s.countries[e.PartnerID] = e.CountryCode

		case core.PartnerCountryChanged:
			s.countries[e.PartnerID] = e.CountryCode
		}
	}

	return s
}

// BuildEventFilter creates the filter for the book's publisher reference and all partner countries.
// The publisher is only known after projecting, so the partner events are not narrowed down.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsRevisedEventType,
			core.BookRemovedFromCatalogEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
		OrMatching().
		AnyEventTypeOf(
			core.PartnerRegisteredEventType,
			core.PartnerCountryChangedEventType,
		).
		Finalize()
}
