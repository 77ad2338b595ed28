package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-books-go/eventstore"
	"github.com/AntonStoeckl/library-books-go/library/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshal[core.BookAddedToCatalog](payload)
	case core.BookDetailsRevisedEventType:
		return unmarshal[core.BookDetailsRevised](payload)
	case core.BookStateChangedEventType:
		return unmarshal[core.BookStateChanged](payload)
	case core.BookBorrowedEventType:
		return unmarshal[core.BookBorrowed](payload)
	case core.BookReturnedEventType:
		return unmarshal[core.BookReturned](payload)
	case core.BookArchiveToggledEventType:
		return unmarshal[core.BookArchiveToggled](payload)
	case core.BookRemovedFromCatalogEventType:
		return unmarshal[core.BookRemovedFromCatalog](payload)
	case core.CategoryDefinedEventType:
		return unmarshal[core.CategoryDefined](payload)
	case core.PartnerRegisteredEventType:
		return unmarshal[core.PartnerRegistered](payload)
	case core.PartnerCountryChangedEventType:
		return unmarshal[core.PartnerCountryChanged](payload)
	case core.MemberRegisteredEventType:
		return unmarshal[core.MemberRegistered](payload)

	case core.AddingBookFailedEventType:
		return unmarshal[core.AddingBookFailed](payload)
	case core.RevisingBookFailedEventType:
		return unmarshal[core.RevisingBookFailed](payload)
	case core.ChangingBookStateFailedEventType:
		return unmarshal[core.ChangingBookStateFailed](payload)
	case core.BorrowingBookFailedEventType:
		return unmarshal[core.BorrowingBookFailed](payload)
	case core.ReturningBookFailedEventType:
		return unmarshal[core.ReturningBookFailed](payload)
	case core.TogglingBookArchiveFailedEventType:
		return unmarshal[core.TogglingBookArchiveFailed](payload)
	case core.RemovingBookFailedEventType:
		return unmarshal[core.RemovingBookFailed](payload)
	case core.ChangingPublisherCountryFailedEventType:
		return unmarshal[core.ChangingPublisherCountryFailed](payload)
	case core.DefiningCategoryFailedEventType:
		return unmarshal[core.DefiningCategoryFailed](payload)
	case core.RegisteringPartnerFailedEventType:
		return unmarshal[core.RegisteringPartnerFailed](payload)
	case core.RegisteringMemberFailedEventType:
		return unmarshal[core.RegisteringMemberFailed](payload)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
