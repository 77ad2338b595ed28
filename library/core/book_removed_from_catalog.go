package core

import (
	"time"
)

// BookRemovedFromCatalogEventType is the event type identifier.
const BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"

// BookRemovedFromCatalog represents when a book was deleted from the catalog.
type BookRemovedFromCatalog struct {
	BookID     BookIDString
	OccurredAt OccurredAtTS
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
func BuildBookRemovedFromCatalog(bookID BookIDString, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		BookID:     bookID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRemovedFromCatalog) IsEventType() string {
	return BookRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRemovedFromCatalog) IsErrorEvent() bool {
	return false
}
