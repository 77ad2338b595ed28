package core

import (
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a new book was added to the catalog as a draft.
type BookAddedToCatalog struct {
	BookID BookIDString
	BookDetails
	OccurredAt OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(bookID BookIDString, details BookDetails, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		BookID:      bookID,
		BookDetails: details,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
