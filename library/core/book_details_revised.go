package core

import (
	"time"
)

// BookDetailsRevisedEventType is the event type identifier.
const BookDetailsRevisedEventType = "BookDetailsRevised"

// BookDetailsRevised carries the complete details after a revision, not only the changed fields.
type BookDetailsRevised struct {
	BookID BookIDString
	BookDetails
	OccurredAt OccurredAtTS
}

// BuildBookDetailsRevised creates a new BookDetailsRevised event.
func BuildBookDetailsRevised(bookID BookIDString, details BookDetails, occurredAt time.Time) BookDetailsRevised {
	return BookDetailsRevised{
		BookID:      bookID,
		BookDetails: details,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookDetailsRevised) IsEventType() string {
	return BookDetailsRevisedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookDetailsRevised) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookDetailsRevised) IsErrorEvent() bool {
	return false
}
