package core

import (
	"time"
)

// BookStateChangedEventType is the event type identifier.
const BookStateChangedEventType = "BookStateChanged"

// BookStateChanged represents a lifecycle change that is neither a borrow nor a return,
// e.g. draft -> available or borrowed -> lost.
type BookStateChanged struct {
	BookID     BookIDString
	FromState  BookState
	ToState    BookState
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookStateChanged creates a new BookStateChanged event from the lifecycle before and after.
func BuildBookStateChanged(bookID BookIDString, from BookLifecycle, to BookLifecycle, occurredAt time.Time) BookStateChanged {
	return BookStateChanged{
		BookID:     bookID,
		FromState:  from.State,
		ToState:    to.State,
		DueDate:    to.DueDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookStateChanged) IsEventType() string {
	return BookStateChangedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookStateChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookStateChanged) IsErrorEvent() bool {
	return false
}
