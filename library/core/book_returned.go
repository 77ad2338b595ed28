package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a borrowed book came back, which closes its rent.
type BookReturned struct {
	BookID     BookIDString
	RentID     RentIDString
	MemberID   MemberIDString
	ReturnDate time.Time
	OccurredAt OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event, the return date is the day it occurred.
func BuildBookReturned(bookID BookIDString, rentID RentIDString, memberID MemberIDString, occurredAt time.Time) BookReturned {
	return BookReturned{
		BookID:     bookID,
		RentID:     rentID,
		MemberID:   memberID,
		ReturnDate: ToDate(occurredAt),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturned) IsEventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturned) IsErrorEvent() bool {
	return false
}
