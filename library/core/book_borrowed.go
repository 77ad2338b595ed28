package core

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a member borrowed an available book, which opens a rent.
type BookBorrowed struct {
	BookID     BookIDString
	RentID     RentIDString
	MemberID   MemberIDString
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(
	bookID BookIDString,
	rentID RentIDString,
	memberID MemberIDString,
	dueDate time.Time,
	occurredAt time.Time,
) BookBorrowed {

	return BookBorrowed{
		BookID:     bookID,
		RentID:     rentID,
		MemberID:   memberID,
		DueDate:    ToDate(dueDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookBorrowed) IsErrorEvent() bool {
	return false
}
