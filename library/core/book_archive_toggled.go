package core

import (
	"time"
)

// BookArchiveToggledEventType is the event type identifier.
const BookArchiveToggledEventType = "BookArchiveToggled"

// BookArchiveToggled represents archiving (Active=false) or unarchiving (Active=true) a book.
type BookArchiveToggled struct {
	BookID     BookIDString
	Active     bool
	OccurredAt OccurredAtTS
}

// BuildBookArchiveToggled creates a new BookArchiveToggled event.
func BuildBookArchiveToggled(bookID BookIDString, active bool, occurredAt time.Time) BookArchiveToggled {
	return BookArchiveToggled{
		BookID:     bookID,
		Active:     active,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookArchiveToggled) IsEventType() string {
	return BookArchiveToggledEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookArchiveToggled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookArchiveToggled) IsErrorEvent() bool {
	return false
}
