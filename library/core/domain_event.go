package core

import (
	"time"
)

// DomainEvents is the history a Decide or Project function works on, oldest first.
type DomainEvents = []DomainEvent

// DomainEvent is a fact about the catalog, a book, a partner or a member.
// Failure events are facts too: a rejected command is recorded with IsErrorEvent() == true.
type DomainEvent interface {
	// IsEventType is the name the event is stored under.
	IsEventType() string

	// HasOccurredAt is the time the command was issued.
	HasOccurredAt() time.Time

	IsErrorEvent() bool
}
