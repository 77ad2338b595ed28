package core

import (
	"time"
)

// PartnerRegisteredEventType is the event type identifier.
const PartnerRegisteredEventType = "PartnerRegistered"

// PartnerRegistered represents when a publisher, author or member person was registered.
type PartnerRegistered struct {
	Partner
	OccurredAt OccurredAtTS
}

// BuildPartnerRegistered creates a new PartnerRegistered event.
func BuildPartnerRegistered(partner Partner, occurredAt time.Time) PartnerRegistered {
	return PartnerRegistered{
		Partner:    partner,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PartnerRegistered) IsEventType() string {
	return PartnerRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PartnerRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PartnerRegistered) IsErrorEvent() bool {
	return false
}
