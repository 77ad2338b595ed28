package core

import (
	"time"
)

// PartnerCountryChangedEventType is the event type identifier.
const PartnerCountryChangedEventType = "PartnerCountryChanged"

// PartnerCountryChanged represents when the country of a partner was changed,
// e.g. by setting the publisher country of a book.
type PartnerCountryChanged struct {
	PartnerID   PartnerIDString
	CountryCode string
	OccurredAt  OccurredAtTS
}

// BuildPartnerCountryChanged creates a new PartnerCountryChanged event.
func BuildPartnerCountryChanged(partnerID PartnerIDString, countryCode string, occurredAt time.Time) PartnerCountryChanged {
	return PartnerCountryChanged{
		PartnerID:   partnerID,
		CountryCode: countryCode,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PartnerCountryChanged) IsEventType() string {
	return PartnerCountryChangedEventType
}

// HasOccurredAt returns when this event occurred.
func (e PartnerCountryChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PartnerCountryChanged) IsErrorEvent() bool {
	return false
}
