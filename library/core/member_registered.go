package core

import (
	"time"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered represents when a partner became a library member.
type MemberRegistered struct {
	MemberID     MemberIDString
	PartnerID    PartnerIDString
	MemberNumber string
	Since        time.Time
	End          time.Time
	DateOfBirth  time.Time
	OccurredAt   OccurredAtTS
}

// BuildMemberRegistered creates a new MemberRegistered event.
func BuildMemberRegistered(member Member, occurredAt time.Time) MemberRegistered {
	return MemberRegistered{
		MemberID:     member.MemberID,
		PartnerID:    member.PartnerID,
		MemberNumber: member.MemberNumber,
		Since:        ToDate(member.Since),
		End:          ToDate(member.End),
		DateOfBirth:  ToDate(member.DateOfBirth),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberRegistered) IsEventType() string {
	return MemberRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
