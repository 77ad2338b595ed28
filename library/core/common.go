package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper functions here ...

// BookIDString represents a book identifier
type BookIDString = string

// MemberIDString represents a member identifier
type MemberIDString = string

// PartnerIDString represents a partner (publisher, author, member person) identifier
type PartnerIDString = string

// CategoryIDString represents a book category identifier
type CategoryIDString = string

// RentIDString represents a rent identifier
type RentIDString = string

// ISBNString represents an ISBN as entered by a user
type ISBNString = string

// EventTypeString represents the type of event
type EventTypeString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// ToDate strips the clock part, dates like release or due dates are calendar days in UTC.
func ToDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	return ToDate(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(ToDate(b).Sub(ToDate(a)).Hours() / 24)
}
