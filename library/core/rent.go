package core

import (
	"time"
)

// RentState is the state of a single rent of a book.
type RentState string

const (
	RentStateOngoing  RentState = "ongoing"
	RentStateReturned RentState = "returned"
	RentStateLost     RentState = "lost"
)

// Rent links a book to the member who borrowed it.
type Rent struct {
	RentID     RentIDString
	BookID     BookIDString
	MemberID   MemberIDString
	State      RentState
	RentDate   time.Time
	DueDate    time.Time
	ReturnDate time.Time
}

// IsOverdue is true for an ongoing rent whose due date has passed.
func (r Rent) IsOverdue(today time.Time) bool {
	return r.State == RentStateOngoing && !r.DueDate.IsZero() && ToDate(today).After(ToDate(r.DueDate))
}
