package checkouts

import (
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// RentInfo is a rent with the names a librarian needs to read it.
type RentInfo struct {
	core.Rent
	BookTitle    string
	MemberNumber string
	MemberName   string
	Overdue      bool
}

// Checkouts represents the query result containing rents, the latest first.
type Checkouts struct {
	Rents          []RentInfo
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r Checkouts) GetSequenceNumber() uint {
	return r.SequenceNumber
}
