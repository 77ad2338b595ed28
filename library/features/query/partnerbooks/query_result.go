package partnerbooks

import (
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// BookRef points to a book in the catalog.
type BookRef struct {
	BookID      core.BookIDString
	DisplayName string
}

// PartnerBooks represents the query result with the books of one partner.
type PartnerBooks struct {
	Partner        core.Partner
	Found          bool
	Published      []BookRef
	Authored       []BookRef
	AuthoredCount  int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r PartnerBooks) GetSequenceNumber() uint {
	return r.SequenceNumber
}
