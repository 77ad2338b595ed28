package listbooks

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

// BookInfo is one row of the catalog search.
type BookInfo struct {
	BookID           core.BookIDString
	DisplayName      string
	Title            string
	ISBN             core.ISBNString
	ReleaseDate      time.Time
	AgeDays          int
	State            core.BookState
	Active           bool
	PublisherID      core.PartnerIDString
	PublisherCountry string
}

// Books represents the query result of a catalog search.
type Books struct {
	Books          []BookInfo
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r Books) GetSequenceNumber() uint {
	return r.SequenceNumber
}
