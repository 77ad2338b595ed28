package bookdetails

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

// BookView is a book together with the values derived from its history and its partners.
type BookView struct {
	core.Book
	Found            bool
	DisplayName      string
	AgeDays          int
	CategoryName     string
	BorrowPeriodDays int
	PublisherName    string
	PublisherCity    string
	PublisherCountry string
	AuthorNames      []string
	DueDate          time.Time
	Overdue          bool
	SequenceNumber   uint
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r BookView) GetSequenceNumber() uint {
	return r.SequenceNumber
}
