package checkbookisbn

import (
	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Outcome is the result of an ISBN check.
type Outcome string

const (
	OutcomeValid   Outcome = "valid"
	OutcomeMissing Outcome = "missing"
	OutcomeInvalid Outcome = "invalid"
)

// ISBNCheck represents the query result of an ISBN check.
type ISBNCheck struct {
	BookID         core.BookIDString
	Found          bool
	ISBN           core.ISBNString
	Outcome        Outcome
	Message        string
	SequenceNumber uint
}

// IsWarning is true if the check only warns, i.e. the ISBN is missing.
func (r ISBNCheck) IsWarning() bool {
	return r.Outcome == OutcomeMissing
}

// GetSequenceNumber returns the sequence number of the last event in the event history that was used to build the projection.
func (r ISBNCheck) GetSequenceNumber() uint {
	return r.SequenceNumber
}
