package revisebook

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

// Patch changes only the fields that are set. A set field with a zero value clears it,
// e.g. an empty ISBN or OutOfPrint = false.
type Patch struct {
	Title        *string
	ShortName    *string
	ISBN         *core.ISBNString
	ReleaseDate  *time.Time
	Pages        *int
	CostPrice    *float64
	RetailPrice  *float64
	Currency     *string
	BookType     *core.BookType
	Copies       *int
	Notes        *string
	Description  *string
	OutOfPrint   *bool
	ReaderRating *float64
	CategoryID   *core.CategoryIDString
	PublisherID  *core.PartnerIDString
	AuthorIDs    *[]core.PartnerIDString
}

// ApplyTo returns a copy of details with the set fields of the patch.
func (p Patch) ApplyTo(details core.BookDetails) core.BookDetails {
	apply(&details.Title, p.Title)
	apply(&details.ShortName, p.ShortName)
	apply(&details.ISBN, p.ISBN)
	apply(&details.ReleaseDate, p.ReleaseDate)
	apply(&details.Pages, p.Pages)
	apply(&details.CostPrice, p.CostPrice)
	apply(&details.RetailPrice, p.RetailPrice)
	apply(&details.Currency, p.Currency)
	apply(&details.BookType, p.BookType)
	apply(&details.Copies, p.Copies)
	apply(&details.Notes, p.Notes)
	apply(&details.Description, p.Description)
	apply(&details.OutOfPrint, p.OutOfPrint)
	apply(&details.ReaderRating, p.ReaderRating)
	apply(&details.CategoryID, p.CategoryID)
	apply(&details.PublisherID, p.PublisherID)

	if p.AuthorIDs != nil {
		details.AuthorIDs = append([]core.PartnerIDString(nil), *p.AuthorIDs...)
	}

	return details
}

func apply[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}
