package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// BookType is the binding of a book.
type BookType string

const (
	BookTypePaper      BookType = "paper"
	BookTypeHard       BookType = "hard"
	BookTypeElectronic BookType = "electronic"
	BookTypeOther      BookType = "other"
)

const (
	// DefaultCopies is the number of copies of a newly added book.
	DefaultCopies = 1

	maxReaderRating = 5.0
)

var (
	ErrTitleMissing         = fmt.Errorf("%w: title is required", ErrMissingValue)
	ErrPagesNotPositive     = fmt.Errorf("%w: number of pages must be positive", ErrInvalidValue)
	ErrReleaseDateInFuture  = fmt.Errorf("%w: release date must be in the past", ErrInvalidValue)
	ErrUnknownBookType      = fmt.Errorf("%w: unknown book type", ErrInvalidValue)
	ErrCopiesNegative       = fmt.Errorf("%w: copies must not be negative", ErrInvalidValue)
	ErrPricesNegative       = fmt.Errorf("%w: prices must not be negative", ErrInvalidValue)
	ErrReaderRatingOutRange = fmt.Errorf("%w: reader rating must be between 0 and 5", ErrInvalidValue)
	ErrPagesReadOnly        = fmt.Errorf("%w: pages can not be changed while the book is lost", ErrInvalidValue)
	ErrDuplicateTitleDate   = fmt.Errorf("%w: book title and release date must be unique", ErrAlreadyExists)
)

// ParseBookType returns BookTypeOther for an empty input.
func ParseBookType(s string) (BookType, error) {
	switch bookType := BookType(strings.ToLower(strings.TrimSpace(s))); bookType {
	case "":
		return BookTypeOther, nil
	case BookTypePaper, BookTypeHard, BookTypeElectronic, BookTypeOther:
		return bookType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBookType, s)
	}
}

// BookDetails are the descriptive fields of a book, everything except its lifecycle.
type BookDetails struct {
	Title        string
	ShortName    string
	ISBN         ISBNString
	ReleaseDate  time.Time
	Pages        int
	CostPrice    float64
	RetailPrice  float64
	Currency     string
	BookType     BookType
	Copies       int
	Notes        string
	Description  string
	OutOfPrint   bool
	ReaderRating float64
	CategoryID   CategoryIDString
	PublisherID  PartnerIDString
	AuthorIDs    []PartnerIDString
}

// Validate collects all violations, so a user gets every problem at once.
// Zero pages and a zero release date mean "not given" and are fine.
func (d BookDetails) Validate(today time.Time) error {
	var errs []error

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ErrTitleMissing)
	}

	if d.Pages < 0 {
		errs = append(errs, ErrPagesNotPositive)
	}

	if !d.ReleaseDate.IsZero() && ToDate(d.ReleaseDate).After(ToDate(today)) {
		errs = append(errs, ErrReleaseDateInFuture)
	}

	if err := ValidateISBN(d.ISBN); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseBookType(string(d.BookType)); err != nil {
		errs = append(errs, err)
	}

	if d.Copies < 0 {
		errs = append(errs, ErrCopiesNegative)
	}

	if d.CostPrice < 0 || d.RetailPrice < 0 {
		errs = append(errs, ErrPricesNegative)
	}

	if d.ReaderRating < 0 || d.ReaderRating > maxReaderRating {
		errs = append(errs, ErrReaderRatingOutRange)
	}

	return errors.Join(errs...)
}

// Normalized applies the defaults for book type and copies.
func (d BookDetails) Normalized() BookDetails {
	d.Title = strings.TrimSpace(d.Title)
	d.ISBN = strings.TrimSpace(d.ISBN)
	d.ReleaseDate = ToDate(d.ReleaseDate)

	if d.BookType == "" {
		d.BookType = BookTypeOther
	}

	if d.Copies == 0 {
		d.Copies = DefaultCopies
	}

	return d
}

// Equal compares field by field, dates by instant and author lists by content.
func (d BookDetails) Equal(other BookDetails) bool {
	return d.Title == other.Title &&
		d.ShortName == other.ShortName &&
		d.ISBN == other.ISBN &&
		d.ReleaseDate.Equal(other.ReleaseDate) &&
		d.Pages == other.Pages &&
		d.CostPrice == other.CostPrice &&
		d.RetailPrice == other.RetailPrice &&
		d.Currency == other.Currency &&
		d.BookType == other.BookType &&
		d.Copies == other.Copies &&
		d.Notes == other.Notes &&
		d.Description == other.Description &&
		d.OutOfPrint == other.OutOfPrint &&
		d.ReaderRating == other.ReaderRating &&
		d.CategoryID == other.CategoryID &&
		d.PublisherID == other.PublisherID &&
		slices.Equal(d.AuthorIDs, other.AuthorIDs)
}

// DisplayName is the title followed by the release date, e.g. "Refactoring (2018-11-20)".
func (d BookDetails) DisplayName() string {
	if d.ReleaseDate.IsZero() {
		return d.Title
	}

	return fmt.Sprintf("%s (%s)", d.Title, d.ReleaseDate.Format(time.DateOnly))
}

// UniqueKey is the key for the title and release date uniqueness rule.
func (d BookDetails) UniqueKey() string {
	return strings.ToLower(strings.TrimSpace(d.Title)) + "|" + ToDate(d.ReleaseDate).Format(time.DateOnly)
}

// AgeDays is the number of days since the release. Without a release date the age is 0.
func AgeDays(releaseDate time.Time, today time.Time) int {
	if releaseDate.IsZero() {
		return 0
	}

	return DaysBetween(releaseDate, today)
}

// ReleaseDateForAge is the inverse of AgeDays: the release date a book of that age has.
func ReleaseDateForAge(ageDays int, today time.Time) time.Time {
	return AddDays(today, -ageDays)
}

// Book is a catalog entry with its lifecycle.
type Book struct {
	BookID BookIDString
	BookDetails
	Lifecycle      BookLifecycle
	Active         bool
	LastBorrowDate time.Time
}

// CheckRevision returns ErrPagesReadOnly if revised changes pages of a lost book.
func (b Book) CheckRevision(revised BookDetails) error {
	if b.Lifecycle.State == BookStateLost && revised.Pages != b.Pages {
		return ErrPagesReadOnly
	}

	return nil
}

// Evolve applies an event of this book and returns the new state. Events of other books and
// event types that do not change a book leave it unchanged. Removal is up to the caller.
func (b Book) Evolve(event DomainEvent) Book {
	switch e := event.(type) {
	case BookAddedToCatalog:
		if e.BookID == b.BookID {
			return Book{BookID: e.BookID, BookDetails: e.BookDetails, Lifecycle: NewBookLifecycle(), Active: true}
		}

	case BookDetailsRevised:
		if e.BookID == b.BookID {
			b.BookDetails = e.BookDetails
		}

	case BookStateChanged:
		if e.BookID == b.BookID {
			b.Lifecycle = BookLifecycle{State: e.ToState, DueDate: e.DueDate}
		}

	case BookBorrowed:
		if e.BookID == b.BookID {
			b.Lifecycle = BookLifecycle{State: BookStateBorrowed, DueDate: e.DueDate}
			b.LastBorrowDate = ToDate(e.OccurredAt)
		}

	case BookReturned:
		if e.BookID == b.BookID {
			b.Lifecycle = BookLifecycle{State: BookStateAvailable}
		}

	case BookArchiveToggled:
		if e.BookID == b.BookID {
			b.Active = e.Active
		}
	}

	return b
}
