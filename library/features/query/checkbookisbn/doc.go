// Package checkbookisbn implements the explicit ISBN check of a book.
//
// Unlike the validation on write, a missing ISBN is reported here too, as a warning. An invalid
// ISBN is reported as an error. Neither outcome changes the book.
package checkbookisbn
