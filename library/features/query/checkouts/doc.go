// Package checkouts lists the rents of books, or shows a single one.
//
// A rent starts when a book is borrowed, ends as returned when the book comes back, and ends as
// lost when a borrowed book is marked lost.
package checkouts
