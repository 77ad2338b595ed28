// Package borrowbook implements the Borrow Book use case.
//
// An available book is borrowed by an active member. This opens an ongoing rent and sets the
// due date from the borrow period of the book's category, 10 days if it has none.
package borrowbook
