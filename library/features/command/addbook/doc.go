// Package addbook implements the Add Book to Catalog use case.
//
// A new book enters the catalog as a draft. The details are validated as a whole, so the
// caller sees all violations at once, and the title together with the release date must be
// unique among the books in the catalog.
package addbook
