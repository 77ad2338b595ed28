// Package removebook removes a book from the catalog. Borrowed books cannot be removed.
package removebook
