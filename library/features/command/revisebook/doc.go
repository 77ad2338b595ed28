// Package revisebook implements the Revise Book use case: the details of a catalog book change,
// with the same validation as adding a book.
package revisebook
