package bookdetails

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	queryType = "BookDetails"
)

// Query represents the intent to show one book with everything that is known about it.
type Query struct {
	BookID core.BookIDString
	Actor  core.Actor
	Today  time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(bookID core.BookIDString, actor core.Actor, today time.Time) Query {
	return Query{
		BookID: bookID,
		Actor:  actor,
		Today:  core.ToDate(today),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
