package checkbookisbn

import (
	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	queryType = "CheckBookISBN"
)

// Query represents the intent to check the ISBN of a book.
type Query struct {
	BookID core.BookIDString
	Actor  core.Actor
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(bookID core.BookIDString, actor core.Actor) Query {
	return Query{
		BookID: bookID,
		Actor:  actor,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
