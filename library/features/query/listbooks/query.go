package listbooks

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	queryType = "ListBooks"
)

// Query represents the intent to search the catalog.
type Query struct {
	Text            string
	Predicates      []core.SearchPredicate
	IncludeArchived bool
	Actor           core.Actor
	Today           time.Time
}

// QueryOption refines a Query.
type QueryOption func(*Query)

// WithPredicates adds search predicates, all of them must match.
func WithPredicates(predicates ...core.SearchPredicate) QueryOption {
	return func(q *Query) {
		q.Predicates = append(q.Predicates, predicates...)
	}
}

// WithArchived includes archived books in the result.
func WithArchived() QueryOption {
	return func(q *Query) {
		q.IncludeArchived = true
	}
}

// BuildQuery creates a new Query for the search text.
func BuildQuery(text string, actor core.Actor, today time.Time, opts ...QueryOption) Query {
	query := Query{
		Text:  strings.TrimSpace(text),
		Actor: actor,
		Today: core.ToDate(today),
	}

	for _, opt := range opts {
		opt(&query)
	}

	return query
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
