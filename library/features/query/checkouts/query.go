package checkouts

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	queryType = "Checkouts"
)

// Query represents the intent to list the rents. With a RentID only that rent is returned.
type Query struct {
	RentID core.RentIDString
	Actor  core.Actor
	Today  time.Time
}

// BuildQuery creates a new Query for all rents.
func BuildQuery(actor core.Actor, today time.Time) Query {
	return Query{
		Actor: actor,
		Today: core.ToDate(today),
	}
}

// BuildSingleRentQuery creates a new Query for one rent.
func BuildSingleRentQuery(rentID core.RentIDString, actor core.Actor, today time.Time) Query {
	query := BuildQuery(actor, today)
	query.RentID = rentID

	return query
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
