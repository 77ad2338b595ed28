package partnerbooks

import (
	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	queryType = "PartnerBooks"
)

// Query represents the intent to list the books a partner published or authored.
type Query struct {
	PartnerID core.PartnerIDString
	Actor     core.Actor
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(partnerID core.PartnerIDString, actor core.Actor) Query {
	return Query{
		PartnerID: partnerID,
		Actor:     actor,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
