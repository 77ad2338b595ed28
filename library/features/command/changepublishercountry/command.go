package changepublishercountry

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "ChangePublisherCountry"
)

// Command represents the intent to set the publisher country shown for a book.
type Command struct {
	BookID      core.BookIDString
	CountryCode string
	Actor       core.Actor
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, countryCode string, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		BookID:      bookID,
		CountryCode: countryCode,
		Actor:       actor,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
