package addbook

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a new book to the catalog.
type Command struct {
	BookID     core.BookIDString
	Details    core.BookDetails
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, details core.BookDetails, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Details:    details,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
