package removebook

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to remove a book from the catalog.
type Command struct {
	BookID     core.BookIDString
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
