package changebookstate

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "ChangeBookState"
)

// Command represents the intent to move a book to another lifecycle state.
type Command struct {
	BookID     core.BookIDString
	ToState    core.BookState
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, toState core.BookState, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		ToState:    toState,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
