package revisebook

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "ReviseBook"
)

// Command represents the intent to change the descriptive details of a book.
// With a Patch, the details are the current ones of the book with the patch applied,
// otherwise Details replace them completely.
type Command struct {
	BookID     core.BookIDString
	Details    core.BookDetails
	Patch      *Patch
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

// BuildPatchCommand creates a Command that changes only the fields set in the patch.
func BuildPatchCommand(bookID core.BookIDString, patch Patch, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Patch:      &patch,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
