package borrowbook

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent of a member to borrow a book.
// RentID is chosen by the caller, which makes retries of the same request idempotent.
type Command struct {
	BookID     core.BookIDString
	MemberID   core.MemberIDString
	RentID     core.RentIDString
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID core.BookIDString,
	memberID core.MemberIDString,
	rentID core.RentIDString,
	actor core.Actor,
	occurredAt time.Time,
) Command {

	return Command{
		BookID:     bookID,
		MemberID:   memberID,
		RentID:     rentID,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
