package definecategory

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "DefineCategory"
)

// Command represents the intent to define a book category.
type Command struct {
	Category   core.Category
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(category core.Category, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		Category:   category,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
