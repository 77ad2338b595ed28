package registermember

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "RegisterMember"
)

// Command represents the intent to make a registered partner a library member.
type Command struct {
	Member     core.Member
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(member core.Member, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		Member:     member,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
