package registerpartner

import (
	"time"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

const (
	commandType = "RegisterPartner"
)

// Command represents the intent to register a partner, i.e. a publisher, an author or the person behind a member.
type Command struct {
	Partner    core.Partner
	Actor      core.Actor
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(partner core.Partner, actor core.Actor, occurredAt time.Time) Command {
	return Command{
		Partner:    partner,
		Actor:      actor,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
