package addbook

import (
	"context"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell"
)

// CommandHandler runs Query -> Unmarshal -> Decide -> Append for AddBook commands.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{eventStore: eventStore}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle checks the actor's permission and executes the command with retry on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := core.Authorize(command.Actor, core.PermissionManageCatalog); err != nil {
		return shell.RejectedResult(), err
	}

	decide := func(history core.DomainEvents) core.DecisionResult {
		return Decide(history, command)
	}

	return shell.HandleCommand(
		ctx,
		h.eventStore,
		BuildEventFilter(command.Details.CategoryID),
		command.Actor,
		decide,
		h.retryOptions...,
	)
}
