package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrProcessOrdersCommandIsNotConstructed = errors.New(
	"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
)

// ProcessOrdersCommand triggers one dispatch pass over the pending queue.
// This is a parameterless command: the pass reads the queue and the current
// capability index and starts every fully covered order.
//
// Example:
//
//	cmd := NewProcessOrdersCommand()
//	handler := NewProcessOrdersCommandHandler(uowFactory, indexHolder, observer)
//	started, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("dispatch pass failed: %v", err)
//	}
type ProcessOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessOrdersCommand creates a command to trigger a dispatch pass.
func NewProcessOrdersCommand() ProcessOrdersCommand {
	return ProcessOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrdersCommandIsNotConstructed if validation fails.
func (c *ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}
