package commands

import (
	"errors"

	"courierdispatch/internal/pkg/guard"
)

// ErrAssignCourierCommandIsNotConstructed is returned for a zero-value AssignCourierCommand.
var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand dispatches the oldest Created order to the fastest free courier.
type AssignCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates the command. It carries no input.
func NewAssignCourierCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate rejects commands not built by NewAssignCourierCommand.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}
