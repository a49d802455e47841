package commands

import (
	"errors"

	"courierdispatch/internal/pkg/guard"
)

// ErrMoveCouriersCommandIsNotConstructed is returned for a zero-value MoveCouriersCommand.
var ErrMoveCouriersCommandIsNotConstructed = errors.New(
	"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
)

// MoveCouriersCommand advances every courier with an assigned order by one tick.
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewMoveCouriersCommand creates the command. It carries no input.
func NewMoveCouriersCommand() MoveCouriersCommand {
	return MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate rejects commands not built by NewMoveCouriersCommand.
func (c *MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
