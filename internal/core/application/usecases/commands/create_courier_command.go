package commands

import (
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

// ErrCreateCourierCommandIsNotConstructed is returned for a zero-value CreateCourierCommand.
var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a new courier standing at location.
//
// Example:
//
//	loc, _ := kernel.NewLocation(1, 1)
//	cmd, err := NewCreateCourierCommand("Ivan", "bicycle", loc)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name      string
	transport courier.Transport
	location  kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand checks the input up front so the handler never opens a
// transaction for a request that cannot succeed. transport is a catalog name.
func NewCreateCourierCommand(name, transport string, location kernel.Location) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setTransport(transport),
		command.setLocation(location),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate rejects commands not built by NewCreateCourierCommand.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Transport returns the resolved catalog entry.
func (c CreateCourierCommand) Transport() courier.Transport {
	return c.transport
}

// Location returns the starting cell.
func (c CreateCourierCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setTransport(name string) error {
	transport, err := courier.TransportFromName(name)
	if err != nil {
		return err
	}

	c.transport = transport
	return nil
}

func (c *CreateCourierCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
