package commands

import (
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned for a zero-value CreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand puts a new order into the dispatch queue. The caller owns the id
// (it usually comes from the upstream basket service); the delivery point is drawn by
// the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires a non-nil order id.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
func NewCreateOrderCommand(orderID kernel.UUID) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate rejects commands not built by NewCreateOrderCommand.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
