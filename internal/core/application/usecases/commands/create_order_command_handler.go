package commands

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores new orders at a location drawn from rnd.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	rnd        kernel.RandomSource
}

// NewCreateOrderCommandHandler creates a handler writing through uowFactory and
// drawing delivery points from rnd.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, rnd kernel.RandomSource) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		rnd:        rnd,
	}
}

// Handle stores the order in Created status. A duplicate id is reported by the
// repository, usually as gorm.ErrDuplicatedKey.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewRandomLocation(h.rnd)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), location)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
