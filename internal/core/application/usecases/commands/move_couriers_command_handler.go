package commands

import (
	"context"
	"time"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/order"
	"courierdispatch/internal/core/ports"
)

// MoveCouriersCommandHandler runs one simulation tick. Every courier with an Assigned
// order moves toward the delivery point; couriers that arrive complete the order and
// go back to Free. All changes of a tick commit together, and completion events are
// published only after that commit.
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	metrics    ports.DispatchMetrics
	now        func() time.Time
}

// NewMoveCouriersCommandHandler wires the handler with the transaction factory, the
// publisher for OrderCompleted events and the delivery metrics.
func NewMoveCouriersCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	metrics ports.DispatchMetrics,
) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Handle moves every courier of an Assigned order one tick. A courier that reaches the
// delivery point completes its order and becomes Free in the same transaction.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllInAssignedStatus(ctx)
	if err != nil {
		return err
	}

	var completed []ports.OrderEvent
	for _, o := range orders {
		c, getErr := courierRepo.Get(ctx, *o.CourierID())
		if getErr != nil {
			return getErr
		}

		arrived, moveErr := h.step(o, c)
		if moveErr != nil {
			return moveErr
		}

		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}

		if !arrived {
			continue
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}

		completed = append(completed, ports.OrderEvent{
			Type:       ports.OrderCompleted,
			OrderID:    o.ID(),
			CourierID:  c.ID(),
			OccurredAt: h.now().UTC(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range completed {
		h.metrics.ObserveDelivery()
		_ = h.publisher.Publish(ctx, event)
	}

	return nil
}

// step moves c one tick toward o and finishes the delivery on arrival.
func (h *MoveCouriersCommandHandler) step(o *order.Order, c *courier.Courier) (bool, error) {
	if err := c.Move(o.Location()); err != nil {
		return false, err
	}

	arrived, err := c.Location().IsEqual(o.Location())
	if err != nil || !arrived {
		return false, err
	}

	if err = o.Complete(); err != nil {
		return false, err
	}
	c.SetFree()

	return true, nil
}
