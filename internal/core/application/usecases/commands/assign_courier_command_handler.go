package commands

import (
	"context"
	"errors"
	"time"

	"courierdispatch/internal/core/domain/services"
	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/pkg/errs"
)

// DefaultAssignAttempts bounds how many fresh snapshots one assignment may try when
// concurrent writers keep bumping courier versions.
const DefaultAssignAttempts = 3

var (
	// ErrNoFreeCouriersFound means a Created order exists but every courier is Busy.
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	// ErrNoOrderFound means no order is waiting in Created status.
	ErrNoOrderFound        = errors.New("no order found")
)

// AssignCourierCommandHandler runs one dispatch round: the oldest Created order, the
// current snapshot of free couriers and the DispatchService decision, all inside one
// transaction. A stale courier write (errs.ErrVersionIsInvalid) discards the round
// and starts over with a new snapshot, up to maxAttempts times.
//
// Example:
//
//	err := handler.Handle(ctx, NewAssignCourierCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound), errors.Is(err, ErrNoFreeCouriersFound):
//	    // nothing to do this tick
//	case err != nil:
//	    return err
//	}
type AssignCourierCommandHandler struct {
	uowFactory  UoWFactory
	dispatcher  services.DispatchService
	publisher   ports.EventPublisher
	metrics     ports.DispatchMetrics
	maxAttempts int
	now         func() time.Time
}

// NewAssignCourierCommandHandler wires the handler. maxAttempts below 1 falls back to
// DefaultAssignAttempts.
//
// Parameters:
//   - uowFactory: opens the transaction spanning the order and the couriers
//   - dispatcher: picks the courier
//   - publisher: receives OrderAssigned after commit
//   - metrics: records the outcome and ETA of every round
//   - maxAttempts: rounds allowed on version conflicts
func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.DispatchService,
	publisher ports.EventPublisher,
	metrics ports.DispatchMetrics,
	maxAttempts int,
) AssignCourierCommandHandler {
	if maxAttempts < 1 {
		maxAttempts = DefaultAssignAttempts
	}

	return AssignCourierCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		publisher:   publisher,
		metrics:     metrics,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Handle assigns at most one order. It returns ErrNoOrderFound or ErrNoFreeCouriersFound
// when there is nothing to do, and errs.ErrVersionIsInvalid once every attempt lost a
// race. The event is published only after a successful commit.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		var event ports.OrderEvent
		event, err = h.assign(ctx)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			h.metrics.ObserveDispatch(ports.DispatchVersionConflict)
			continue
		}

		h.metrics.ObserveDispatch(outcomeOf(err))
		if err != nil {
			return err
		}

		_ = h.publisher.Publish(ctx, event)
		return nil
	}

	return err
}

func (h AssignCourierCommandHandler) assign(ctx context.Context) (ports.OrderEvent, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.OrderEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	order, err := ordersRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.OrderEvent{}, ErrNoOrderFound
	}
	if err != nil {
		return ports.OrderEvent{}, err
	}

	couriers, err := courierRepo.GetAllFree(ctx)
	if err != nil {
		return ports.OrderEvent{}, err
	}
	if len(couriers) == 0 {
		return ports.OrderEvent{}, ErrNoFreeCouriersFound
	}

	winner, err := h.dispatcher.Dispatch(order, couriers)
	if errors.Is(err, services.ErrSuitableCourierNotFound) {
		return ports.OrderEvent{}, ErrNoFreeCouriersFound
	}
	if err != nil {
		return ports.OrderEvent{}, err
	}

	eta, err := winner.CalculateTimeToLocation(order.Location())
	if err != nil {
		return ports.OrderEvent{}, err
	}

	if err = courierRepo.Update(ctx, winner); err != nil {
		return ports.OrderEvent{}, err
	}

	if err = ordersRepo.Update(ctx, order); err != nil {
		return ports.OrderEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.OrderEvent{}, err
	}

	h.metrics.ObserveETA(winner.Transport().Name(), eta)

	return ports.OrderEvent{
		Type:       ports.OrderAssigned,
		OrderID:    order.ID(),
		CourierID:  winner.ID(),
		OccurredAt: h.now().UTC(),
	}, nil
}

func outcomeOf(err error) ports.DispatchOutcome {
	switch {
	case err == nil:
		return ports.DispatchAssigned
	case errors.Is(err, ErrNoOrderFound):
		return ports.DispatchNoOrders
	case errors.Is(err, ErrNoFreeCouriersFound):
		return ports.DispatchNoFreeCouriers
	default:
		return ports.DispatchFailed
	}
}
