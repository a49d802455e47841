package services

import (
	"errors"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/order"
	"courierdispatch/internal/pkg/errs"
)

// CodeSuitableCourierNotFound marks a dispatch with no free courier available.
const CodeSuitableCourierNotFound = "dispatch.suitable.courier.not.found"

var (
	// ErrSuitableCourierNotFound is returned when none of the supplied couriers is Free.
	ErrSuitableCourierNotFound = errs.NewDomainRuleViolationError(
		CodeSuitableCourierNotFound, "no free courier can take the order")

	errOrderIsRequired = errs.NewValueIsRequiredError("order")
)

// DispatchService matches one order to the free courier that reaches it first.
// It keeps no state and never touches storage: callers pass a snapshot of couriers
// and persist whatever the service changed.
type DispatchService interface {
	Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error)
}

var _ DispatchService = (*dispatchService)(nil)

type dispatchService struct{}

// NewDispatchService returns the stateless dispatch service. A single instance may be
// shared across goroutines as long as each call gets its own order and couriers.
func NewDispatchService() DispatchService {
	return &dispatchService{}
}

// Dispatch picks the Free courier with the smallest ETA to the order location. Ties
// go to the courier that appears first in couriers. On success the order is assigned
// and the winner set Busy; on any failure neither is modified.
//
// Returns:
//   - *courier.Courier: the assigned courier, already Busy
//   - error: ValueIsRequiredError for a nil order, ValueIsInvalidLengthError for an
//     empty slice, ErrSuitableCourierNotFound when no courier is Free
//
// Example:
//
//	winner, err := services.NewDispatchService().Dispatch(o, couriers)
//	switch {
//	case errors.Is(err, services.ErrSuitableCourierNotFound):
//	    // retry on the next tick
//	case err != nil:
//	    return err
//	}
//	// persist o and winner in the same transaction
func (s *dispatchService) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if o == nil {
		return nil, errOrderIsRequired
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if len(couriers) == 0 {
		return nil, errs.NewValueIsInvalidLengthErrorWithCause("couriers", 0,
			errors.New("at least one courier is required"))
	}

	best, err := s.fastestFree(o, couriers)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(o.CanAssign(), best.CanSetBusy()); err != nil {
		return nil, err
	}
	if err := o.Assign(best); err != nil {
		return nil, err
	}
	if err := best.SetBusy(); err != nil {
		return nil, err
	}

	return best, nil
}

func (s *dispatchService) fastestFree(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		best     *courier.Courier
		bestTime float64
	)

	for _, c := range couriers {
		if c == nil || !c.IsFree() {
			continue
		}

		eta, err := c.CalculateTimeToLocation(o.Location())
		if err != nil {
			return nil, err
		}

		if best == nil || eta < bestTime {
			best = c
			bestTime = eta
		}
	}

	if best == nil {
		return nil, ErrSuitableCourierNotFound
	}

	return best, nil
}
