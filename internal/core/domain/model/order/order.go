package order

import (
	"errors"
	"fmt"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned by Validate for a nil or zero-value Order.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("order")

// Order is a delivery request: where to go and who is going there.
//
// The courier id is a plain reference, set once by Assign. Orders never own couriers.
type Order struct {
	id        kernel.UUID
	location  kernel.Location
	courierID *kernel.UUID
	status    Status
	guard     guard.ConstructorGuard
}

// NewOrder creates an order in Created status without a courier.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewLocation(5, 5))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // created
func NewOrder(id kernel.UUID, location kernel.Location) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. courierID must be present exactly
// when the status says the order has a courier.
func RestoreOrder(id kernel.UUID, location kernel.Location, status Status, courierID *kernel.UUID) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	switch {
	case status.HasCourier() && courierID == nil:
		return nil, errs.NewValueIsRequiredErrorWithCause("courierId",
			fmt.Errorf("order in status %s must reference a courier", status))
	case !status.HasCourier() && courierID != nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("courierId",
			fmt.Errorf("order in status %s cannot reference a courier", status))
	case courierID != nil:
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		ref := *courierID
		o.courierID = &ref
	}

	o.status = status
	return o, nil
}

// Validate reports ErrOrderIsNotConstructed for a nil order or one built without
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier supplied by the client.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Location returns the delivery location.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the assigned courier, or nil before assignment.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	ref := *o.courierID
	return &ref
}

// Assign records c as the courier delivering this order. It succeeds once: an order
// that left Created refuses with CodeOrderAlreadyAssigned and stays untouched.
func (o *Order) Assign(c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	id := c.ID()
	o.courierID = &id
	o.status = next
	return nil
}

// CanAssign reports what Assign would return for a valid courier, without side effects.
func (o *Order) CanAssign() error {
	_, err := o.status.Assign()
	return err
}

// Complete marks the order delivered.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}
