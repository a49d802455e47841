package courier

import (
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned by Validate for a nil or zero-value Courier.
var ErrCourierIsNotConstructed = errs.NewValueIsRequiredError("courier")

// Courier is the aggregate root for a single courier: identity, name, transport,
// current location and availability.
//
// Invariants:
//   - name is never empty
//   - transport is always a catalog entry, held by value
//   - location is always inside the grid
//   - status is Free or Busy; a new courier is Free
//
// version is the optimistic-concurrency token loaded from storage. The domain never
// changes it; the repository compares and bumps it on update.
type Courier struct {
	id        kernel.UUID
	name      string
	transport Transport
	location  kernel.Location
	status    Status
	version   int
	guard     guard.ConstructorGuard
}

// NewCourier creates a Free courier with a fresh identity. transportName is resolved
// through the catalog (see TransportFromName). Failures of independent arguments are
// joined into one error.
//
// Parameters:
//   - name: display name, must not be blank
//   - transportName: catalog name, case-insensitive ("pedestrian", "bicycle", "car")
//   - location: starting cell, must be constructed
//
// Returns:
//   - *Courier: a Free courier with version 0
//   - error: ValueIsRequiredError for a blank name or missing location,
//     ObjectNotFoundError for an unknown transport
//
// Example:
//
//	loc, _ := kernel.NewLocation(1, 1)
//	c, err := courier.NewCourier("Ivan", "bicycle", loc)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Speed(), c.IsFree()) // 2 true
func NewCourier(name, transportName string, location kernel.Location) (*Courier, error) {
	c := &Courier{
		id:     kernel.NewUUID(),
		status: Free,
		guard:  guard.NewConstructorGuard(),
	}

	transport, transportErr := TransportFromName(transportName)
	if err := errors.Join(
		c.setName(name),
		transportErr,
		c.setLocation(location),
	); err != nil {
		return nil, err
	}
	c.transport = transport

	return c, nil
}

// RestoreCourier rebuilds a courier from storage.
func RestoreCourier(
	id kernel.UUID,
	name string,
	transport Transport,
	location kernel.Location,
	status Status,
	version int,
) (*Courier, error) {
	c := &Courier{
		id:      id,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		c.setName(name),
		transport.Validate(),
		c.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	c.transport = transport
	c.status = status

	return c, nil
}

// Validate reports ErrCourierIsNotConstructed for a nil courier or one built without
// NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Courier) Name() string {
	return c.name
}

// Transport returns the catalog entry the courier moves with.
func (c *Courier) Transport() Transport {
	return c.transport
}

// Speed is a shortcut for Transport().Speed().
func (c *Courier) Speed() int {
	return c.transport.speed
}

// Location returns the current position on the grid.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// Status returns Free or Busy.
func (c *Courier) Status() Status {
	return c.status
}

// Version returns the optimistic-concurrency token the courier was loaded with.
func (c *Courier) Version() int {
	return c.version
}

// IsFree reports whether the courier can take an order.
func (c *Courier) IsFree() bool {
	return c.status == Free
}

// CalculateTimeToLocation returns the number of ticks needed to reach target:
// Manhattan distance divided by speed. The result is fractional, so a car three
// cells away needs 1.0 and a bicycle the same distance away needs 1.5.
func (c *Courier) CalculateTimeToLocation(target kernel.Location) (float64, error) {
	distance, err := c.location.Distance(target)
	if err != nil {
		return 0, err
	}

	return float64(distance) / float64(c.transport.speed), nil
}

// Move advances the courier one tick toward target. The speed budget is spent on the
// X axis first and whatever is left goes to the Y axis, so a single call never covers
// more than Speed() cells and never overshoots.
//
// Returns an error only when target is missing; status is not changed.
//
// Example:
//
//	// a bicycle (speed 2) at (1,1) heading for (2,5)
//	_ = c.Move(kernel.MustNewLocation(2, 5))
//	fmt.Println(c.Location()) // Location(2,2): one step on X, the rest on Y
func (c *Courier) Move(target kernel.Location) error {
	if err := target.Validate(); err != nil {
		return err
	}

	budget := c.transport.speed

	dx := clamp(int(target.X())-int(c.location.X()), budget)
	budget -= absInt(dx)
	dy := clamp(int(target.Y())-int(c.location.Y()), budget)

	if dx == 0 && dy == 0 {
		return nil
	}

	next, err := kernel.NewLocation(
		c.location.X()+kernel.Coordinate(dx),
		c.location.Y()+kernel.Coordinate(dy),
	)
	if err != nil {
		return err
	}

	c.location = next
	return nil
}

// SetBusy marks the courier as delivering. A Busy courier refuses with
// a DomainRuleViolationError coded CodeCourierAlreadyBusy.
func (c *Courier) SetBusy() error {
	next, err := c.status.SetBusy()
	if err != nil {
		return err
	}
	c.status = next
	return nil
}

// CanSetBusy reports what SetBusy would return without changing the courier.
func (c *Courier) CanSetBusy() error {
	_, err := c.status.SetBusy()
	return err
}

// SetFree returns the courier to the dispatch pool. It is idempotent.
func (c *Courier) SetFree() {
	c.status = Free
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

// clamp limits delta to [-limit, limit].
func clamp(delta, limit int) int {
	return max(-limit, min(delta, limit))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
