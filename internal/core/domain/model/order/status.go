package order

import (
	"fmt"

	"courierdispatch/internal/pkg/errs"
)

// Status is the stage of an order's lifecycle.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	// Created orders wait for dispatch.
	Created
	// Assigned orders have a courier on the way.
	Assigned
	// Completed orders were delivered. Final.
	Completed
)

// Rule codes carried by DomainRuleViolationError.
const (
	// CodeOrderAlreadyAssigned is reported when Assign is called outside Created.
	CodeOrderAlreadyAssigned = "order.already.assigned"
	// CodeOrderNotAssigned is reported when Complete is called outside Assigned.
	CodeOrderNotAssigned     = "order.not.assigned"
)

var statusNames = map[Status]string{
	Created:   "created",
	Assigned:  "assigned",
	Completed: "completed",
}

// ParseStatus maps the persisted name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", name))
}

// String returns the persisted name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and any value outside the defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not an order status", s))
	}
	return nil
}

// HasCourier reports whether orders in this state carry a courier id.
func (s Status) HasCourier() bool {
	return s == Assigned || s == Completed
}

// Assign is the Created -> Assigned transition. Any other source state is refused.
func (s Status) Assign() (Status, error) {
	if s != Created {
		return s, errs.NewDomainRuleViolationError(CodeOrderAlreadyAssigned,
			fmt.Sprintf("order in status %s cannot be assigned", s))
	}
	return Assigned, nil
}

// Complete is the Assigned -> Completed transition.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return s, errs.NewDomainRuleViolationError(CodeOrderNotAssigned,
			fmt.Sprintf("order in status %s cannot be completed", s))
	}
	return Completed, nil
}
