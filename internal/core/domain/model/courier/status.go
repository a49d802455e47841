package courier

import (
	"fmt"

	"courierdispatch/internal/pkg/errs"
)

// Status is the availability of a courier for new orders.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	// Free couriers take part in dispatch.
	Free
	// Busy couriers are delivering an order.
	Busy
)

// Rule codes carried by DomainRuleViolationError.
const (
	// CodeCourierAlreadyBusy is reported when SetBusy is called on a Busy courier.
	CodeCourierAlreadyBusy = "courier.already.busy"
)

var statusNames = map[Status]string{
	Free: "free",
	Busy: "busy",
}

// ParseStatus maps the persisted name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a courier status", name))
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
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a courier status", s))
	}
	return nil
}

// SetBusy returns the state after taking an order. Only a Free courier may become Busy.
func (s Status) SetBusy() (Status, error) {
	if s == Busy {
		return s, errs.NewDomainRuleViolationError(CodeCourierAlreadyBusy, "courier is already busy")
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return Busy, nil
}
