package queries

import (
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

// ErrGetCourierQueryIsNotConstructed is returned for a zero-value GetCourierQuery.
var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery loads a single courier by id.
type GetCourierQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewGetCourierQuery requires a non-nil courier id.
func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierQuery{}, err
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the requested id.
func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate rejects queries not built by NewGetCourierQuery.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}
