package queries

import (
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

// ErrGetUncompletedOrdersQueryIsNotConstructed is returned for a zero-value GetUncompletedOrdersQuery.
var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery lists orders that are still waiting for a courier or
// on their way.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates the query. It carries no input.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate rejects queries not built by NewGetUncompletedOrdersQuery.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// OrderView is the read model of an active order. CourierID is nil until the order
// is assigned.
type OrderView struct {
	ID        kernel.UUID
	Location  kernel.Location
	Status    string
	CourierID *kernel.UUID
}
