// Package queries holds the read side: queries return flat read models built straight
// from SQL, without loading aggregates.
package queries

import (
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

// ErrGetAllCouriersQueryIsNotConstructed is returned for a zero-value GetAllCouriersQuery.
var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery lists every courier, free or busy.
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCouriersQuery creates the query. It carries no input.
func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate rejects queries not built by NewGetAllCouriersQuery.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// CourierView is the read model shared by the courier queries.
type CourierView struct {
	ID        kernel.UUID
	Name      string
	Transport string
	Speed     int
	Location  kernel.Location
	Status    string
}
