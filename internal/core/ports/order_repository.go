package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus returns the oldest order still waiting for a courier,
	// or errs.ObjectNotFoundError when the queue is empty.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error)
}
