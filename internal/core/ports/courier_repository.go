// Package ports declares what the core needs from the outside world: storage,
// transactions, event delivery and dispatch telemetry. Adapters implement them.
package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
)

// CourierRepository stores courier aggregates.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update overwrites the stored courier. Implementations compare the version the
	// aggregate was loaded with and return errs.VersionIsInvalidError when another
	// writer got there first; callers are expected to reload and retry.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get returns errs.ObjectNotFoundError when no courier has the id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllFree returns a snapshot of Free couriers in a stable order (by name, then id).
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)
}
