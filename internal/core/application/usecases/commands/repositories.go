// Package commands holds the write side of the application: creating couriers and
// orders, assigning couriers, and advancing couriers on every tick. Each handler
// validates its command, opens one unit of work and commits it once.
package commands

import (
	"context"

	"courierdispatch/internal/core/ports"
)

// Unit of work views narrowed to what each handler touches.
type (
	// TxManager is the transaction half of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory hands out an order repository bound to the current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory hands out a courier repository bound to the current transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW is used by handlers that write orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates one OrderUoW per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW is used by handlers that write couriers only.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates one CourierUoW per command.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans both aggregates. Dispatch and movement change an order and its
	// courier together, so both writes share one transaction:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil { ... }
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	... uow.OrderRepository(), uow.CourierRepository() ...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates one UoW per command.
	UoWFactory interface {
		Create() UoW
	}
)
