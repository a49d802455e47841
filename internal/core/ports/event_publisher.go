package ports

import (
	"context"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
)

// OrderEventType names a change in an order's lifecycle.
type OrderEventType string

const (
	// OrderAssigned is emitted when dispatch commits a courier for an order.
	OrderAssigned  OrderEventType = "order.assigned"
	// OrderCompleted is emitted when a courier reaches the delivery point.
	OrderCompleted OrderEventType = "order.completed"
)

// OrderEvent is published after the transaction that produced it has committed.
type OrderEvent struct {
	Type       OrderEventType
	OrderID    kernel.UUID
	CourierID  kernel.UUID
	OccurredAt time.Time
}

// EventPublisher delivers order events to interested parties. Delivery is best effort:
// a failed publish never rolls back the state change behind it.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
