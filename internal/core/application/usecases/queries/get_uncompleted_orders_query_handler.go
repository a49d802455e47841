package queries

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads active orders with raw SQL.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler reading from db.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle returns created and assigned orders, oldest first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location_x,
			location_y,
			status,
			courier_id
		FROM orders
		WHERE status <> ?
		ORDER BY created_at, id
	`, order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                 OrderView
			id                   uuid.UUID
			courierID            uuid.NullUUID
			locationX, locationY int8
		)

		if err = rows.Scan(&id, &locationX, &locationY, &view.Status, &courierID); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}

		if view.Location, err = kernel.NewLocation(kernel.Coordinate(locationX), kernel.Coordinate(locationY)); err != nil {
			return nil, err
		}

		if courierID.Valid {
			assigned, idErr := kernel.UUIDFrom(courierID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			view.CourierID = &assigned
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
