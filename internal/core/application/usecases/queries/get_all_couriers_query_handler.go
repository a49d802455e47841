package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads the courier list with raw SQL.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler reading from db.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle returns couriers sorted by name, then id. An empty table yields an empty,
// non-nil slice.
func (h GetAllCouriersQueryHandler) Handle(ctx context.Context, query GetAllCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT` + courierColumns + `
		FROM couriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierView, 0)
	for rows.Next() {
		view, scanErr := scanCourier(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		couriers = append(couriers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
