package queries

import (
	"context"

	"courierdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierQueryHandler reads one courier with raw SQL.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler reading from db.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no courier has the requested id.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierView, error) {
	if err := query.Validate(); err != nil {
		return CourierView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+courierColumns+`
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Value()).Rows()
	if err != nil {
		return CourierView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CourierView{}, err
		}
		return CourierView{}, errs.NewObjectNotFoundError("courier", query.CourierID().String())
	}

	return scanCourier(rows)
}
