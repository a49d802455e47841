package postgres

import (
	"courierdispatch/internal/adapters/out/postgres/courierrepo"
	"courierdispatch/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{&courierrepo.CourierDTO{}, &orderrepo.OrderDTO{}}
}

// Migrate brings the schema up to date with the DTO definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
