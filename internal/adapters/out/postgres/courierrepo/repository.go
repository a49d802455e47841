// Package courierrepo stores courier aggregates in PostgreSQL through gorm.
package courierrepo

import (
	"context"
	"errors"
	"fmt"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository. Writes are guarded by the
// version column: Update only touches the row when the stored version still matches
// the one the aggregate was read with.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker remembers which aggregates a unit of work has written and the
// version each one was last stored with.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, version int)
	TrackedVersion(id kernel.UUID) (int, bool)
}

// NewGormCourierRepository creates a repository on db. tracker is usually the unit of
// work that owns db.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new courier with its current version, normally 0.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, dto.Version)
	return nil
}

// Update writes the courier and bumps its version. The expected version is the one
// tracked by the unit of work, or the aggregate's own when it was not written yet in
// this transaction.
//
// Returns:
//   - errs.ObjectNotFoundError when the row does not exist
//   - errs.VersionIsInvalidError when another writer changed the row first
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	if tracked, ok := r.tracker.TrackedVersion(aggregate.ID()); ok {
		expected = tracked
	}

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"name":         dto.Name,
			"transport_id": dto.TransportID,
			"location_x":   dto.Location.X,
			"location_y":   dto.Location.Y,
			"status":       dto.Status,
			"version":      expected + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate.ID(), expected)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, expected+1)
	return nil
}

// Get loads a courier by id, returning errs.ObjectNotFoundError when it is missing.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree returns Free couriers ordered by name, then id. Rows are not locked: a
// courier taken concurrently is caught by the version check in Update.
func (r *GormCourierRepository) GetAllFree(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", courier.Free.String()).
		Order("name").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// explainMissedUpdate tells a missing row apart from a lost optimistic-lock race.
func (r *GormCourierRepository) explainMissedUpdate(ctx context.Context, id kernel.UUID, expected int) error {
	var stored CourierDTO
	err := r.db.WithContext(ctx).Select("version").First(&stored, "id = ?", id.Value()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("courier", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionIsInvalidErrorWithCause("courier",
		fmt.Errorf("expected version %d, stored version is %d", expected, stored.Version))
}
