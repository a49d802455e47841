package courierrepo

import (
	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the row layout of the couriers table.
type CourierDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null;index"`
	TransportID int         `gorm:"type:smallint;not null"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status      string      `gorm:"type:varchar(16);not null;index"`
	Version     int         `gorm:"type:int;not null;default:0"`
}

// TableName sets the gorm table name.
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO is embedded into CourierDTO as location_x and location_y.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint;not null"`
	Y kernel.Coordinate `gorm:"type:smallint;not null"`
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:          aggregate.ID().Value(),
		Name:        aggregate.Name(),
		TransportID: aggregate.Transport().ID(),
		Location: LocationDTO{
			X: aggregate.Location().X(),
			Y: aggregate.Location().Y(),
		},
		Status:  aggregate.Status().String(),
		Version: aggregate.Version(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	transport, err := courier.TransportFromID(dto.TransportID)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	status, err := courier.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, transport, loc, status, dto.Version)
}
