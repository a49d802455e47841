package queries

import (
	"database/sql"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const courierColumns = `
	id,
	name,
	transport_id,
	location_x,
	location_y,
	status`

func scanCourier(rows *sql.Rows) (CourierView, error) {
	var (
		view                 CourierView
		id                   uuid.UUID
		transportID          int
		locationX, locationY int8
	)

	if err := rows.Scan(&id, &view.Name, &transportID, &locationX, &locationY, &view.Status); err != nil {
		return CourierView{}, err
	}

	courierID, err := kernel.UUIDFrom(id)
	if err != nil {
		return CourierView{}, err
	}
	view.ID = courierID

	transport, err := courier.TransportFromID(transportID)
	if err != nil {
		return CourierView{}, err
	}
	view.Transport = transport.Name()
	view.Speed = transport.Speed()

	location, err := kernel.NewLocation(kernel.Coordinate(locationX), kernel.Coordinate(locationY))
	if err != nil {
		return CourierView{}, err
	}
	view.Location = location

	return view, nil
}
