package courier

import (
	"errors"
	"fmt"
	"strings"

	"courierdispatch/internal/pkg/errs"
)

// Speed bounds of the catalog, in grid cells per tick.
const (
	// MinSpeed is the speed of the slowest catalog entry.
	MinSpeed = 1
	// MaxSpeed is the speed of the fastest catalog entry.
	MaxSpeed = 3
)

// Transport is an immutable speed class. Couriers hold it by value.
type Transport struct {
	id    int
	name  string
	speed int
}

// Catalog entries.
var (
	// Pedestrian moves one cell per tick.
	Pedestrian = Transport{id: 1, name: "pedestrian", speed: 1}
	// Bicycle moves two cells per tick.
	Bicycle    = Transport{id: 2, name: "bicycle", speed: 2}
	// Car moves three cells per tick.
	Car        = Transport{id: 3, name: "car", speed: 3}
)

var (
	catalog = [...]Transport{Pedestrian, Bicycle, Car}

	allowedTransportNames = func() string {
		names := make([]string, 0, len(catalog))
		for _, t := range catalog {
			names = append(names, t.name)
		}
		return strings.Join(names, ", ")
	}()
)

// Transports lists the catalog in a fixed order: pedestrian, bicycle, car.
func Transports() []Transport {
	out := make([]Transport, len(catalog))
	copy(out, catalog[:])
	return out
}

// TransportFromName resolves a catalog entry by name, ignoring case. The name is
// compared as given: surrounding whitespace is not stripped.
//
// Parameters:
//   - name: catalog name such as "pedestrian", "Bicycle" or "CAR"
//
// Returns:
//   - Transport: the matching catalog entry
//   - error: ObjectNotFoundError listing the allowed names when nothing matches
//
// Example:
//
//	t, err := courier.TransportFromName("Bicycle")
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrObjectNotFound)
//	}
//	fmt.Println(t.Speed()) // 2
func TransportFromName(name string) (Transport, error) {
	for _, t := range catalog {
		if strings.EqualFold(t.name, name) {
			return t, nil
		}
	}

	return Transport{}, errs.NewObjectNotFoundErrorWithCause("transport", name,
		fmt.Errorf("allowed values: %s", allowedTransportNames))
}

// TransportFromID resolves a catalog entry by its numeric id.
func TransportFromID(id int) (Transport, error) {
	for _, t := range catalog {
		if t.id == id {
			return t, nil
		}
	}

	return Transport{}, errs.NewObjectNotFoundErrorWithCause("transport", id,
		fmt.Errorf("allowed values: %s", allowedTransportNames))
}

// NewTransport accepts the older free-form name and speed input and maps it onto
// the catalog entry with that speed. The name only has to be non-empty.
func NewTransport(name string, speed int) (Transport, error) {
	var nameErr, speedErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if speed < MinSpeed || speed > MaxSpeed {
		speedErr = errs.NewValueIsOutOfRangeError("speed", speed, MinSpeed, MaxSpeed)
	}
	if err := errors.Join(nameErr, speedErr); err != nil {
		return Transport{}, err
	}

	for _, t := range catalog {
		if t.speed == speed {
			return t, nil
		}
	}

	return Transport{}, errs.NewObjectNotFoundError("transport", speed)
}

// ID returns the stable numeric id used for storage.
func (t Transport) ID() int {
	return t.id
}

// Name returns the lowercase catalog name.
func (t Transport) Name() string {
	return t.name
}

// Speed returns the number of grid cells covered per tick.
func (t Transport) Speed() int {
	return t.speed
}

// String returns the catalog name.
func (t Transport) String() string {
	return t.name
}

// Validate rejects the zero value.
func (t Transport) Validate() error {
	if t.id == 0 {
		return errs.NewValueIsRequiredError("transport")
	}
	return nil
}

// IsEqual compares catalog ids.
func (t Transport) IsEqual(other Transport) bool {
	return t.id == other.id
}
