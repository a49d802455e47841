package kernel

import (
	"errors"
	"fmt"

	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

// Coordinate is a single axis value on the dispatch grid.
type Coordinate int8

// Grid bounds, inclusive on both ends.
const (
	// LocationMinX is the leftmost column.
	LocationMinX Coordinate = 1
	// LocationMaxX is the rightmost column.
	LocationMaxX Coordinate = 10
	// LocationMinY is the bottom row.
	LocationMinY Coordinate = 1
	// LocationMaxY is the top row.
	LocationMaxY Coordinate = 10
)

// ErrLocationIsMissing is returned for a zero-value Location.
var ErrLocationIsMissing = errs.NewValueIsRequiredError("location")

// RandomSource draws integers in [0, n). *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Location is an immutable cell of the 10x10 grid.
//
// The zero value is not a location: it reports ErrLocationIsMissing from Validate
// and every method that takes another Location rejects it.
type Location struct { //nolint:recvcheck // setters mutate during construction only
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation builds a Location after checking both coordinates against the grid bounds.
// When both are out of range the returned error joins both failures.
//
// Example:
//
//	loc, err := kernel.NewLocation(3, 7)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // reject the request
//	}
func NewLocation(x, y Coordinate) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for values known at compile time. It panics on invalid input.
func MustNewLocation(x, y Coordinate) Location {
	loc, err := NewLocation(x, y)
	if err != nil {
		panic(err)
	}
	return loc
}

// NewRandomLocation picks a uniformly distributed cell using rnd.
func NewRandomLocation(rnd RandomSource) (Location, error) {
	if rnd == nil {
		return Location{}, errs.NewValueIsRequiredError("random source")
	}

	x := LocationMinX + Coordinate(rnd.IntN(int(LocationMaxX-LocationMinX)+1))
	y := LocationMinY + Coordinate(rnd.IntN(int(LocationMaxY-LocationMinY)+1))

	return NewLocation(x, y)
}

// Validate reports ErrLocationIsMissing for a zero-value Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsMissing)
}

// X returns the column of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the row of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String renders the location as "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares coordinates. Both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.x == other.x && l.y == other.y, nil
}

// Distance returns the Manhattan distance |dx| + |dy| in grid steps.
// It is symmetric, never negative and zero only for equal locations.
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return int(abs(l.x-other.x)) + int(abs(l.y-other.y)), nil
}

func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}
	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}
	l.y = y
	return nil
}

func abs(c Coordinate) Coordinate {
	if c < 0 {
		return -c
	}
	return c
}
