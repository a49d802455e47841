package services_test

import (
	"testing"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/order"
	"courierdispatch/internal/core/domain/services"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(t *testing.T, x, y kernel.Coordinate) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewLocation(x, y))
	require.NoError(t, err)
	return o
}

func courierAt(t *testing.T, name, transport string, x, y kernel.Coordinate) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(name, transport, kernel.MustNewLocation(x, y))
	require.NoError(t, err)
	return c
}

func TestDispatchService_PicksNearestPedestrian(t *testing.T) {
	o := orderAt(t, 5, 5)
	far := courierAt(t, "A", "pedestrian", 1, 1)
	near := courierAt(t, "B", "pedestrian", 2, 2)
	farthest := courierAt(t, "C", "pedestrian", 10, 10)

	winner, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{far, near, farthest})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(near))
	assert.Equal(t, courier.Busy, near.Status())
	assert.Equal(t, courier.Free, far.Status())
	assert.Equal(t, courier.Free, farthest.Status())
	assert.Equal(t, order.Assigned, o.Status())
	assert.True(t, o.CourierID().IsEqual(near.ID()))
}

func TestDispatchService_FasterTransportWinsOverEqualDistance(t *testing.T) {
	o := orderAt(t, 4, 4)
	slowFar := courierAt(t, "A", "pedestrian", 1, 1)
	slowNear := courierAt(t, "B", "pedestrian", 5, 5)
	bike := courierAt(t, "C", "bicycle", 3, 3)

	winner, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{slowFar, slowNear, bike})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(bike))
}

func TestDispatchService_TiesKeepInputOrder(t *testing.T) {
	o := orderAt(t, 5, 5)
	first := courierAt(t, "first", "pedestrian", 5, 3)
	second := courierAt(t, "second", "pedestrian", 3, 5)
	third := courierAt(t, "third", "bicycle", 1, 5)

	winner, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{first, second, third})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(first))

	o = orderAt(t, 5, 5)
	a := courierAt(t, "a", "pedestrian", 5, 3)
	b := courierAt(t, "b", "pedestrian", 3, 5)

	winner, err = services.NewDispatchService().Dispatch(o, []*courier.Courier{b, a})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(b))
}

func TestDispatchService_SkipsBusyCouriers(t *testing.T) {
	o := orderAt(t, 5, 5)
	busyNear := courierAt(t, "busy", "car", 5, 5)
	require.NoError(t, busyNear.SetBusy())
	freeFar := courierAt(t, "free", "pedestrian", 10, 10)

	winner, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{busyNear, nil, freeFar})

	require.NoError(t, err)
	assert.True(t, winner.IsEqual(freeFar))
}

func TestDispatchService_Preconditions(t *testing.T) {
	dispatcher := services.NewDispatchService()

	t.Run("should require order", func(t *testing.T) {
		c := courierAt(t, "A", "car", 1, 1)

		_, err := dispatcher.Dispatch(nil, []*courier.Courier{c})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, courier.Free, c.Status())
	})

	t.Run("should require non-empty couriers", func(t *testing.T) {
		o := orderAt(t, 1, 1)

		_, err := dispatcher.Dispatch(o, []*courier.Courier{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalidLength)

		_, err = dispatcher.Dispatch(o, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalidLength)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should reject zero-value order", func(t *testing.T) {
		_, err := dispatcher.Dispatch(&order.Order{}, []*courier.Courier{courierAt(t, "A", "car", 1, 1)})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDispatchService_NoFreeCourier(t *testing.T) {
	o := orderAt(t, 5, 5)
	a := courierAt(t, "A", "car", 1, 1)
	b := courierAt(t, "B", "car", 9, 9)
	require.NoError(t, a.SetBusy())
	require.NoError(t, b.SetBusy())

	_, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{a, b})

	var violation *errs.DomainRuleViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, services.CodeSuitableCourierNotFound, violation.Code)
	assert.Equal(t, order.Created, o.Status())
}

func TestDispatchService_AlreadyAssignedOrderMutatesNothing(t *testing.T) {
	o := orderAt(t, 5, 5)
	previous := courierAt(t, "previous", "car", 1, 1)
	require.NoError(t, o.Assign(previous))

	candidate := courierAt(t, "candidate", "car", 5, 5)

	_, err := services.NewDispatchService().Dispatch(o, []*courier.Courier{candidate})

	var violation *errs.DomainRuleViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, order.CodeOrderAlreadyAssigned, violation.Code)
	assert.Equal(t, courier.Free, candidate.Status())
	assert.True(t, o.CourierID().IsEqual(previous.ID()))
}

func TestDispatchService_AlwaysReturnsMinimalETA(t *testing.T) {
	transports := courier.Transports()
	dispatcher := services.NewDispatchService()

	for ox := kernel.Coordinate(1); ox <= 10; ox += 3 {
		for oy := kernel.Coordinate(1); oy <= 10; oy += 3 {
			target := kernel.MustNewLocation(ox, oy)

			var pool []*courier.Courier
			i := 0
			for x := kernel.Coordinate(1); x <= 10; x += 2 {
				for y := kernel.Coordinate(2); y <= 10; y += 4 {
					pool = append(pool, courierAt(t, "c", transports[i%len(transports)].Name(), x, y))
					i++
				}
			}

			minimal := -1.0
			var expected *courier.Courier
			for _, c := range pool {
				eta, err := c.CalculateTimeToLocation(target)
				require.NoError(t, err)
				if expected == nil || eta < minimal {
					minimal, expected = eta, c
				}
			}

			o, err := order.NewOrder(kernel.NewUUID(), target)
			require.NoError(t, err)

			winner, err := dispatcher.Dispatch(o, pool)

			require.NoError(t, err)
			require.True(t, winner.IsEqual(expected), "order at %s", target)
		}
	}
}
