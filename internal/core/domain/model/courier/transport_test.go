package courier_test

import (
	"testing"

	"courierdispatch/internal/core/domain/model/courier"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransports(t *testing.T) {
	list := courier.Transports()

	require.Len(t, list, 3)
	assert.Equal(t, []string{"pedestrian", "bicycle", "car"},
		[]string{list[0].Name(), list[1].Name(), list[2].Name()})
	assert.Equal(t, []int{1, 2, 3},
		[]int{list[0].Speed(), list[1].Speed(), list[2].Speed()})

	t.Run("returned slice is a copy", func(t *testing.T) {
		list[0] = courier.Car

		assert.Equal(t, courier.Pedestrian, courier.Transports()[0])
	})
}

func TestTransportFromName(t *testing.T) {
	tests := []struct {
		input string
		want  courier.Transport
	}{
		{input: "pedestrian", want: courier.Pedestrian},
		{input: "Bicycle", want: courier.Bicycle},
		{input: "CAR", want: courier.Car},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := courier.TransportFromName(tt.input)

			require.NoError(t, err)
			assert.True(t, got.IsEqual(tt.want))
		})
	}

	t.Run("should list allowed values for unknown name", func(t *testing.T) {
		_, err := courier.TransportFromName("plane")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "pedestrian, bicycle, car")
	})

	t.Run("should not strip surrounding whitespace", func(t *testing.T) {
		for _, input := range []string{" car", "car ", "  car ", "\tbicycle"} {
			_, err := courier.TransportFromName(input)

			require.ErrorIs(t, err, errs.ErrObjectNotFound, "input %q", input)
		}
	})
}

func TestTransportFromID(t *testing.T) {
	for _, want := range courier.Transports() {
		got, err := courier.TransportFromID(want.ID())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := courier.TransportFromID(4)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewTransport(t *testing.T) {
	t.Run("should resolve by speed", func(t *testing.T) {
		got, err := courier.NewTransport("Scooter", 2)

		require.NoError(t, err)
		assert.Equal(t, courier.Bicycle, got)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := courier.NewTransport(" ", 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject speed outside catalog range", func(t *testing.T) {
		for _, speed := range []int{0, 4, -1} {
			_, err := courier.NewTransport("Car", speed)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should report both failures", func(t *testing.T) {
		_, err := courier.NewTransport("", 9)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTransport_ZeroValue(t *testing.T) {
	var tr courier.Transport

	require.ErrorIs(t, tr.Validate(), errs.ErrValueIsRequired)
	require.NoError(t, courier.Car.Validate())
	assert.Equal(t, "car", courier.Car.String())
}
