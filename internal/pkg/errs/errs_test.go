package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courierId", "c-1")

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "object not found: c-1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("transport", "plane", errors.New("allowed values: pedestrian, bicycle, car"))

		assert.Equal(t,
			"object not found: param is: transport, ID is: plane (cause: allowed values: pedestrian, bicycle, car)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("transportId", 7)

		assert.Equal(t, "object not found: 7", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("name")
	assert.Equal(t, "value is invalid: name", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown"))
	assert.Equal(t, "value is invalid: status (cause: unknown)", withCause.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, withCause.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("x", 11, 1, 10)

		assert.Equal(t, "value is invalid: 11 is x, min value is 1, max value is 10", err.Error())
	})

	t.Run("message with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("speed", 0, 1, 3, errors.New("too slow"))

		assert.Equal(t, "value is invalid: 0 is speed, min value is 1, max value is 3 (cause: too slow)", err.Error())
	})

	t.Run("matches both out of range and invalid", func(t *testing.T) {
		var err error = errs.NewValueIsOutOfRangeError("y", 0, 1, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "a\nb", 1, 2)

		assert.Contains(t, err.Error(), "a b")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsInvalidLengthError(t *testing.T) {
	var err error = errs.NewValueIsInvalidLengthError("couriers", 0)

	assert.Equal(t, "value has invalid length: couriers has length 0", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalidLength)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidLengthErrorWithCause("couriers", 0, errors.New("at least one courier"))
	assert.Equal(t, "value has invalid length: couriers has length 0 (cause: at least one courier)", withCause.Error())
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("order")
	assert.Equal(t, "value is required: order", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("location", errors.New("zero value"))
	assert.Equal(t, "value is required: location (cause: zero value)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("courier")
	assert.Equal(t, "version is invalid: courier", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	withCause := errs.NewVersionIsInvalidErrorWithCause("courier", errors.New("expected 3"))
	assert.Equal(t, "version is invalid: courier (cause: expected 3)", withCause.Error())
}

func TestDomainRuleViolationError(t *testing.T) {
	err := errs.NewDomainRuleViolationError("courier.already.busy", "courier is already busy")

	assert.Equal(t, "domain rule violation: courier.already.busy: courier is already busy", err.Error())
	require.ErrorIs(t, err, errs.ErrDomainRuleViolation)

	var target *errs.DomainRuleViolationError
	wrapped := fmt.Errorf("dispatch: %w", err)
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "courier.already.busy", target.Code)
}

func TestJoinedErrorsKeepEveryKind(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewObjectNotFoundError("transport", "plane"),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrObjectNotFound)
	require.NotErrorIs(t, joined, errs.ErrVersionIsInvalid)
}
