package order_test

import (
	"testing"

	"courierdispatch/internal/core/domain/model/order"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Names(t *testing.T) {
	for _, s := range []order.Status{order.Created, order.Assigned, order.Completed} {
		require.NoError(t, s.Validate())

		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	assert.Equal(t, "unknown", order.Unknown.String())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)

	_, err := order.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		from          order.Status
		assignErr     bool
		completeErr   bool
		afterAssign   order.Status
		afterComplete order.Status
	}{
		{from: order.Created, completeErr: true, afterAssign: order.Assigned},
		{from: order.Assigned, assignErr: true, afterComplete: order.Completed},
		{from: order.Completed, assignErr: true, completeErr: true},
		{from: order.Unknown, assignErr: true, completeErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			next, err := tt.from.Assign()
			if tt.assignErr {
				require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
				assert.Equal(t, tt.from, next)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.afterAssign, next)
			}

			next, err = tt.from.Complete()
			if tt.completeErr {
				require.ErrorIs(t, err, errs.ErrDomainRuleViolation)
				assert.Equal(t, tt.from, next)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.afterComplete, next)
			}
		})
	}
}

func TestStatus_HasCourier(t *testing.T) {
	assert.False(t, order.Created.HasCourier())
	assert.True(t, order.Assigned.HasCourier())
	assert.True(t, order.Completed.HasCourier())
}
