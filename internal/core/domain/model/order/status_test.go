package order_test

import (
	"testing"

	"planner/internal/core/domain/model/order"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Unplanned))
	assert.Equal(t, 2, int(order.Planned))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unplanned", order.Unplanned.String())
	assert.Equal(t, "Planned", order.Planned.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for _, st := range []order.Status{order.Unplanned, order.Planned} {
		t.Run(st.String(), func(t *testing.T) {
			parsed, err := order.ParseStatus(st.String())

			require.NoError(t, err)
			assert.Equal(t, st, parsed)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("planned")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Unplanned.Validate())
	require.NoError(t, order.Planned.Validate())
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_ValidateCanHaveTrip(t *testing.T) {
	require.NoError(t, order.Planned.ValidateCanHaveTrip(true))
	require.NoError(t, order.Unplanned.ValidateCanHaveTrip(false))
	require.Error(t, order.Unplanned.ValidateCanHaveTrip(true))
	require.Error(t, order.Planned.ValidateCanHaveTrip(false))
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should plan an unplanned order", func(t *testing.T) {
		st, err := order.Unplanned.Plan()

		require.NoError(t, err)
		assert.Equal(t, order.Planned, st)
	})

	t.Run("should not plan twice", func(t *testing.T) {
		_, err := order.Planned.Plan()

		require.ErrorIs(t, err, order.ErrOrderAlreadyPlaced)
	})

	t.Run("should unplan a planned order", func(t *testing.T) {
		st, err := order.Planned.Unplan()

		require.NoError(t, err)
		assert.Equal(t, order.Unplanned, st)
	})

	t.Run("should not unplan an unplanned order", func(t *testing.T) {
		_, err := order.Unplanned.Unplan()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
