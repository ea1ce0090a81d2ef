package guard_test

import (
	"errors"
	"testing"

	"planner/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errSlotNotConstructed := errors.New("Slot must be created via NewSlot")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errSlotNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errSlotNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errSlotNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errSlotNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	type pallet struct {
		code  string
		guard guard.ConstructorGuard
	}
	errPalletNotConstructed := errors.New("pallet must be created via newPallet")

	newPallet := func(code string) (pallet, error) {
		if code == "" {
			return pallet{}, errors.New("code is required")
		}
		return pallet{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	p, err := newPallet("EUR-1")
	require.NoError(t, err)
	require.NoError(t, p.guard.Validate(errPalletNotConstructed))

	var zero pallet
	require.ErrorIs(t, zero.guard.Validate(errPalletNotConstructed), errPalletNotConstructed)
}
