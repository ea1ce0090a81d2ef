package kernel_test

import (
	"testing"

	"planner/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random id", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
	})

	t.Run("should never repeat", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	const raw = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("should parse urn form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("trip-1")

		require.Error(t, err)
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromGoogle(t *testing.T) {
	g := uuid.New()

	id, err := kernel.UUIDFromGoogle(g)

	require.NoError(t, err)
	assert.Equal(t, g, id.Google())

	_, err = kernel.UUIDFromGoogle(uuid.Nil)
	require.Error(t, err)
}

func TestMustUUIDFromString(t *testing.T) {
	assert.NotPanics(t, func() { kernel.MustUUIDFromString("550e8400-e29b-41d4-a716-446655440000") })
	assert.Panics(t, func() { kernel.MustUUIDFromString("nope") })
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.UUID{}))
}
