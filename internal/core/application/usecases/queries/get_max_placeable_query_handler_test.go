package queries_test

import (
	"testing"

	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMaxPlaceableQuery_InvalidStart(t *testing.T) {
	_, err := queries.NewGetMaxPlaceableQuery(kernel.NewUUID(), kernel.NewUUID(), truck.NumSlots)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetMaxPlaceableQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	tr := newTestTruck()
	trip := tr.Trips()[0]
	require.NoError(t, trip.SetShape(0, truck.Rect))
	blocker := newTestOrder(tr.ID(), "SO-1", 1, nil)
	_, err := services.NewPalletPlacer().Place(trip, blocker, 5, 1)
	require.NoError(t, err)

	repos := newStubRepositories()
	repos.trucks.On("Get", ctx, tr.ID()).Return(tr, nil)

	handler := queries.NewGetMaxPlaceableQueryHandler(repos)

	tests := []struct {
		start int
		want  int
	}{
		{0, 4},
		{1, 3},
		{5, 0},
		{6, 27},
	}
	for _, tt := range tests {
		query, err := queries.NewGetMaxPlaceableQuery(tr.ID(), trip.ID(), tt.start)
		require.NoError(t, err)

		res, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, tt.start, res.StartIndex)
		assert.Equal(t, tt.want, res.Max, "start %d", tt.start)
	}
	assert.Equal(t, []int{5}, trip.OccupiedIndices())
}

func TestGetMaxPlaceableQueryHandler_Handle_UnknownTrip(t *testing.T) {
	ctx := t.Context()
	tr := newTestTruck()
	repos := newStubRepositories()
	repos.trucks.On("Get", ctx, tr.ID()).Return(tr, nil)

	query, err := queries.NewGetMaxPlaceableQuery(tr.ID(), kernel.NewUUID(), 0)
	require.NoError(t, err)

	_, err = queries.NewGetMaxPlaceableQueryHandler(repos).Handle(ctx, query)
	require.ErrorIs(t, err, truck.ErrTripNotFound)
}

func TestGetMaxPlaceableQueryHandler_Handle_InvalidQuery(t *testing.T) {
	_, err := queries.NewGetMaxPlaceableQueryHandler(newStubRepositories()).Handle(t.Context(), queries.GetMaxPlaceableQuery{})
	require.ErrorIs(t, err, queries.ErrGetMaxPlaceableQueryIsNotConstructed)
}
