package queries

import (
	"context"

	"planner/internal/core/domain/services"
)

// GetMaxPlaceableQueryHandler runs the capacity estimator on a stored trip.
// The trip is loaded fresh and never written back.
type GetMaxPlaceableQueryHandler struct {
	repos  RepositoriesFactory
	placer services.PalletPlacer
}

func NewGetMaxPlaceableQueryHandler(repos RepositoriesFactory) GetMaxPlaceableQueryHandler {
	return GetMaxPlaceableQueryHandler{repos: repos, placer: services.NewPalletPlacer()}
}

func (h GetMaxPlaceableQueryHandler) Handle(
	ctx context.Context,
	query GetMaxPlaceableQuery,
) (GetMaxPlaceableQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMaxPlaceableQueryResponse{}, err
	}

	tr, err := h.repos.Create().TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return GetMaxPlaceableQueryResponse{}, err
	}

	trip, err := tr.Trip(query.TripID())
	if err != nil {
		return GetMaxPlaceableQueryResponse{}, err
	}

	return GetMaxPlaceableQueryResponse{
		StartIndex: query.StartIndex(),
		Max:        h.placer.MaxPlaceable(trip, query.StartIndex()),
	}, nil
}
