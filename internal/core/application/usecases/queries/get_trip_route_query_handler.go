package queries

import (
	"context"

	"planner/internal/core/domain/services"
)

// GetTripRouteQueryHandler orders a trip's deliveries deepest pallet first.
type GetTripRouteQueryHandler struct {
	repos   RepositoriesFactory
	builder services.DepthRouteBuilder
}

func NewGetTripRouteQueryHandler(repos RepositoriesFactory) GetTripRouteQueryHandler {
	return GetTripRouteQueryHandler{repos: repos, builder: services.NewDepthRouteBuilder()}
}

// Handle returns an empty stop list for a trip without placed orders.
func (h GetTripRouteQueryHandler) Handle(ctx context.Context, query GetTripRouteQuery) (GetTripRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripRouteQueryResponse{}, err
	}

	repos := h.repos.Create()

	tr, err := repos.TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return GetTripRouteQueryResponse{}, err
	}

	trip, err := tr.Trip(query.TripID())
	if err != nil {
		return GetTripRouteQueryResponse{}, err
	}

	orders, err := repos.OrderRepository().GetAllByTruck(ctx, tr.ID())
	if err != nil {
		return GetTripRouteQueryResponse{}, err
	}

	route := h.builder.Build(trip, orders)

	resp := GetTripRouteQueryResponse{
		TripID:   trip.ID(),
		Sequence: trip.Sequence(),
		Stops:    make([]TripRouteStop, 0, len(route.Stops)),
	}
	for _, s := range route.Stops {
		deepest, _ := s.Order.DeepestSlot()
		resp.Stops = append(resp.Stops, TripRouteStop{
			Sequence:    s.Sequence,
			OrderID:     s.Order.ID(),
			Code:        s.Order.Code(),
			Customer:    s.Order.Customer(),
			Slots:       s.Order.Slots(),
			DeepestSlot: deepest,
		})
	}
	return resp, nil
}
