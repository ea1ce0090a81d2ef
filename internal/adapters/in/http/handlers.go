package http

import (
	"context"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"
)

type (
	createTruckHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTruckCommand) error
	}
	addTripHandler interface {
		Handle(ctx context.Context, cmd commands.AddTripCommand) (commands.AddTripResult, error)
	}
	removeTripHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveTripCommand) (commands.RemoveTripResult, error)
	}
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	importOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.ImportOrdersCommand) ([]kernel.UUID, error)
	}
	placeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}
	evictSlotHandler interface {
		Handle(ctx context.Context, cmd commands.EvictSlotCommand) (commands.EvictSlotResult, error)
	}
	setSlotShapeHandler interface {
		Handle(ctx context.Context, cmd commands.SetSlotShapeCommand) (commands.SetSlotShapeResult, error)
	}

	trucksForDateHandler interface {
		Handle(ctx context.Context, query queries.GetTrucksForDateQuery) ([]queries.GetTrucksForDateQueryResponse, error)
	}
	maxPlaceableHandler interface {
		Handle(ctx context.Context, query queries.GetMaxPlaceableQuery) (queries.GetMaxPlaceableQueryResponse, error)
	}
	tripRouteHandler interface {
		Handle(ctx context.Context, query queries.GetTripRouteQuery) (queries.GetTripRouteQueryResponse, error)
	}
	truckRouteHandler interface {
		Handle(ctx context.Context, query queries.GetTruckRouteQuery) (queries.GetTruckRouteQueryResponse, error)
	}
	loadingSheetHandler interface {
		Handle(ctx context.Context, query queries.GetLoadingSheetQuery) (queries.GetLoadingSheetQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP. Every field is required.
type Handlers struct {
	CreateTruck  createTruckHandler
	AddTrip      addTripHandler
	RemoveTrip   removeTripHandler
	CreateOrder  createOrderHandler
	ImportOrders importOrdersHandler
	PlaceOrder   placeOrderHandler
	EvictSlot    evictSlotHandler
	SetSlotShape setSlotShapeHandler

	TrucksForDate trucksForDateHandler
	MaxPlaceable  maxPlaceableHandler
	TripRoute     tripRouteHandler
	TruckRoute    truckRouteHandler
	LoadingSheet  loadingSheetHandler
}
