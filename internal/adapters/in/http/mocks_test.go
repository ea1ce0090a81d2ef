package http

import (
	"context"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateTruckHandler struct{ mock.Mock }

func (m *MockCreateTruckHandler) Handle(ctx context.Context, cmd commands.CreateTruckCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockImportOrdersHandler struct{ mock.Mock }

func (m *MockImportOrdersHandler) Handle(ctx context.Context, cmd commands.ImportOrdersCommand) ([]kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockRemoveTripHandler struct{ mock.Mock }

func (m *MockRemoveTripHandler) Handle(ctx context.Context, cmd commands.RemoveTripCommand) (commands.RemoveTripResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RemoveTripResult), args.Error(1)
}

type MockEvictSlotHandler struct{ mock.Mock }

func (m *MockEvictSlotHandler) Handle(ctx context.Context, cmd commands.EvictSlotCommand) (commands.EvictSlotResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.EvictSlotResult), args.Error(1)
}

type MockSetSlotShapeHandler struct{ mock.Mock }

func (m *MockSetSlotShapeHandler) Handle(ctx context.Context, cmd commands.SetSlotShapeCommand) (commands.SetSlotShapeResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SetSlotShapeResult), args.Error(1)
}

type MockTrucksForDateHandler struct{ mock.Mock }

func (m *MockTrucksForDateHandler) Handle(
	ctx context.Context,
	query queries.GetTrucksForDateQuery,
) ([]queries.GetTrucksForDateQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetTrucksForDateQueryResponse), args.Error(1)
}

type MockTruckRouteHandler struct{ mock.Mock }

func (m *MockTruckRouteHandler) Handle(
	ctx context.Context,
	query queries.GetTruckRouteQuery,
) (queries.GetTruckRouteQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetTruckRouteQueryResponse), args.Error(1)
}

type MockLoadingSheetHandler struct{ mock.Mock }

func (m *MockLoadingSheetHandler) Handle(
	ctx context.Context,
	query queries.GetLoadingSheetQuery,
) (queries.GetLoadingSheetQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetLoadingSheetQueryResponse), args.Error(1)
}
