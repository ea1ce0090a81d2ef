package commands_test

import (
	"context"
	"time"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetByDate(ctx context.Context, date time.Time) ([]*truck.Truck, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTruck(ctx context.Context, truckID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockTruckUoW backs handlers that only need the truck repository.
type MockTruckUoW struct{ mock.Mock }

func (m *MockTruckUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTruckUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

var deliveryDate = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

func newTestTruck() *truck.Truck {
	tr, err := truck.NewTruck(kernel.NewUUID(), "Truck 1", deliveryDate)
	if err != nil {
		panic(err)
	}
	return tr
}

func newTestOrder(truckID kernel.UUID, pallets int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), truckID, "SO-"+kernel.NewUUID().String()[:8], "Customer", pallets, nil)
	if err != nil {
		panic(err)
	}
	return o
}
