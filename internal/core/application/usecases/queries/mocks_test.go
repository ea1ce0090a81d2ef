package queries_test

import (
	"context"
	"io"
	"time"

	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	return m.Called(ctx, t).Error(0)
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
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
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

// stubRepositories hands out the same mocks on every Create.
type stubRepositories struct {
	trucks *MockTruckRepository
	orders *MockOrderRepository
}

func (s stubRepositories) Create() queries.Repositories {
	return s
}

func (s stubRepositories) TruckRepository() ports.TruckRepository {
	return s.trucks
}

func (s stubRepositories) OrderRepository() ports.OrderRepository {
	return s.orders
}

func newStubRepositories() stubRepositories {
	return stubRepositories{trucks: new(MockTruckRepository), orders: new(MockOrderRepository)}
}

type MockRouteCache struct{ mock.Mock }

func (m *MockRouteCache) Get(ctx context.Context, truckID kernel.UUID, fingerprint string) (ports.CachedRoute, error) {
	args := m.Called(ctx, truckID, fingerprint)
	return args.Get(0).(ports.CachedRoute), args.Error(1)
}

func (m *MockRouteCache) Set(ctx context.Context, truckID kernel.UUID, route ports.CachedRoute) error {
	return m.Called(ctx, truckID, route).Error(0)
}

var deliveryDate = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

func newTestTruck() *truck.Truck {
	tr, err := truck.NewTruck(kernel.NewUUID(), "Truck 1", deliveryDate)
	if err != nil {
		panic(err)
	}
	return tr
}

func newTestOrder(truckID kernel.UUID, code string, pallets int, coordinate *kernel.Coordinate) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), truckID, code, "Customer "+code, pallets, coordinate)
	if err != nil {
		panic(err)
	}
	return o
}

func at(lat, lng float64) *kernel.Coordinate {
	c := kernel.MustNewCoordinate(lat, lng)
	return &c
}

type MockLoadingSheetRenderer struct{ mock.Mock }

func (m *MockLoadingSheetRenderer) Render(w io.Writer, tr *truck.Truck, orders []*order.Order) error {
	args := m.Called(w, tr, orders)
	if content, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, content)
	}
	return args.Error(1)
}
