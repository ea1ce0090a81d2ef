package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"planner/internal/adapters/out/postgres/orderrepo"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/ports"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	truckID    kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.truckID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsFields() {
	ctx := context.Background()
	loc := kernel.MustNewCoordinate(52.0907, 5.1214)
	o, err := order.NewOrder(kernel.NewUUID(), suite.truckID, "SO-1", "Bakkerij Jansen", 3, &loc)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(suite.truckID, stored.TruckID())
	suite.Equal("SO-1", stored.Code())
	suite.Equal("Bakkerij Jansen", stored.Customer())
	suite.Equal(3, stored.Pallets())
	suite.Equal(order.Unplanned, stored.Status())
	suite.Nil(stored.TripID())
	suite.Empty(stored.Slots())

	c, ok := stored.Coordinate()
	suite.Require().True(ok)
	suite.True(loc.IsEqual(c))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PlacementAndRelease() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	o, err := order.NewOrder(kernel.NewUUID(), suite.truckID, "SO-2", "", 2, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tripID := kernel.NewUUID()
	suite.Require().NoError(o.Place(tripID, []int{7, 8}))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Planned, stored.Status())
	suite.Equal([]int{7, 8}, stored.Slots())
	suite.True(stored.IsPlacedIn(tripID))
	_, hasCoordinate := stored.Coordinate()
	suite.False(hasCoordinate)

	suite.Require().NoError(o.ReleaseSlot(7))
	suite.Require().NoError(o.ReleaseSlot(8))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Unplanned, stored.Status())
	suite.Nil(stored.TripID())
	suite.Empty(stored.Slots())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateCodeOnTruckFails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first, err := order.NewOrder(kernel.NewUUID(), suite.truckID, "SO-3", "", 1, nil)
	suite.Require().NoError(err)
	second, err := order.NewOrder(kernel.NewUUID(), suite.truckID, "SO-3", "", 1, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().ErrorIs(suite.repository.Add(ctx, second), ports.ErrDuplicateOrderCode)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByTruck_SortedByCode() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for _, code := range []string{"SO-30", "SO-10", "SO-20"} {
		o, err := order.NewOrder(kernel.NewUUID(), suite.truckID, code, "", 1, nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}
	foreign, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "SO-00", "", 1, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetAllByTruck(ctx, suite.truckID)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal("SO-10", orders[0].Code())
	suite.Equal("SO-20", orders[1].Code())
	suite.Equal("SO-30", orders[2].Code())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
