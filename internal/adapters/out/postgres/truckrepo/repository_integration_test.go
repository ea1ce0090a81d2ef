package truckrepo_test

import (
	"context"
	"testing"
	"time"

	"planner/internal/adapters/out/postgres/truckrepo"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var day = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

type TruckRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *truckrepo.GormTruckRepository
	tracker    *MockAggregateTracker
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&truckrepo.TruckDTO{}, &truckrepo.TripDTO{}, &truckrepo.SlotDTO{}))
}

func (suite *TruckRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE slots, trips, trucks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = truckrepo.NewGormTruckRepository(suite.db, suite.tracker)
}

func (suite *TruckRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TruckRepositoryIntegrationTestSuite) TestAdd_StoresTripAndAllSlots() {
	ctx := context.Background()
	tr := suite.newTruck("Truck 1")

	suite.Require().NoError(suite.repository.Add(ctx, tr))

	var slots int64
	suite.Require().NoError(suite.db.Model(&truckrepo.SlotDTO{}).Count(&slots).Error)
	suite.Equal(int64(truck.NumSlots), slots)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", tr.ID(), tr)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_UpsertsSlotsAndInsertsNewTrips() {
	ctx := context.Background()
	tr := suite.newTruck("Truck 1")
	suite.Require().NoError(suite.repository.Add(ctx, tr))

	first := tr.Trips()[0]
	orderID := kernel.NewUUID()
	suite.Require().NoError(first.SetShape(30, truck.Rect))
	suite.Require().NoError(first.Occupy(orderID, []int{0, 1, 2}))
	second, err := tr.AddTrip()
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, tr))

	stored, err := suite.repository.Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Trips(), 2)
	suite.Equal(second.ID(), stored.Trips()[1].ID())

	storedFirst := stored.Trips()[0]
	suite.Equal([]int{0, 1, 2}, storedFirst.OccupiedIndices())
	suite.True(storedFirst.IsDisabled(31))
	slot, err := storedFirst.Slot(30)
	suite.Require().NoError(err)
	suite.Equal(truck.Rect, slot.Shape())

	// Clearing a slot must overwrite the stored occupant.
	_, err = first.Clear(1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, tr))

	stored, err = suite.repository.Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal([]int{0, 2}, stored.Trips()[0].OccupiedIndices())

	var slots int64
	suite.Require().NoError(suite.db.Model(&truckrepo.SlotDTO{}).Count(&slots).Error)
	suite.Equal(int64(2*truck.NumSlots), slots)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_RemovedTripDeletesSlotsAndRenumbers() {
	ctx := context.Background()
	tr := suite.newTruck("Truck 1")
	second, err := tr.AddTrip()
	suite.Require().NoError(err)
	third, err := tr.AddTrip()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, tr))

	suite.Require().NoError(tr.RemoveTrip(second.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, tr))

	stored, err := suite.repository.Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Trips(), 2)
	suite.Equal(third.ID(), stored.Trips()[1].ID())
	suite.Equal(1, stored.Trips()[1].Sequence())

	var orphans int64
	suite.Require().NoError(suite.db.Model(&truckrepo.SlotDTO{}).
		Where("trip_id = ?", second.ID().Google()).Count(&orphans).Error)
	suite.Zero(orphans)

	var slots int64
	suite.Require().NoError(suite.db.Model(&truckrepo.SlotDTO{}).Count(&slots).Error)
	suite.Equal(int64(2*truck.NumSlots), slots)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestUpdate_UnknownTruck() {
	err := suite.repository.Update(context.Background(), suite.newTruck("Ghost"))
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TruckRepositoryIntegrationTestSuite) TestGetByDate_SortedByName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTruck("Truck B")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTruck("Truck A")))

	other, err := truck.NewTruck(kernel.NewUUID(), "Truck C", day.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	trucks, err := suite.repository.GetByDate(ctx, day.Add(9*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(trucks, 2)
	suite.Equal("Truck A", trucks[0].Name())
	suite.Equal("Truck B", trucks[1].Name())
	suite.True(day.Equal(trucks[0].Date()))
}

func (suite *TruckRepositoryIntegrationTestSuite) newTruck(name string) *truck.Truck {
	tr, err := truck.NewTruck(kernel.NewUUID(), name, day)
	suite.Require().NoError(err)
	return tr
}

func TestTruckRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TruckRepositoryIntegrationTestSuite))
}
