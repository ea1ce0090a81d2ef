package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GetTrucksForDateQueryHandlerTestSuite struct {
	suite.Suite
	sqlMock sqlmock.Sqlmock
	handler queries.GetTrucksForDateQueryHandler
}

func (suite *GetTrucksForDateQueryHandlerTestSuite) SetupTest() {
	sqlDB, sqlMock, err := sqlmock.New()
	suite.Require().NoError(err)
	suite.sqlMock = sqlMock

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetTrucksForDateQueryHandler(db)
}

func (suite *GetTrucksForDateQueryHandlerTestSuite) TearDownTest() {
	suite.Require().NoError(suite.sqlMock.ExpectationsWereMet())
}

var boardColumns = []string{"id", "name", "delivery_date", "trips", "orders", "planned_orders", "used_slots"}

func (suite *GetTrucksForDateQueryHandlerTestSuite) TestHandle_MapsRows() {
	first, second := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(boardColumns).
		AddRow(first.String(), "Truck 1", deliveryDate, 2, 5, 3, 11).
		AddRow(second.String(), "Truck 2", deliveryDate, 1, 0, 0, 0)

	suite.sqlMock.ExpectQuery(`(?s)SELECT .+ FROM trucks t\s+WHERE t.delivery_date = \$2\s+ORDER BY t.name`).
		WithArgs(int(order.Planned), deliveryDate).
		WillReturnRows(rows)

	query, err := queries.NewGetTrucksForDateQuery(deliveryDate.Add(15 * time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.String(), result[0].ID.String())
	suite.Equal("Truck 1", result[0].Name)
	suite.Equal(deliveryDate, result[0].Date)
	suite.Equal(2, result[0].Trips)
	suite.Equal(5, result[0].Orders)
	suite.Equal(3, result[0].PlannedOrders)
	suite.Equal(11, result[0].UsedSlots)
	suite.Equal(second.String(), result[1].ID.String())
	suite.Zero(result[1].UsedSlots)
}

func (suite *GetTrucksForDateQueryHandlerTestSuite) TestHandle_EmptyDay_ReturnsEmptySlice() {
	suite.sqlMock.ExpectQuery(`(?s)SELECT .+ FROM trucks t`).
		WillReturnRows(sqlmock.NewRows(boardColumns))

	query, err := queries.NewGetTrucksForDateQuery(deliveryDate)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetTrucksForDateQueryHandlerTestSuite) TestHandle_DatabaseError() {
	suite.sqlMock.ExpectQuery(`(?s)SELECT .+ FROM trucks t`).
		WillReturnError(errors.New("connection reset by peer"))

	query, err := queries.NewGetTrucksForDateQuery(deliveryDate)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetTrucksForDateQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetTrucksForDateQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetTrucksForDateQueryIsNotConstructed)
	suite.Nil(result)
}

func TestGetTrucksForDateQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTrucksForDateQueryHandlerTestSuite))
}
