package commands_test

import (
	"testing"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, truckID := kernel.NewUUID(), kernel.NewUUID()
	loc := kernel.MustNewCoordinate(52.09, 5.12)

	cmd, err := commands.NewCreateOrderCommand(id, truckID, "SO-1", "Bakkerij Jansen", 3, &loc)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, truckID, cmd.TruckID())
	assert.Equal(t, "SO-1", cmd.Code())
	assert.Equal(t, 3, cmd.Pallets())
	require.NotNil(t, cmd.Coordinate())
	assert.True(t, loc.IsEqual(*cmd.Coordinate()))
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		pallets int
		wantErr error
	}{
		{"blank code", "  ", 1, errs.ErrValueIsRequired},
		{"zero pallets", "SO-1", 0, errs.ErrValueIsInvalid},
		{"negative pallets", "SO-1", -4, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), tt.code, "", tt.pallets, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), "SO-1", "", 1, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tr := newTestTruck()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tr.ID(), "SO-1", "Bakkerij Jansen", 2, nil)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var stored *order.Order
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, tr.ID()).Return(tr, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.OrderID(), stored.ID())
	assert.Equal(t, order.Unplanned, stored.Status())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownTruck(t *testing.T) {
	ctx := t.Context()
	truckID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), truckID, "SO-1", "", 2, nil)
	require.NoError(t, err)

	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		truckRepo.On("Get", ctx, truckID).Return(nil, errs.NewObjectNotFoundError("truckID", truckID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
}
