package commands_test

import (
	"errors"
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCargoToRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, hongkongToTokyo(t))
	require.NoError(t, err)

	trackedCargo := bookedCargo(t, trackingID)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).Return(trackedCargo, nil).Once(),
		eventRepo.On("GetHandlingHistory", ctx, trackingID).Return(handling.EmptyHistory(), nil).Once(),
		cargoRepo.On("Update", ctx, trackedCargo).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCargoToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, trackedCargo.Itinerary())
	assert.Equal(t, cargo.Misrouted, trackedCargo.Delivery().RoutingStatus())
	cargoRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignCargoToRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignCargoToRouteCommand{} // not constructed properly

	h := commands.NewAssignCargoToRouteCommandHandler(new(MockUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAssignCargoToRouteCommandHandler_Handle_CargoNotFound(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, hongkongToTokyo(t))
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).
			Return(nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCargoToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoCargoFound)
	cargoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCargoToRouteCommandHandler_Handle_WrongOrigin(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, tokyoToNewYork(t))
	require.NoError(t, err)

	// Cargo originates in Hongkong, itinerary departs from Tokyo.
	trackedCargo := bookedCargo(t, trackingID)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).Return(trackedCargo, nil).Once(),
		eventRepo.On("GetHandlingHistory", ctx, trackingID).Return(handling.EmptyHistory(), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCargoToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, trackedCargo.Itinerary())
	uow.AssertExpectations(t)
}

func TestAssignCargoToRouteCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, hongkongToTokyo(t))
	require.NoError(t, err)

	trackedCargo := bookedCargo(t, trackingID)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).Return(trackedCargo, nil).Once(),
		eventRepo.On("GetHandlingHistory", ctx, trackingID).Return(handling.EmptyHistory(), nil).Once(),
		cargoRepo.On("Update", ctx, trackedCargo).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCargoToRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
