package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandlingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewRegisterHandlingEventCommand(
		trackingID, handling.Receive, location.Hongkong.UnLocode(), nil, completionTime())
	require.NoError(t, err)

	trackedCargo := bookedCargo(t, trackingID)

	locationRepo := new(MockLocationRepository)
	locationRepo.On("Get", ctx, location.Hongkong.UnLocode()).Return(location.Hongkong, nil).Once()
	voyageRepo := new(MockVoyageRepository)
	eventFactory := services.NewHandlingEventFactory(locationRepo, voyageRepo)

	receiveEvent, err := handling.NewEvent(
		trackingID, handling.Receive, location.Hongkong, nil, completionTime(), completionTime())
	require.NoError(t, err)
	history, err := handling.NewHistory([]handling.Event{receiveEvent})
	require.NoError(t, err)

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		cargoRepo.On("Get", ctx, trackingID).Return(trackedCargo, nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("handling.Event")).Return(nil).Once(),
		eventRepo.On("GetHandlingHistory", ctx, trackingID).Return(history, nil).Once(),
		cargoRepo.On("Update", ctx, trackedCargo).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterHandlingEventCommandHandler(factory, eventFactory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, cargo.InPort, trackedCargo.Delivery().TransportStatus())
	locationRepo.AssertExpectations(t)
	cargoRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterHandlingEventCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterHandlingEventCommand{} // not constructed properly

	eventFactory := services.NewHandlingEventFactory(new(MockLocationRepository), new(MockVoyageRepository))
	h := commands.NewRegisterHandlingEventCommandHandler(new(MockUoWFactory), eventFactory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterHandlingEventCommandHandler_Handle_UnknownLocation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterHandlingEventCommand(
		kernel.NewTrackingID(), handling.Receive, location.Dallas.UnLocode(), nil, completionTime())
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	locationRepo.On("Get", ctx, location.Dallas.UnLocode()).
		Return(location.Location{}, errs.NewObjectNotFoundError("location", "USDAL")).Once()
	eventFactory := services.NewHandlingEventFactory(locationRepo, new(MockVoyageRepository))

	// The factory rejects the report before any transaction starts.
	h := commands.NewRegisterHandlingEventCommandHandler(new(MockUoWFactory), eventFactory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	locationRepo.AssertExpectations(t)
}

func TestRegisterHandlingEventCommandHandler_Handle_CargoNotFound(t *testing.T) {
	ctx := t.Context()
	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewRegisterHandlingEventCommand(
		trackingID, handling.Receive, location.Hongkong.UnLocode(), nil, completionTime())
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	locationRepo.On("Get", ctx, location.Hongkong.UnLocode()).Return(location.Hongkong, nil).Once()
	eventFactory := services.NewHandlingEventFactory(locationRepo, new(MockVoyageRepository))

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

	h := commands.NewRegisterHandlingEventCommandHandler(factory, eventFactory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoCargoFound)
	uow.AssertExpectations(t)
}
