package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
)

// BookCargoCommandHandler handles the business logic for cargo booking.
// Resolves the origin and destination locations, builds the initial route
// specification and stores the new cargo in NOT_ROUTED state.
//
// Example:
//
//	handler := NewBookCargoCommandHandler(uowFactory, locationRepo)
//	cmd, _ := NewBookCargoCommand(kernel.NewTrackingID(), origin, destination, deadline)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// Cargo is now booked and ready for route assignment
type BookCargoCommandHandler struct {
	uowFactory         CargoUoWFactory
	locationRepository ports.LocationRepository
}

// NewBookCargoCommandHandler creates a handler for cargo booking operations.
// Requires a CargoUoWFactory for transactional persistence and a location
// repository to resolve the UN/LOCODEs of the delivery contract.
func NewBookCargoCommandHandler(
	uowFactory CargoUoWFactory,
	locationRepository ports.LocationRepository,
) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory:         uowFactory,
		locationRepository: locationRepository,
	}
}

// Handle processes the booking command.
// Resolves both locations, constructs the route specification and persists
// the new cargo. The freshly booked cargo carries an empty handling history,
// so its delivery snapshot reports NOT_RECEIVED.
func (h BookCargoCommandHandler) Handle(ctx context.Context, command BookCargoCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	origin, err := h.locationRepository.Get(ctx, command.OriginUnLocode())
	if err != nil {
		return err
	}

	destination, err := h.locationRepository.Get(ctx, command.DestinationUnLocode())
	if err != nil {
		return err
	}

	routeSpecification, err := cargo.NewRouteSpecification(origin, destination, command.ArrivalDeadline())
	if err != nil {
		return err
	}

	newCargo, err := cargo.NewCargo(command.TrackingID(), routeSpecification)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CargoRepository().Add(ctx, newCargo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
