package commands

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// ChangeDestinationCommandHandler handles destination changes.
// Builds a new route specification keeping the cargo's origin and deadline,
// then re-derives the delivery snapshot against the existing itinerary and
// the full handling history. A previously assigned itinerary that no longer
// reaches the new destination leaves the cargo MISROUTED until rerouted.
//
// Example:
//
//	handler := NewChangeDestinationCommandHandler(uowFactory, locationRepo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("destination change failed: %w", err)
//	}
type ChangeDestinationCommandHandler struct {
	uowFactory         UoWFactory
	locationRepository ports.LocationRepository
}

// NewChangeDestinationCommandHandler creates a handler for destination changes.
// Requires a UoWFactory for transactional persistence and a location
// repository to resolve the new destination.
func NewChangeDestinationCommandHandler(
	uowFactory UoWFactory,
	locationRepository ports.LocationRepository,
) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory:         uowFactory,
		locationRepository: locationRepository,
	}
}

// Handle processes the destination change command.
// Returns ErrNoCargoFound when the tracking ID is unknown.
func (h ChangeDestinationCommandHandler) Handle(ctx context.Context, command ChangeDestinationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	destination, err := h.locationRepository.Get(ctx, command.DestinationUnLocode())
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

	cargoRepo := uow.CargoRepository()
	eventRepo := uow.HandlingEventRepository()

	trackedCargo, err := cargoRepo.Get(ctx, command.TrackingID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoCargoFound
	}
	if err != nil {
		return err
	}

	current := trackedCargo.RouteSpecification()
	routeSpecification, err := cargo.NewRouteSpecification(
		current.Origin(), destination, current.ArrivalDeadline())
	if err != nil {
		return err
	}

	history, err := eventRepo.GetHandlingHistory(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = trackedCargo.SpecifyNewRoute(routeSpecification, history); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, trackedCargo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
