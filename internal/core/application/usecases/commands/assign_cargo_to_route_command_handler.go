package commands

import (
	"context"
	"errors"

	"cargotracker/internal/pkg/errs"
)

// ErrNoCargoFound is returned when a command references a tracking ID that
// no booked cargo carries.
var ErrNoCargoFound = errors.New("no cargo found")

// AssignCargoToRouteCommandHandler handles itinerary assignment.
// Loads the cargo and its full handling history, applies the itinerary and
// stores the cargo with a freshly derived delivery snapshot. Assigning a
// route to a cargo that already travelled part of another route is allowed;
// the derivation reports any mismatch as misdirection.
//
// Example:
//
//	handler := NewAssignCargoToRouteCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoCargoFound) {
//	    log.Printf("Unknown cargo %s", cmd.TrackingID())
//	}
type AssignCargoToRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCargoToRouteCommandHandler creates a handler for route assignment.
// Requires a UoWFactory because the handling history is read in the same
// transaction that stores the re-derived cargo.
func NewAssignCargoToRouteCommandHandler(uowFactory UoWFactory) AssignCargoToRouteCommandHandler {
	return AssignCargoToRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route assignment command.
// Returns ErrNoCargoFound when the tracking ID is unknown.
func (h AssignCargoToRouteCommandHandler) Handle(ctx context.Context, command AssignCargoToRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	history, err := eventRepo.GetHandlingHistory(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = trackedCargo.AssignToRoute(command.Itinerary(), history); err != nil {
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
