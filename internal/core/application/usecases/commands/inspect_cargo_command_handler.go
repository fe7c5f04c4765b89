package commands

import (
	"context"
	"errors"

	"cargotracker/internal/pkg/errs"
)

// InspectCargoCommandHandler re-derives a cargo's delivery snapshot.
// Loads the cargo and its full handling history, recomputes the snapshot
// and stores the result. Used directly after operational corrections and by
// the periodic delivery inspection job.
//
// Example:
//
//	handler := NewInspectCargoCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("inspection failed: %w", err)
//	}
type InspectCargoCommandHandler struct {
	uowFactory UoWFactory
}

// NewInspectCargoCommandHandler creates a handler for cargo inspection.
// Requires a UoWFactory because the history read and the snapshot write
// belong to one transaction.
func NewInspectCargoCommandHandler(uowFactory UoWFactory) InspectCargoCommandHandler {
	return InspectCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection command.
// Returns ErrNoCargoFound when the tracking ID is unknown.
func (h InspectCargoCommandHandler) Handle(ctx context.Context, command InspectCargoCommand) error {
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

	trackedCargo.DeriveDeliveryProgress(history)

	if err = cargoRepo.Update(ctx, trackedCargo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
