package commands

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/pkg/errs"
)

// RegisterHandlingEventCommandHandler processes incoming handling reports.
// Validates the report against the registered cargo, appends the resulting
// event to the history and stores the cargo with a delivery snapshot
// re-derived from the full, grown history. Event and snapshot commit in one
// transaction, so readers never observe one without the other.
//
// Example:
//
//	handler := NewRegisterHandlingEventCommandHandler(uowFactory, eventFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoCargoFound) {
//	    log.Printf("Report references unknown cargo %s", cmd.TrackingID())
//	}
type RegisterHandlingEventCommandHandler struct {
	uowFactory   UoWFactory
	eventFactory services.HandlingEventFactory
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling reports.
// Requires a UoWFactory and the domain factory that resolves and validates
// the report's location and voyage references.
func NewRegisterHandlingEventCommandHandler(
	uowFactory UoWFactory,
	eventFactory services.HandlingEventFactory,
) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory:   uowFactory,
		eventFactory: eventFactory,
	}
}

// Handle processes the handling report.
// Returns ErrNoCargoFound for unknown tracking IDs and the factory's
// validation errors for unknown locations or voyages. Out of order and
// duplicate reports are accepted; the derivation absorbs them when
// replaying the history.
func (h RegisterHandlingEventCommandHandler) Handle(ctx context.Context, command RegisterHandlingEventCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	event, err := h.eventFactory.CreateHandlingEvent(
		ctx,
		command.TrackingID(),
		command.EventType(),
		command.UnLocode(),
		command.VoyageNumber(),
		command.CompletionTime(),
	)
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

	if err = eventRepo.Add(ctx, event); err != nil {
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
