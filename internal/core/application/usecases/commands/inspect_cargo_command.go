package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrInspectCargoCommandIsNotConstructed = errors.New(
	"InspectCargoCommand must be created via NewInspectCargoCommand constructor",
)

// InspectCargoCommand represents a request to re-derive a cargo's delivery
// snapshot from its stored route, itinerary and history. The derivation is
// deterministic, so inspecting an unchanged cargo is a no-op; the command
// exists to refresh snapshots after operational corrections and from the
// periodic inspection job.
//
// Example:
//
//	cmd, err := NewInspectCargoCommand(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid inspection request: %w", err)
//	}
//
//	handler := NewInspectCargoCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to inspect cargo: %w", err)
//	}
type InspectCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewInspectCargoCommand creates a command to inspect a single cargo.
// Validates the tracking ID.
func NewInspectCargoCommand(trackingID kernel.TrackingID) (InspectCargoCommand, error) {
	inspectCommand := InspectCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := inspectCommand.setTrackingID(trackingID); err != nil {
		return InspectCargoCommand{}, err
	}

	return inspectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInspectCargoCommandIsNotConstructed if validation fails.
func (c InspectCargoCommand) Validate() error {
	return c.guard.Validate(ErrInspectCargoCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo to inspect.
func (c InspectCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *InspectCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
