package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand represents a request to redirect a cargo to a new
// destination. Origin and arrival deadline of the delivery contract are kept;
// only the destination changes.
//
// Example:
//
//	cmd, err := NewChangeDestinationCommand(trackingID, newDestination)
//	if err != nil {
//	    return fmt.Errorf("invalid destination change: %w", err)
//	}
//
//	handler := NewChangeDestinationCommandHandler(uowFactory, locationRepo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to change destination: %w", err)
//	}
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	trackingID          kernel.TrackingID
	destinationUnLocode kernel.UnLocode

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to redirect a cargo.
// Validates the tracking ID and the new destination UN/LOCODE.
func NewChangeDestinationCommand(
	trackingID kernel.TrackingID,
	destinationUnLocode kernel.UnLocode,
) (ChangeDestinationCommand, error) {
	changeCommand := ChangeDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changeCommand.setTrackingID(trackingID),
		changeCommand.setDestinationUnLocode(destinationUnLocode),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeDestinationCommandIsNotConstructed if validation fails.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo being redirected.
func (c ChangeDestinationCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// DestinationUnLocode returns the UN/LOCODE of the new destination.
func (c ChangeDestinationCommand) DestinationUnLocode() kernel.UnLocode {
	return c.destinationUnLocode
}

func (c *ChangeDestinationCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *ChangeDestinationCommand) setDestinationUnLocode(destinationUnLocode kernel.UnLocode) error {
	if err := destinationUnLocode.Validate(); err != nil {
		return err
	}

	c.destinationUnLocode = destinationUnLocode
	return nil
}
