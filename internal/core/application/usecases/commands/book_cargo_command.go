package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrBookCargoCommandIsNotConstructed = errors.New(
		"BookCargoCommand must be created via NewBookCargoCommand constructor",
	)
	ErrArrivalDeadlineIsRequired = errors.New("arrival deadline is required")
)

// BookCargoCommand represents a request to book a new cargo.
// Encapsulates the tracking identity plus the initial delivery contract:
// origin, destination and the arrival deadline.
//
// Example:
//
//	trackingID := kernel.NewTrackingID()
//	cmd, err := NewBookCargoCommand(trackingID, origin, destination, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory, locationRepo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book cargo: %w", err)
//	}
//	fmt.Printf("Cargo %s booked and awaiting routing", trackingID)
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID          kernel.TrackingID
	originUnLocode      kernel.UnLocode
	destinationUnLocode kernel.UnLocode
	arrivalDeadline     time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo.
// Validates the tracking ID, both UN/LOCODEs and that a deadline is given.
// Returns an error if any validation fails.
func NewBookCargoCommand(
	trackingID kernel.TrackingID,
	originUnLocode kernel.UnLocode,
	destinationUnLocode kernel.UnLocode,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	bookCommand := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookCommand.setTrackingID(trackingID),
		bookCommand.setOriginUnLocode(originUnLocode),
		bookCommand.setDestinationUnLocode(destinationUnLocode),
		bookCommand.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return bookCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBookCargoCommandIsNotConstructed if validation fails.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// TrackingID returns the identity the new cargo will be booked under.
func (c BookCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// OriginUnLocode returns the UN/LOCODE of the origin location.
func (c BookCargoCommand) OriginUnLocode() kernel.UnLocode {
	return c.originUnLocode
}

// DestinationUnLocode returns the UN/LOCODE of the destination location.
func (c BookCargoCommand) DestinationUnLocode() kernel.UnLocode {
	return c.destinationUnLocode
}

// ArrivalDeadline returns the contractual arrival deadline.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *BookCargoCommand) setOriginUnLocode(originUnLocode kernel.UnLocode) error {
	if err := originUnLocode.Validate(); err != nil {
		return err
	}

	c.originUnLocode = originUnLocode
	return nil
}

func (c *BookCargoCommand) setDestinationUnLocode(destinationUnLocode kernel.UnLocode) error {
	if err := destinationUnLocode.Validate(); err != nil {
		return err
	}

	c.destinationUnLocode = destinationUnLocode
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return ErrArrivalDeadlineIsRequired
	}

	c.arrivalDeadline = arrivalDeadline
	return nil
}
