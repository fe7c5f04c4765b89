package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrAssignCargoToRouteCommandIsNotConstructed = errors.New(
	"AssignCargoToRouteCommand must be created via NewAssignCargoToRouteCommand constructor",
)

// AssignCargoToRouteCommand represents a request to assign a chosen
// itinerary to a booked cargo. The itinerary usually comes from the route
// candidates offered by the routing service, but any structurally valid
// itinerary is accepted.
//
// Example:
//
//	cmd, err := NewAssignCargoToRouteCommand(trackingID, chosenItinerary)
//	if err != nil {
//	    return fmt.Errorf("invalid route assignment: %w", err)
//	}
//
//	handler := NewAssignCargoToRouteCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign route: %w", err)
//	}
type AssignCargoToRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  cargo.Itinerary

	guard guard.ConstructorGuard
}

// NewAssignCargoToRouteCommand creates a command to assign an itinerary to a cargo.
// Validates the tracking ID and the itinerary structure.
func NewAssignCargoToRouteCommand(
	trackingID kernel.TrackingID,
	itinerary cargo.Itinerary,
) (AssignCargoToRouteCommand, error) {
	assignCommand := AssignCargoToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setTrackingID(trackingID),
		assignCommand.setItinerary(itinerary),
	); err != nil {
		return AssignCargoToRouteCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCargoToRouteCommandIsNotConstructed if validation fails.
func (c AssignCargoToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoToRouteCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo being routed.
func (c AssignCargoToRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Itinerary returns the itinerary to assign.
func (c AssignCargoToRouteCommand) Itinerary() cargo.Itinerary {
	return c.itinerary
}

func (c *AssignCargoToRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *AssignCargoToRouteCommand) setItinerary(itinerary cargo.Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}

	c.itinerary = itinerary
	return nil
}
