package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
		"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
	)
	ErrCompletionTimeIsRequired = errors.New("completion time is required")
)

// RegisterHandlingEventCommand represents a raw handling report from a port
// agent: what happened to which cargo, where, on which voyage and when. The
// voyage number is only present for LOAD and UNLOAD reports; full
// cross-object validation happens in the handling event factory.
//
// Example:
//
//	cmd, err := NewRegisterHandlingEventCommand(
//	    trackingID, handling.Load, unLocode, &voyageNumber, completionTime)
//	if err != nil {
//	    return fmt.Errorf("invalid handling report: %w", err)
//	}
//
//	handler := NewRegisterHandlingEventCommandHandler(uowFactory, eventFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register handling event: %w", err)
//	}
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	trackingID     kernel.TrackingID
	eventType      handling.EventType
	unLocode       kernel.UnLocode
	voyageNumber   *voyage.Number
	completionTime time.Time

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command carrying a raw handling
// report. Validates each field in isolation; the type/voyage combination is
// checked later against the resolved objects.
func NewRegisterHandlingEventCommand(
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	unLocode kernel.UnLocode,
	voyageNumber *voyage.Number,
	completionTime time.Time,
) (RegisterHandlingEventCommand, error) {
	registerCommand := RegisterHandlingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setTrackingID(trackingID),
		registerCommand.setEventType(eventType),
		registerCommand.setUnLocode(unLocode),
		registerCommand.setVoyageNumber(voyageNumber),
		registerCommand.setCompletionTime(completionTime),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterHandlingEventCommandIsNotConstructed if validation fails.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// TrackingID returns the identity of the cargo that was handled.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// EventType returns the reported handling activity.
func (c RegisterHandlingEventCommand) EventType() handling.EventType {
	return c.eventType
}

// UnLocode returns the UN/LOCODE of the location where the handling happened.
func (c RegisterHandlingEventCommand) UnLocode() kernel.UnLocode {
	return c.unLocode
}

// VoyageNumber returns the reported voyage number, nil for port-only events.
func (c RegisterHandlingEventCommand) VoyageNumber() *voyage.Number {
	return c.voyageNumber
}

// CompletionTime returns when the handling physically happened.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}

func (c *RegisterHandlingEventCommand) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}

	c.unLocode = unLocode
	return nil
}

func (c *RegisterHandlingEventCommand) setVoyageNumber(voyageNumber *voyage.Number) error {
	if voyageNumber == nil {
		return nil
	}

	if err := voyageNumber.Validate(); err != nil {
		return err
	}

	c.voyageNumber = voyageNumber
	return nil
}

func (c *RegisterHandlingEventCommand) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return ErrCompletionTimeIsRequired
	}

	c.completionTime = completionTime
	return nil
}
