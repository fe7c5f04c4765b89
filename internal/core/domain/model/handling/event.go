// Package handling models the factual side of cargo delivery: immutable
// handling events and the append-only history they form for each cargo.
package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when attempting to use an
// improperly initialized Event. Events must be created via NewEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is one immutable handling fact about a cargo: what happened to it,
// where, when it physically happened (completion time) and when it was
// recorded (registration time, which may lag completion).
//
// Events are append-only; once recorded they are never edited or deleted.
// LOAD and UNLOAD events carry the voyage involved, the other types do not.
type Event struct { //nolint:recvcheck //using for validation
	trackingID       kernel.TrackingID
	eventType        EventType
	location         location.Location
	voyage           *voyage.Voyage
	completionTime   time.Time
	registrationTime time.Time
	guard            guard.ConstructorGuard
}

// NewEvent creates a handling event for the cargo identified by trackingID.
// The voyage is required for LOAD and UNLOAD events and must be nil for all
// other types. Completion and registration times are required.
func NewEvent(
	trackingID kernel.TrackingID,
	eventType EventType,
	loc location.Location,
	voy *voyage.Voyage,
	completionTime, registrationTime time.Time,
) (Event, error) {
	event := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setTrackingID(trackingID),
		event.setEventType(eventType),
		event.setLocation(loc),
		event.setTimes(completionTime, registrationTime),
	); err != nil {
		return Event{}, err
	}

	if err := event.setVoyage(voy); err != nil {
		return Event{}, err
	}

	return event, nil
}

// Validate checks that the Event was created through its constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// TrackingID returns the identity of the cargo this event belongs to.
func (e Event) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Type returns the kind of handling activity recorded.
func (e Event) Type() EventType {
	return e.eventType
}

// Location returns where the handling took place.
func (e Event) Location() location.Location {
	return e.location
}

// Voyage returns the carrier voyage for LOAD and UNLOAD events, nil otherwise.
func (e Event) Voyage() *voyage.Voyage {
	return e.voyage
}

// CompletionTime returns when the handling physically happened.
func (e Event) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the event was recorded in the system.
func (e Event) RegistrationTime() time.Time {
	return e.registrationTime
}

// IsEqual compares two events by activity identity: cargo, type, location,
// voyage and completion time. Registration time does not participate.
func (e Event) IsEqual(other Event) bool {
	if !e.trackingID.IsEqual(other.trackingID) ||
		e.eventType != other.eventType ||
		!e.location.UnLocode().IsEqual(other.location.UnLocode()) ||
		!e.completionTime.Equal(other.completionTime) {
		return false
	}

	if e.voyage == nil || other.voyage == nil {
		return e.voyage == other.voyage
	}
	return e.voyage.IsEqual(*other.voyage)
}

// String implements fmt.Stringer for logs and error messages.
func (e Event) String() string {
	if e.voyage != nil {
		return fmt.Sprintf("%s @ %s on voyage %s (completed %s)",
			e.eventType, e.location, e.voyage, e.completionTime.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s @ %s (completed %s)",
		e.eventType, e.location, e.completionTime.Format(time.RFC3339))
}

func (e *Event) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	e.location = loc
	return nil
}

func (e *Event) setTimes(completionTime, registrationTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}

	e.completionTime = completionTime
	e.registrationTime = registrationTime
	return nil
}

func (e *Event) setVoyage(voy *voyage.Voyage) error {
	if e.eventType.RequiresVoyage() {
		if voy == nil {
			return errs.NewValueIsRequiredErrorWithCause("voyage",
				fmt.Errorf("%s events must reference a voyage", e.eventType))
		}
		if err := voy.Validate(); err != nil {
			return err
		}
		copied := *voy
		e.voyage = &copied
		return nil
	}

	if voy != nil {
		return errs.NewValueIsInvalidErrorWithCause("voyage",
			fmt.Errorf("%s events must not reference a voyage", e.eventType))
	}
	return nil
}
