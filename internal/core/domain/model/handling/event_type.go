package handling

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// EventType is the closed enumeration of physical handling activities.
// The derivation logic in the cargo model switches over this enumeration;
// it is a finite, auditable lookup and not open for extension.
//
// LOAD and UNLOAD happen on board a carrier and therefore require a voyage;
// the remaining types happen in a port and must not carry one.
type EventType int

const (
	// Unknown represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized EventType values.
	Unknown EventType = iota

	// Receive marks the physical receipt of the cargo at its origin.
	Receive

	// Load marks the cargo being loaded onto a carrier voyage.
	Load

	// Unload marks the cargo being unloaded from a carrier voyage.
	Unload

	// Customs marks a customs inspection. Customs is never checked against
	// the itinerary; it is a planning no-op waypoint.
	Customs

	// Claim marks the cargo being claimed by the customer at its destination.
	Claim
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		Unknown: "UNKNOWN",
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[EventType]string{
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// EventTypeFromString parses an event type from its wire form ("LOAD" etc.).
// Returns an error for unknown names.
func EventTypeFromString(s string) (EventType, error) {
	for eventType, name := range getValidEventTypeStrings() {
		if name == s {
			return eventType, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"eventType", fmt.Errorf("%s is not a valid handling event type", s))
}

// Validate checks that the EventType is one of the five valid activities.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType", fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// String returns the uppercase wire form of the event type.
// Implements fmt.Stringer; safe on invalid values.
func (t EventType) String() string {
	if s, ok := getEventTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// RequiresVoyage reports whether events of this type must reference the
// carrier voyage involved. True for LOAD and UNLOAD only.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}
