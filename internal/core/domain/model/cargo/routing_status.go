package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// RoutingStatus reports how the cargo's itinerary relates to its route
// specification: no itinerary yet, a satisfying itinerary, or an itinerary
// that no longer satisfies the specification (after a destination change,
// for instance).
type RoutingStatus int

const (
	// RoutingStatusUnknown represents an invalid or undefined status.
	RoutingStatusUnknown RoutingStatus = iota

	// NotRouted means no itinerary has been assigned.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification.
	Routed

	// Misrouted means the assigned itinerary does not satisfy the route
	// specification. Surfaced, not blocked; derivation tolerates it.
	Misrouted
)

func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingStatusUnknown: "UNKNOWN",
		NotRouted:            "NOT_ROUTED",
		Routed:               "ROUTED",
		Misrouted:            "MISROUTED",
	}
}

// Validate checks that the RoutingStatus is one of the valid values.
func (s RoutingStatus) Validate() error {
	if s != NotRouted && s != Routed && s != Misrouted {
		return errs.NewValueIsInvalidErrorWithCause(
			"routingStatus", fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the uppercase wire form of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
