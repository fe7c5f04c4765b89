package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus is the coarse lifecycle phase of a cargo, derived purely
// from the type of its most recent handling event.
//
// State transitions:
//
//	NotReceived ──> InPort ──> OnboardCarrier ──> InPort ──> ... ──> Claimed
//	                  (alternating per leg)
//
// Misdirection is an independent flag overlay on the Delivery, not a status.
type TransportStatus int

const (
	// TransportStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized TransportStatus values.
	TransportStatusUnknown TransportStatus = iota

	// NotReceived means no handling event has been recorded yet.
	NotReceived

	// InPort means the cargo was received, unloaded or cleared through
	// customs and currently sits in a port.
	InPort

	// OnboardCarrier means the cargo was loaded and is travelling on a voyage.
	OnboardCarrier

	// Claimed means the customer has claimed the cargo. Terminal.
	Claimed
)

func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportStatusUnknown: "UNKNOWN",
		NotReceived:            "NOT_RECEIVED",
		InPort:                 "IN_PORT",
		OnboardCarrier:         "ONBOARD_CARRIER",
		Claimed:                "CLAIMED",
	}
}

func getValidTransportStatusStrings() map[TransportStatus]string {
	//nolint:exhaustive // TransportStatusUnknown is intentionally excluded as it's invalid
	return map[TransportStatus]string{
		NotReceived:    "NOT_RECEIVED",
		InPort:         "IN_PORT",
		OnboardCarrier: "ONBOARD_CARRIER",
		Claimed:        "CLAIMED",
	}
}

// Validate checks that the TransportStatus is a valid lifecycle phase.
func (s TransportStatus) Validate() error {
	if _, ok := getValidTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transportStatus", fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the uppercase wire form of the status.
// Implements fmt.Stringer; safe on invalid values.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
