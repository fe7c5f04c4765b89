package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingID. Tracking identities must be created via
// NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking ID must be created via NewTrackingID or TrackingIDFromString constructors")

// TrackingID uniquely identifies a cargo throughout its delivery lifecycle.
// It is assigned once at booking time and never reassigned.
//
// TrackingID is an immutable value object. The zero value is invalid and
// fails validation - use the constructors to create instances.
//
// Example:
//
//	id := kernel.NewTrackingID()
//	fmt.Println(id.String()) // e.g. "A2C4E6G8"
//
//	parsed, err := kernel.TrackingIDFromString("abc123")
//	// parsed.String() == "ABC123"
type TrackingID struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingID generates a new unique tracking identity.
// The identity is derived from a random UUID and rendered as a short
// uppercase token suitable for customer-facing tracking numbers.
func NewTrackingID() TrackingID {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return TrackingID{
		value: raw[:8],
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingIDFromString parses a tracking identity from its string form.
// The input is trimmed and uppercased; an empty input is rejected.
// This is the constructor used when reconstructing aggregates from
// persistence or when parsing identities from external requests.
func TrackingIDFromString(s string) (TrackingID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingID")
	}

	return TrackingID{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TrackingID was created through a constructor.
// Returns ErrTrackingIDIsNotConstructed for zero values.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the customer-facing string form of the tracking identity.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identities by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}
