package cargo

import (
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/guard"
)

// HandlingActivity describes one expected handling step: what should happen
// to the cargo next, where, and on which voyage when relevant.
//
// The zero value is the "no activity" sentinel, reported when the journey is
// complete, the cargo is misdirected, or no plan exists.
type HandlingActivity struct {
	eventType handling.EventType
	location  location.Location
	voyage    *voyage.Voyage
	guard     guard.ConstructorGuard
}

// NoActivity returns the sentinel meaning nothing is expected to happen next.
func NoActivity() HandlingActivity {
	return HandlingActivity{}
}

// NewHandlingActivity creates an expected activity without a voyage
// (RECEIVE, CLAIM, CUSTOMS).
func NewHandlingActivity(eventType handling.EventType, loc location.Location) HandlingActivity {
	return HandlingActivity{
		eventType: eventType,
		location:  loc,
		guard:     guard.NewConstructorGuard(),
	}
}

// NewHandlingActivityOnVoyage creates an expected activity bound to a voyage
// (LOAD, UNLOAD).
func NewHandlingActivityOnVoyage(
	eventType handling.EventType,
	loc location.Location,
	voy voyage.Voyage,
) HandlingActivity {
	return HandlingActivity{
		eventType: eventType,
		location:  loc,
		voyage:    &voy,
		guard:     guard.NewConstructorGuard(),
	}
}

// IsNone reports whether this is the "no activity" sentinel.
func (a HandlingActivity) IsNone() bool {
	return a.guard.Validate(nil) != nil
}

// Type returns the expected handling event type.
func (a HandlingActivity) Type() handling.EventType {
	return a.eventType
}

// Location returns where the activity is expected to happen.
func (a HandlingActivity) Location() location.Location {
	return a.location
}

// Voyage returns the voyage the activity is expected on, nil when the
// activity type does not involve one.
func (a HandlingActivity) Voyage() *voyage.Voyage {
	return a.voyage
}

// IsEqual compares two activities field-wise. Two sentinels are equal.
func (a HandlingActivity) IsEqual(other HandlingActivity) bool {
	if a.IsNone() || other.IsNone() {
		return a.IsNone() == other.IsNone()
	}

	if a.eventType != other.eventType ||
		!a.location.UnLocode().IsEqual(other.location.UnLocode()) {
		return false
	}
	if a.voyage == nil || other.voyage == nil {
		return a.voyage == other.voyage
	}
	return a.voyage.IsEqual(*other.voyage)
}

// String implements fmt.Stringer for logs and tracking output.
func (a HandlingActivity) String() string {
	if a.IsNone() {
		return "none"
	}
	if a.voyage != nil {
		return fmt.Sprintf("%s in %s on voyage %s", a.eventType, a.location, a.voyage)
	}
	return fmt.Sprintf("%s in %s", a.eventType, a.location)
}
