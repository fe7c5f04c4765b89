package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrItineraryIsNotConstructed is returned for zero-value itineraries.
// Use NewItinerary.
var ErrItineraryIsNotConstructed = errors.New("Itinerary must be created via NewItinerary constructor")

// Itinerary is the ordered plan of legs a cargo is expected to follow from
// origin to destination.
//
// Invariants, enforced at construction: at least one leg; every consecutive
// pair connects (the unload location of one leg is the load location of the
// next) and does not travel back in time (unload time does not exceed the
// next load time). An itinerary violating these is rejected, never silently
// accepted.
//
// Itinerary is an immutable value object; rerouting builds a new one.
type Itinerary struct {
	legs  []Leg
	guard guard.ConstructorGuard
}

// NewItinerary creates an itinerary from the given legs, validating the
// continuity invariants.
func NewItinerary(legs []Leg) (Itinerary, error) {
	if len(legs) == 0 {
		return Itinerary{}, errs.NewValueIsRequiredError("legs")
	}

	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return Itinerary{}, err
		}

		if i == 0 {
			continue
		}
		previous := legs[i-1]
		if !previous.UnloadLocation().UnLocode().IsEqual(leg.LoadLocation().UnLocode()) {
			return Itinerary{}, errs.NewValueIsInvalidErrorWithCause("legs",
				fmt.Errorf("leg %d unloads at %s but leg %d loads at %s",
					i-1, previous.UnloadLocation().UnLocode(), i, leg.LoadLocation().UnLocode()))
		}
		if previous.UnloadTime().After(leg.LoadTime()) {
			return Itinerary{}, errs.NewValueIsInvalidErrorWithCause("legs",
				fmt.Errorf("leg %d unloads after leg %d loads", i-1, i))
		}
	}

	copied := make([]Leg, len(legs))
	copy(copied, legs)

	return Itinerary{
		legs:  copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Itinerary was created through its constructor.
func (it Itinerary) Validate() error {
	return it.guard.Validate(ErrItineraryIsNotConstructed)
}

// Legs returns a copy of the itinerary's legs in travel order.
func (it Itinerary) Legs() []Leg {
	copied := make([]Leg, len(it.legs))
	copy(copied, it.legs)
	return copied
}

// InitialDepartureLocation returns the load location of the first leg.
func (it Itinerary) InitialDepartureLocation() location.Location {
	return it.legs[0].LoadLocation()
}

// FinalArrivalLocation returns the unload location of the last leg,
// the itinerary's destination.
func (it Itinerary) FinalArrivalLocation() location.Location {
	return it.legs[len(it.legs)-1].UnloadLocation()
}

// FinalArrivalTime returns the unload time of the last leg.
func (it Itinerary) FinalArrivalTime() time.Time {
	return it.legs[len(it.legs)-1].UnloadTime()
}

// IsExpected reports whether the handling event matches a point on the
// plan: RECEIVE at the origin, LOAD or UNLOAD at the load or unload
// location of some leg on the matching voyage, CLAIM at the final
// destination. CUSTOMS is never itinerary-checked and is always expected.
// An event with no matching point drives misdirection.
func (it Itinerary) IsExpected(event handling.Event) bool {
	if it.Validate() != nil || event.Validate() != nil {
		return false
	}

	if event.Type() == handling.Customs {
		return true
	}

	_, matched := it.MatchedLeg(event)
	return matched
}

// MatchedLeg returns the leg the handling event corresponds to, if any.
// RECEIVE matches the first leg at the origin, CLAIM the last leg at the
// destination; LOAD and UNLOAD match by location and voyage. CUSTOMS
// matches no leg.
func (it Itinerary) MatchedLeg(event handling.Event) (Leg, bool) {
	if it.Validate() != nil || event.Validate() != nil {
		return Leg{}, false
	}

	eventLocode := event.Location().UnLocode()

	switch event.Type() {
	case handling.Receive:
		first := it.legs[0]
		if first.LoadLocation().UnLocode().IsEqual(eventLocode) {
			return first, true
		}

	case handling.Load:
		for _, leg := range it.legs {
			if leg.LoadLocation().UnLocode().IsEqual(eventLocode) &&
				event.Voyage() != nil && leg.Voyage().IsEqual(*event.Voyage()) {
				return leg, true
			}
		}

	case handling.Unload:
		for _, leg := range it.legs {
			if leg.UnloadLocation().UnLocode().IsEqual(eventLocode) &&
				event.Voyage() != nil && leg.Voyage().IsEqual(*event.Voyage()) {
				return leg, true
			}
		}

	case handling.Claim:
		last := it.legs[len(it.legs)-1]
		if last.UnloadLocation().UnLocode().IsEqual(eventLocode) {
			return last, true
		}

	case handling.Customs, handling.Unknown:
	}

	return Leg{}, false
}

// IsEqual compares two itineraries leg by leg.
func (it Itinerary) IsEqual(other Itinerary) bool {
	if len(it.legs) != len(other.legs) {
		return false
	}
	for i, leg := range it.legs {
		if !leg.IsEqual(other.legs[i]) {
			return false
		}
	}
	return true
}
