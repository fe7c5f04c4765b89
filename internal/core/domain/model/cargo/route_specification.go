package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned for zero-value route
// specifications. Use NewRouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errors.New(
	"RouteSpecification must be created via NewRouteSpecification constructor")

// RouteSpecification is the committed delivery contract: where the cargo
// starts, where it must go and by when. The arrival deadline is a calendar
// date; time-of-day on the deadline day still satisfies it.
//
// RouteSpecification is an immutable value object. Changing destination or
// deadline means constructing a new specification, never mutating in place.
type RouteSpecification struct { //nolint:recvcheck //using for validation
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification creates a route specification.
// Origin and destination must be distinct valid locations and the deadline
// is required; it is truncated to day granularity on construction.
func NewRouteSpecification(
	origin, destination location.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	rs := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rs.setLocations(origin, destination),
		rs.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	return rs, nil
}

// Validate checks that the RouteSpecification was created through its constructor.
func (rs RouteSpecification) Validate() error {
	return rs.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns the location the cargo starts from.
func (rs RouteSpecification) Origin() location.Location {
	return rs.origin
}

// Destination returns the location the cargo must reach.
func (rs RouteSpecification) Destination() location.Location {
	return rs.destination
}

// ArrivalDeadline returns the calendar date the cargo must arrive by,
// truncated to midnight.
func (rs RouteSpecification) ArrivalDeadline() time.Time {
	return rs.arrivalDeadline
}

// IsSatisfiedBy reports whether the itinerary fulfils this specification:
// it departs from the origin, arrives at the destination, and its final
// unload happens no later than the arrival deadline day. No side effects.
func (rs RouteSpecification) IsSatisfiedBy(itinerary Itinerary) bool {
	if rs.Validate() != nil || itinerary.Validate() != nil {
		return false
	}

	if !itinerary.InitialDepartureLocation().UnLocode().IsEqual(rs.origin.UnLocode()) {
		return false
	}
	if !itinerary.FinalArrivalLocation().UnLocode().IsEqual(rs.destination.UnLocode()) {
		return false
	}

	// Deadline is compared at day granularity.
	arrivalDay := truncateToDay(itinerary.FinalArrivalTime())
	return !arrivalDay.After(rs.arrivalDeadline)
}

// IsEqual compares two route specifications field-wise.
func (rs RouteSpecification) IsEqual(other RouteSpecification) bool {
	return rs.origin.UnLocode().IsEqual(other.origin.UnLocode()) &&
		rs.destination.UnLocode().IsEqual(other.destination.UnLocode()) &&
		rs.arrivalDeadline.Equal(other.arrivalDeadline)
}

func (rs *RouteSpecification) setLocations(origin, destination location.Location) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.UnLocode().IsEqual(destination.UnLocode()) {
		return errs.NewValueIsInvalidErrorWithCause("routeSpecification",
			fmt.Errorf("origin %s equals destination", origin.UnLocode()))
	}

	rs.origin = origin
	rs.destination = destination
	return nil
}

func (rs *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}

	rs.arrivalDeadline = truncateToDay(arrivalDeadline)
	return nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
