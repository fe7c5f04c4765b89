package cargo

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
)

var (
	// ErrCargoIsNotConstructed is returned when a Cargo instance was not
	// created through NewCargo or RestoreCargo.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")
)

// Cargo is the aggregate root binding a tracking identity, the contractual
// route specification, the planned itinerary (possibly unset) and the
// derived delivery snapshot.
//
// Lifecycle: booked with an identity and an initial route specification
// (no itinerary, no history) -> itinerary assigned zero or more times ->
// handling events recorded monotonically -> possibly rerouted mid-journey ->
// eventually claimed.
//
// The delivery snapshot is always kept in sync by replaying the full
// handling history whenever the itinerary or route specification changes or
// a new event is recorded. AssignToRoute, SpecifyNewRoute and
// DeriveDeliveryProgress are the only mutators of the snapshot.
type Cargo struct {
	trackingID         kernel.TrackingID
	routeSpecification RouteSpecification
	itinerary          *Itinerary
	delivery           Delivery

	isConstructed bool
}

// NewCargo books a new cargo with the given identity and route
// specification. The cargo starts unrouted with an empty history, so the
// initial delivery reports NOT_RECEIVED with no expected activity.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	c.delivery = DeriveDelivery(c.routeSpecification, nil, handling.EmptyHistory())
	return c, nil
}

// RestoreCargo reconstructs a cargo from persistence. The stored delivery
// snapshot is taken as-is; the repository is responsible for passing back
// exactly what was saved.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	if itinerary != nil {
		if err := itinerary.Validate(); err != nil {
			return nil, err
		}
		copied := *itinerary
		c.itinerary = &copied
	}

	c.delivery = delivery
	return c, nil
}

// Validate ensures the Cargo was constructed through NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// IsEqual compares two cargos by tracking identity.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the cargo's stable tracking identity.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the location the cargo starts from.
func (c *Cargo) Origin() location.Location {
	return c.routeSpecification.Origin()
}

// RouteSpecification returns the current delivery contract.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the assigned route plan, nil while unrouted.
func (c *Cargo) Itinerary() *Itinerary {
	return c.itinerary
}

// Delivery returns the current derived snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// AssignToRoute assigns a new itinerary and re-derives the delivery
// snapshot against the given history.
//
// The itinerary must structurally satisfy the route specification's origin;
// full satisfaction (destination, deadline) is not required here — a
// non-satisfying itinerary is surfaced through the MISROUTED routing status
// instead of being blocked.
func (c *Cargo) AssignToRoute(itinerary Itinerary, history handling.History) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}

	if !itinerary.InitialDepartureLocation().UnLocode().IsEqual(c.routeSpecification.Origin().UnLocode()) {
		return errs.NewValueIsInvalidErrorWithCause("itinerary",
			fmt.Errorf("itinerary departs from %s but cargo originates in %s",
				itinerary.InitialDepartureLocation().UnLocode(),
				c.routeSpecification.Origin().UnLocode()))
	}

	c.itinerary = &itinerary
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
	return nil
}

// SpecifyNewRoute replaces the route specification and re-derives the
// delivery snapshot against the existing itinerary, which may no longer
// satisfy the new specification. That mismatch is surfaced by the routing
// status, not blocked.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification, history handling.History) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
	return nil
}

// DeriveDeliveryProgress recomputes the delivery snapshot from the current
// route specification and itinerary and the given handling history,
// replacing the previous snapshot wholesale.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) {
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history)
}

func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}
	c.routeSpecification = routeSpecification
	return nil
}
