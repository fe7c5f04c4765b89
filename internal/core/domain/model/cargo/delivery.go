package cargo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// Delivery is the derived snapshot of a cargo's progress: where it is,
// whether it follows the plan, what should happen to it next and when it is
// expected to arrive.
//
// Delivery is a pure function of (RouteSpecification, Itinerary,
// HandlingHistory). It is recomputed in full on every relevant change and
// always replaced wholesale on its Cargo; no code path mutates its fields.
// Derivation never fails: when the plan and the facts disagree, the
// snapshot degrades gracefully (unknown ETA, no expected activity) instead
// of raising an error.
type Delivery struct {
	transportStatus       TransportStatus
	routingStatus         RoutingStatus
	lastKnownLocation     *location.Location
	currentVoyage         *voyage.Voyage
	misdirected           bool
	unloadedAtDestination bool
	eta                   *time.Time
	nextExpectedActivity  HandlingActivity
	lastEvent             *handling.Event
	calculatedAt          time.Time
}

// DeriveDelivery replays the full handling history against the route
// specification and itinerary and produces a fresh snapshot.
//
// The itinerary may be nil (cargo not routed yet) and the history may be
// empty (cargo not received yet). Deterministic and idempotent: identical
// inputs yield a field-equal Delivery, differing only in CalculatedAt.
func DeriveDelivery(
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	history handling.History,
) Delivery {
	d := Delivery{
		routingStatus:        deriveRoutingStatus(routeSpecification, itinerary),
		nextExpectedActivity: NoActivity(),
		calculatedAt:         time.Now(),
	}

	lastEvent := history.MostRecentlyCompletedEvent()
	if lastEvent == nil {
		d.transportStatus = NotReceived
		if d.onTrack() {
			d.nextExpectedActivity = NewHandlingActivity(handling.Receive, routeSpecification.Origin())
		}
		return d
	}

	d.lastEvent = lastEvent
	d.transportStatus = deriveTransportStatus(lastEvent.Type())
	d.misdirected = itinerary == nil || !itinerary.IsExpected(*lastEvent)

	lastLocation := lastEvent.Location()
	d.lastKnownLocation = &lastLocation
	if lastEvent.Type() == handling.Load {
		d.currentVoyage = lastEvent.Voyage()
	}

	if itinerary != nil && lastEvent.Type() == handling.Unload {
		d.unloadedAtDestination = lastEvent.Location().UnLocode().
			IsEqual(itinerary.FinalArrivalLocation().UnLocode())
	}

	if !d.onTrack() {
		return d
	}

	d.nextExpectedActivity = deriveNextExpectedActivity(routeSpecification, *itinerary, history)
	if d.transportStatus != Claimed {
		eta := itinerary.FinalArrivalTime()
		d.eta = &eta
	}
	return d
}

// TransportStatus returns the coarse lifecycle phase of the cargo.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus reports how the itinerary relates to the route specification.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// LastKnownLocation returns where the cargo was last handled, nil before
// the first event.
func (d Delivery) LastKnownLocation() *location.Location {
	return d.lastKnownLocation
}

// CurrentVoyage returns the voyage the cargo is aboard, nil when it is not
// on a carrier.
func (d Delivery) CurrentVoyage() *voyage.Voyage {
	return d.currentVoyage
}

// IsMisdirected reports whether the most recent handling fact does not
// match the planned itinerary, or no plan exists to match against. It is a
// queryable state, not an error; it never blocks further event recording.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// IsUnloadedAtDestination reports whether the last event was an UNLOAD at
// the itinerary's final destination.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.unloadedAtDestination
}

// EstimatedTimeOfArrival returns the expected arrival time, or nil when it
// cannot be determined (unrouted, misdirected or already claimed).
func (d Delivery) EstimatedTimeOfArrival() *time.Time {
	return d.eta
}

// NextExpectedActivity returns what should happen to the cargo next, or the
// "no activity" sentinel.
func (d Delivery) NextExpectedActivity() HandlingActivity {
	return d.nextExpectedActivity
}

// LastEvent returns the most recently completed handling event, nil before
// the first event.
func (d Delivery) LastEvent() *handling.Event {
	return d.lastEvent
}

// CalculatedAt returns when this snapshot was derived.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// IsEqual compares two snapshots in all fields except CalculatedAt.
func (d Delivery) IsEqual(other Delivery) bool {
	if d.transportStatus != other.transportStatus ||
		d.routingStatus != other.routingStatus ||
		d.misdirected != other.misdirected ||
		d.unloadedAtDestination != other.unloadedAtDestination ||
		!d.nextExpectedActivity.IsEqual(other.nextExpectedActivity) {
		return false
	}

	if !locationsEqual(d.lastKnownLocation, other.lastKnownLocation) {
		return false
	}
	if !voyagesEqual(d.currentVoyage, other.currentVoyage) {
		return false
	}
	if !timesEqual(d.eta, other.eta) {
		return false
	}

	if d.lastEvent == nil || other.lastEvent == nil {
		return d.lastEvent == other.lastEvent
	}
	return d.lastEvent.IsEqual(*other.lastEvent)
}

// onTrack reports whether the cargo is routed and following its plan;
// next-activity and ETA are only derivable on track.
func (d Delivery) onTrack() bool {
	return d.routingStatus == Routed && !d.misdirected
}

func deriveRoutingStatus(routeSpecification RouteSpecification, itinerary *Itinerary) RoutingStatus {
	if itinerary == nil {
		return NotRouted
	}
	if routeSpecification.IsSatisfiedBy(*itinerary) {
		return Routed
	}
	return Misrouted
}

func deriveTransportStatus(lastEventType handling.EventType) TransportStatus {
	switch lastEventType {
	case handling.Load:
		return OnboardCarrier
	case handling.Receive, handling.Unload, handling.Customs:
		return InPort
	case handling.Claim:
		return Claimed
	case handling.Unknown:
		return TransportStatusUnknown
	default:
		return TransportStatusUnknown
	}
}

// deriveNextExpectedActivity walks the itinerary from the position of the
// last relevant event. CUSTOMS is a planning no-op: the walk uses the most
// recent non-customs event as its anchor.
func deriveNextExpectedActivity(
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	history handling.History,
) HandlingActivity {
	anchor := lastNonCustomsEvent(history)
	if anchor == nil {
		return NewHandlingActivity(handling.Receive, routeSpecification.Origin())
	}

	legs := itinerary.Legs()

	switch anchor.Type() {
	case handling.Receive:
		first := legs[0]
		return NewHandlingActivityOnVoyage(handling.Load, first.LoadLocation(), first.Voyage())

	case handling.Load:
		if leg, ok := itinerary.MatchedLeg(*anchor); ok {
			return NewHandlingActivityOnVoyage(handling.Unload, leg.UnloadLocation(), leg.Voyage())
		}

	case handling.Unload:
		for i, leg := range legs {
			if !leg.UnloadLocation().UnLocode().IsEqual(anchor.Location().UnLocode()) {
				continue
			}
			if i == len(legs)-1 {
				return NewHandlingActivity(handling.Claim, leg.UnloadLocation())
			}
			next := legs[i+1]
			return NewHandlingActivityOnVoyage(handling.Load, next.LoadLocation(), next.Voyage())
		}

	case handling.Claim, handling.Customs, handling.Unknown:
	}

	return NoActivity()
}

func lastNonCustomsEvent(history handling.History) *handling.Event {
	events := history.DistinctEventsByCompletionTime()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type() != handling.Customs {
			return &events[i]
		}
	}
	return nil
}

func locationsEqual(a, b *location.Location) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.UnLocode().IsEqual(b.UnLocode())
}

func voyagesEqual(a, b *voyage.Voyage) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
