package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned for zero-value legs. Use NewLeg.
var ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")

// Leg is one planned carrier segment of an itinerary: the cargo is loaded
// onto a voyage at one location and unloaded at another.
//
// Leg is an immutable value object. Load must precede unload and the two
// locations must differ.
type Leg struct { //nolint:recvcheck //using for validation
	voyage         voyage.Voyage
	loadLocation   location.Location
	unloadLocation location.Location
	loadTime       time.Time
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg creates a leg on the given voyage.
func NewLeg(
	voy voyage.Voyage,
	loadLocation, unloadLocation location.Location,
	loadTime, unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyage(voy),
		leg.setLocations(loadLocation, unloadLocation),
		leg.setTimes(loadTime, unloadTime),
	); err != nil {
		return Leg{}, err
	}

	return leg, nil
}

// Validate checks that the Leg was created through its constructor.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Voyage returns the carrier voyage this leg travels on.
func (l Leg) Voyage() voyage.Voyage {
	return l.voyage
}

// LoadLocation returns where the cargo is loaded for this leg.
func (l Leg) LoadLocation() location.Location {
	return l.loadLocation
}

// UnloadLocation returns where the cargo is unloaded after this leg.
func (l Leg) UnloadLocation() location.Location {
	return l.unloadLocation
}

// LoadTime returns the scheduled load time.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the scheduled unload time.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual compares two legs field-wise.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyage.IsEqual(other.voyage) &&
		l.loadLocation.UnLocode().IsEqual(other.loadLocation.UnLocode()) &&
		l.unloadLocation.UnLocode().IsEqual(other.unloadLocation.UnLocode()) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

func (l *Leg) setVoyage(voy voyage.Voyage) error {
	if err := voy.Validate(); err != nil {
		return err
	}
	l.voyage = voy
	return nil
}

func (l *Leg) setLocations(loadLocation, unloadLocation location.Location) error {
	if err := errors.Join(loadLocation.Validate(), unloadLocation.Validate()); err != nil {
		return err
	}
	if loadLocation.UnLocode().IsEqual(unloadLocation.UnLocode()) {
		return errs.NewValueIsInvalidErrorWithCause("leg",
			fmt.Errorf("load location %s equals unload location", loadLocation.UnLocode()))
	}

	l.loadLocation = loadLocation
	l.unloadLocation = unloadLocation
	return nil
}

func (l *Leg) setTimes(loadTime, unloadTime time.Time) error {
	if loadTime.IsZero() || unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("loadTime and unloadTime")
	}
	if !loadTime.Before(unloadTime) {
		return errs.NewValueIsInvalidErrorWithCause("leg times",
			fmt.Errorf("load time %s is not before unload time %s", loadTime, unloadTime))
	}

	l.loadTime = loadTime
	l.unloadTime = unloadTime
	return nil
}
