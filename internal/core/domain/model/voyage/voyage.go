// Package voyage models carrier voyages: uniquely numbered series of
// scheduled carrier movements between locations.
package voyage

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrVoyageIsNotConstructed is returned when attempting to use an
// improperly initialized Voyage. Voyages must be created via NewVoyage
// or assembled with a Builder.
var ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage constructor")

// Voyage is a uniquely identifiable series of carrier movements.
// Cargo legs reference voyages by number; handling events for LOAD and
// UNLOAD record the voyage the cargo was put on or taken off.
//
// Voyage is an immutable value object. The zero value is invalid and
// fails validation - use NewVoyage or the Builder.
type Voyage struct { //nolint:recvcheck //using for validation
	number   Number
	schedule Schedule
	guard    guard.ConstructorGuard
}

// NewVoyage creates a Voyage with the given number and schedule.
func NewVoyage(number Number, schedule Schedule) (Voyage, error) {
	v := Voyage{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(v.setNumber(number), v.setSchedule(schedule)); err != nil {
		return Voyage{}, err
	}

	return v, nil
}

// Validate checks that the Voyage was created through its constructor.
func (v Voyage) Validate() error {
	return v.guard.Validate(ErrVoyageIsNotConstructed)
}

// Number returns the voyage number identifying this voyage.
func (v Voyage) Number() Number {
	return v.number
}

// Schedule returns the voyage's schedule of carrier movements.
func (v Voyage) Schedule() Schedule {
	return v.schedule
}

// String implements fmt.Stringer and returns the voyage number.
func (v Voyage) String() string {
	return v.number.String()
}

// IsEqual compares two voyages by their voyage number.
func (v Voyage) IsEqual(other Voyage) bool {
	return v.number.IsEqual(other.number)
}

func (v *Voyage) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	v.number = number
	return nil
}

func (v *Voyage) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	v.schedule = schedule
	return nil
}

// Builder assembles a voyage movement by movement, carrying the arrival
// location of the previous movement forward as the departure location of
// the next one.
//
// Example:
//
//	v, err := voyage.NewBuilder(number, location.Hongkong).
//	    AddMovement(location.Melbourne, dep1, arr1).
//	    AddMovement(location.Dallas, dep2, arr2).
//	    Build()
type Builder struct {
	number            Number
	departureLocation location.Location
	movements         []CarrierMovement
	err               error
}

// NewBuilder starts building a voyage departing from the given location.
func NewBuilder(number Number, departureLocation location.Location) *Builder {
	b := &Builder{
		number:            number,
		departureLocation: departureLocation,
	}
	b.err = errors.Join(number.Validate(), departureLocation.Validate())
	return b
}

// AddMovement appends a carrier movement from the previous arrival location
// to the given one. Construction errors are collected and reported by Build.
func (b *Builder) AddMovement(
	arrivalLocation location.Location,
	departureTime, arrivalTime time.Time,
) *Builder {
	if b.err != nil {
		return b
	}

	movement, err := NewCarrierMovement(b.departureLocation, arrivalLocation, departureTime, arrivalTime)
	if err != nil {
		b.err = err
		return b
	}

	b.movements = append(b.movements, movement)
	b.departureLocation = arrivalLocation
	return b
}

// Build finalizes the voyage. Returns the first construction error
// encountered, or a validation error when no movement was added.
func (b *Builder) Build() (Voyage, error) {
	if b.err != nil {
		return Voyage{}, b.err
	}

	schedule, err := NewSchedule(b.movements)
	if err != nil {
		return Voyage{}, err
	}

	return NewVoyage(b.number, schedule)
}

// Number uniquely identifies a voyage.
// The zero value is invalid - use NewNumber.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// ErrNumberIsNotConstructed is returned for zero-value voyage numbers.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"voyage number must be created via NewNumber constructor")

// NewNumber creates a voyage number from its string form.
func NewNumber(value string) (Number, error) {
	if value == "" {
		return Number{}, errs.NewValueIsRequiredError("voyageNumber")
	}

	return Number{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Number was created through its constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String returns the string form of the voyage number.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two voyage numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
