package voyage

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCarrierMovementIsNotConstructed is returned for zero-value carrier movements.
var ErrCarrierMovementIsNotConstructed = errors.New(
	"CarrierMovement must be created via NewCarrierMovement constructor")

// ErrScheduleIsNotConstructed is returned for zero-value schedules.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// CarrierMovement is one vessel movement from a departure location to an
// arrival location, with scheduled departure and arrival times.
//
// Immutable value object; the zero value fails validation.
type CarrierMovement struct { //nolint:recvcheck //using for validation
	departureLocation location.Location
	arrivalLocation   location.Location
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a carrier movement between two locations.
// Departure must precede arrival and both locations must be valid.
func NewCarrierMovement(
	departureLocation, arrivalLocation location.Location,
	departureTime, arrivalTime time.Time,
) (CarrierMovement, error) {
	m := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setLocations(departureLocation, arrivalLocation),
		m.setTimes(departureTime, arrivalTime),
	); err != nil {
		return CarrierMovement{}, err
	}

	return m, nil
}

// Validate checks that the CarrierMovement was created through its constructor.
func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns where the movement starts.
func (m CarrierMovement) DepartureLocation() location.Location {
	return m.departureLocation
}

// ArrivalLocation returns where the movement ends.
func (m CarrierMovement) ArrivalLocation() location.Location {
	return m.arrivalLocation
}

// DepartureTime returns the scheduled departure time.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns the scheduled arrival time.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

func (m *CarrierMovement) setLocations(departureLocation, arrivalLocation location.Location) error {
	if err := errors.Join(departureLocation.Validate(), arrivalLocation.Validate()); err != nil {
		return err
	}

	m.departureLocation = departureLocation
	m.arrivalLocation = arrivalLocation
	return nil
}

func (m *CarrierMovement) setTimes(departureTime, arrivalTime time.Time) error {
	if departureTime.IsZero() || arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime and arrivalTime")
	}
	if !departureTime.Before(arrivalTime) {
		return errs.NewValueIsInvalidErrorWithCause("carrierMovement times",
			fmt.Errorf("departure %s is not before arrival %s", departureTime, arrivalTime))
	}

	m.departureTime = departureTime
	m.arrivalTime = arrivalTime
	return nil
}

// Schedule is the ordered, non-empty series of carrier movements a voyage follows.
//
// Immutable value object; the zero value fails validation.
type Schedule struct {
	movements []CarrierMovement
	guard     guard.ConstructorGuard
}

// NewSchedule creates a schedule from the given movements.
// At least one movement is required and every movement must be valid.
func NewSchedule(movements []CarrierMovement) (Schedule, error) {
	if len(movements) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("movements")
	}

	for _, m := range movements {
		if err := m.Validate(); err != nil {
			return Schedule{}, err
		}
	}

	copied := make([]CarrierMovement, len(movements))
	copy(copied, movements)

	return Schedule{
		movements: copied,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Schedule was created through its constructor.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// CarrierMovements returns a copy of the schedule's movements in order.
func (s Schedule) CarrierMovements() []CarrierMovement {
	copied := make([]CarrierMovement, len(s.movements))
	copy(copied, s.movements)
	return copied
}
