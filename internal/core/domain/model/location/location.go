// Package location models the places where cargo is handled: ports,
// terminals and inland facilities, each identified by a UN location code.
package location

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a place where cargo can be received, loaded, unloaded,
// cleared through customs or claimed. Its identity is the UN location code;
// the name is descriptive only.
//
// Location is an immutable value object. The zero value is invalid and
// fails validation - use NewLocation.
//
// Example:
//
//	code, _ := kernel.NewUnLocode("CNHKG")
//	loc, err := location.NewLocation(code, "Hongkong")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Hongkong (CNHKG)
type Location struct { //nolint:recvcheck //using for validation
	unLocode kernel.UnLocode
	name     string
	guard    guard.ConstructorGuard
}

// NewLocation creates a Location with the given UN location code and name.
// Both are required; the code must have been created via kernel.NewUnLocode.
func NewLocation(unLocode kernel.UnLocode, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setUnLocode(unLocode), loc.setName(name)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created through its constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// UnLocode returns the UN location code that identifies this location.
func (l Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

// Name returns the descriptive name of the location.
func (l Location) Name() string {
	return l.name
}

// String implements fmt.Stringer in the form "Name (CODE)".
func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.name, l.unLocode)
}

// IsEqual compares two locations by their UN location code.
// Name differences do not affect equality.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.unLocode.IsEqual(other.unLocode), nil
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
