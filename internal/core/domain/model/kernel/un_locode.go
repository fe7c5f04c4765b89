package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned when attempting to use an
// improperly initialized UnLocode. Location codes must be created via
// NewUnLocode.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError(
	"UN locode must be created via NewUnLocode constructor")

// unLocodePattern matches the United Nations location code format:
// a two-letter country code followed by a three-character place code.
var unLocodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// UnLocode is a United Nations location code identifying a port, terminal
// or inland handling facility (for example "SESTO" for Stockholm).
//
// UnLocode is an immutable value object with a validated format. The zero
// value is invalid and fails validation - use NewUnLocode.
//
// Example:
//
//	code, err := kernel.NewUnLocode("cnhkg")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(code) // Output: CNHKG
type UnLocode struct {
	value string
	guard guard.ConstructorGuard
}

// NewUnLocode creates a UnLocode from its five-character string form.
// The input is uppercased before validation; a value that does not match
// the UN location code format is rejected.
func NewUnLocode(code string) (UnLocode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("unLocode")
	}
	if !unLocodePattern.MatchString(normalized) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause(
			"unLocode", fmt.Errorf("%s is not a valid UN location code", normalized))
	}

	return UnLocode{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the UnLocode was created through its constructor.
// Returns ErrUnLocodeIsNotConstructed for zero values.
func (u UnLocode) Validate() error {
	return u.guard.Validate(ErrUnLocodeIsNotConstructed)
}

// String returns the five-character code, always uppercase.
func (u UnLocode) String() string {
	return u.value
}

// IsEqual compares two location codes by value.
func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.value == other.value
}
