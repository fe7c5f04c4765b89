package kernel_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnLocode_Valid(t *testing.T) {
	tests := []string{"SESTO", "CNHKG", "USNYC", "JNTKO", "US2YC"}
	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			unLocode, err := kernel.NewUnLocode(code)
			require.NoError(t, err)
			assert.Equal(t, code, unLocode.String())
			require.NoError(t, unLocode.Validate())
		})
	}
}

func TestNewUnLocode_Uppercases(t *testing.T) {
	unLocode, err := kernel.NewUnLocode("sesto")
	require.NoError(t, err)
	assert.Equal(t, "SESTO", unLocode.String())
}

func TestNewUnLocode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"too short", "SES"},
		{"too long", "SESTOX"},
		{"digit in country", "1ESTO"},
		{"zero in place code", "SE0TO"},
		{"one in place code", "SE1TO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewUnLocode(tt.code)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewUnLocode_Empty(t *testing.T) {
	_, err := kernel.NewUnLocode("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUnLocode_IsEqual(t *testing.T) {
	a, err := kernel.NewUnLocode("SESTO")
	require.NoError(t, err)
	b, err := kernel.NewUnLocode("sesto")
	require.NoError(t, err)
	c, err := kernel.NewUnLocode("FIHEL")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestUnLocode_ZeroValueFailsValidation(t *testing.T) {
	var code kernel.UnLocode
	err := code.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUnLocodeIsNotConstructed)
}
