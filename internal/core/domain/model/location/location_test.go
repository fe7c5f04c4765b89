package location_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation_Valid(t *testing.T) {
	code, err := kernel.NewUnLocode("CNHKG")
	require.NoError(t, err)

	loc, err := location.NewLocation(code, "Hongkong")
	require.NoError(t, err)
	assert.Equal(t, "Hongkong", loc.Name())
	assert.Equal(t, "CNHKG", loc.UnLocode().String())
	assert.Equal(t, "Hongkong (CNHKG)", loc.String())
}

func TestNewLocation_EmptyName(t *testing.T) {
	code, err := kernel.NewUnLocode("CNHKG")
	require.NoError(t, err)

	_, err = location.NewLocation(code, "")
	require.Error(t, err)
}

func TestNewLocation_InvalidCode(t *testing.T) {
	var code kernel.UnLocode
	_, err := location.NewLocation(code, "Hongkong")
	require.Error(t, err)
}

func TestLocation_IsEqual_ByCodeOnly(t *testing.T) {
	code, err := kernel.NewUnLocode("SESTO")
	require.NoError(t, err)

	a, err := location.NewLocation(code, "Stockholm")
	require.NoError(t, err)
	b, err := location.NewLocation(code, "Stockholm Harbour")
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestLocation_IsEqual_ZeroValue(t *testing.T) {
	_, err := location.Stockholm.IsEqual(location.Location{})
	require.Error(t, err)
}

func TestSampleLocations(t *testing.T) {
	samples := location.SampleLocations()
	require.Len(t, samples, 13)

	stockholm, ok := samples["SESTO"]
	require.True(t, ok)
	assert.Equal(t, "Stockholm", stockholm.Name())

	for code, loc := range samples {
		require.NoError(t, loc.Validate())
		assert.Equal(t, code, loc.UnLocode().String())
	}
}
