package voyage_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestNewNumber_Valid(t *testing.T) {
	number, err := voyage.NewNumber("V100")
	require.NoError(t, err)
	assert.Equal(t, "V100", number.String())
	require.NoError(t, number.Validate())
}

func TestNewNumber_Empty(t *testing.T) {
	_, err := voyage.NewNumber("")
	require.Error(t, err)
}

func TestNumber_IsEqual(t *testing.T) {
	a, err := voyage.NewNumber("V100")
	require.NoError(t, err)
	b, err := voyage.NewNumber("V100")
	require.NoError(t, err)
	c, err := voyage.NewNumber("V200")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestNewCarrierMovement_Valid(t *testing.T) {
	movement, err := voyage.NewCarrierMovement(
		location.Hongkong, location.Tokyo, ts(1, 10), ts(3, 10))
	require.NoError(t, err)
	assert.Equal(t, "CNHKG", movement.DepartureLocation().UnLocode().String())
	assert.Equal(t, "JNTKO", movement.ArrivalLocation().UnLocode().String())
}

func TestNewCarrierMovement_ArrivalBeforeDeparture(t *testing.T) {
	_, err := voyage.NewCarrierMovement(
		location.Hongkong, location.Tokyo, ts(3, 10), ts(1, 10))
	require.Error(t, err)
}

func TestBuilder_BuildsChainedSchedule(t *testing.T) {
	number, err := voyage.NewNumber("V500")
	require.NoError(t, err)

	voy, err := voyage.NewBuilder(number, location.Hongkong).
		AddMovement(location.Tokyo, ts(1, 10), ts(3, 10)).
		AddMovement(location.NewYork, ts(4, 10), ts(8, 10)).
		Build()
	require.NoError(t, err)

	movements := voy.Schedule().CarrierMovements()
	require.Len(t, movements, 2)
	assert.Equal(t, "CNHKG", movements[0].DepartureLocation().UnLocode().String())
	assert.Equal(t, "JNTKO", movements[0].ArrivalLocation().UnLocode().String())
	assert.Equal(t, "JNTKO", movements[1].DepartureLocation().UnLocode().String())
	assert.Equal(t, "USNYC", movements[1].ArrivalLocation().UnLocode().String())
}

func TestBuilder_NoMovements(t *testing.T) {
	number, err := voyage.NewNumber("V500")
	require.NoError(t, err)

	_, err = voyage.NewBuilder(number, location.Hongkong).Build()
	require.Error(t, err)
}

func TestBuilder_PropagatesMovementError(t *testing.T) {
	number, err := voyage.NewNumber("V500")
	require.NoError(t, err)

	_, err = voyage.NewBuilder(number, location.Hongkong).
		AddMovement(location.Tokyo, ts(3, 10), ts(1, 10)).
		Build()
	require.Error(t, err)
}

func TestSchedule_CarrierMovementsReturnsCopy(t *testing.T) {
	movements := voyage.V100.Schedule().CarrierMovements()
	require.NotEmpty(t, movements)

	movements[0] = voyage.CarrierMovement{}
	assert.NoError(t, voyage.V100.Schedule().CarrierMovements()[0].Validate())
}

func TestSampleVoyages(t *testing.T) {
	samples := voyage.SampleVoyages()
	require.Len(t, samples, 4)

	for _, voy := range samples {
		require.NoError(t, voy.Validate())
		require.NotEmpty(t, voy.Schedule().CarrierMovements())
	}

	// V100 carries cargo from Hongkong to New York via Tokyo
	movements := voyage.V100.Schedule().CarrierMovements()
	require.Len(t, movements, 2)
	assert.Equal(t, "CNHKG", movements[0].DepartureLocation().UnLocode().String())
	assert.Equal(t, "USNYC", movements[1].ArrivalLocation().UnLocode().String())
}
