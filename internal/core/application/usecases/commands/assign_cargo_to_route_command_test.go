package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignCargoToRouteCommand_ValidInput(t *testing.T) {
	trackingID := kernel.NewTrackingID()
	itinerary := hongkongToTokyo(t)

	cmd, err := commands.NewAssignCargoToRouteCommand(trackingID, itinerary)
	require.NoError(t, err)
	assert.True(t, cmd.TrackingID().IsEqual(trackingID))
	assert.True(t, cmd.Itinerary().IsEqual(itinerary))
}

func TestNewAssignCargoToRouteCommand_InvalidTrackingID(t *testing.T) {
	_, err := commands.NewAssignCargoToRouteCommand(kernel.TrackingID{}, hongkongToTokyo(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
}

func TestNewAssignCargoToRouteCommand_ZeroItinerary(t *testing.T) {
	_, err := commands.NewAssignCargoToRouteCommand(kernel.NewTrackingID(), cargo.Itinerary{})
	require.Error(t, err)
	assert.ErrorIs(t, err, cargo.ErrItineraryIsNotConstructed)
}

func TestAssignCargoToRouteCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AssignCargoToRouteCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignCargoToRouteCommandIsNotConstructed)
}
