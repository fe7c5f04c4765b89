package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeDestinationCommand_ValidInput(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	cmd, err := commands.NewChangeDestinationCommand(trackingID, location.Helsinki.UnLocode())
	require.NoError(t, err)
	assert.True(t, cmd.TrackingID().IsEqual(trackingID))
	assert.Equal(t, "FIHEL", cmd.DestinationUnLocode().String())
}

func TestNewChangeDestinationCommand_InvalidTrackingID(t *testing.T) {
	_, err := commands.NewChangeDestinationCommand(kernel.TrackingID{}, location.Helsinki.UnLocode())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
}

func TestNewChangeDestinationCommand_InvalidUnLocode(t *testing.T) {
	_, err := commands.NewChangeDestinationCommand(kernel.NewTrackingID(), kernel.UnLocode{})
	require.Error(t, err)
}

func TestChangeDestinationCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ChangeDestinationCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeDestinationCommandIsNotConstructed)
}
