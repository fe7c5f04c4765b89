package commands_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionTime() time.Time {
	return time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
}

func TestNewRegisterHandlingEventCommand_PortEvent(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	cmd, err := commands.NewRegisterHandlingEventCommand(
		trackingID, handling.Receive, location.Hongkong.UnLocode(), nil, completionTime())
	require.NoError(t, err)
	assert.True(t, cmd.TrackingID().IsEqual(trackingID))
	assert.Equal(t, handling.Receive, cmd.EventType())
	assert.Equal(t, "CNHKG", cmd.UnLocode().String())
	assert.Nil(t, cmd.VoyageNumber())
	assert.Equal(t, completionTime(), cmd.CompletionTime())
}

func TestNewRegisterHandlingEventCommand_WithVoyageNumber(t *testing.T) {
	voyageNumber := voyage.V100.Number()

	cmd, err := commands.NewRegisterHandlingEventCommand(
		kernel.NewTrackingID(), handling.Load, location.Hongkong.UnLocode(), &voyageNumber, completionTime())
	require.NoError(t, err)
	require.NotNil(t, cmd.VoyageNumber())
	assert.Equal(t, "V100", cmd.VoyageNumber().String())
}

func TestNewRegisterHandlingEventCommand_InvalidEventType(t *testing.T) {
	_, err := commands.NewRegisterHandlingEventCommand(
		kernel.NewTrackingID(), handling.Unknown, location.Hongkong.UnLocode(), nil, completionTime())
	require.Error(t, err)
}

func TestNewRegisterHandlingEventCommand_InvalidVoyageNumber(t *testing.T) {
	_, err := commands.NewRegisterHandlingEventCommand(
		kernel.NewTrackingID(), handling.Load, location.Hongkong.UnLocode(), &voyage.Number{}, completionTime())
	require.Error(t, err)
}

func TestNewRegisterHandlingEventCommand_MissingCompletionTime(t *testing.T) {
	_, err := commands.NewRegisterHandlingEventCommand(
		kernel.NewTrackingID(), handling.Receive, location.Hongkong.UnLocode(), nil, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompletionTimeIsRequired)
}

func TestRegisterHandlingEventCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.RegisterHandlingEventCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterHandlingEventCommandIsNotConstructed)
}
