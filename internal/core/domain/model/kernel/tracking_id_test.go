package kernel_test

import (
	"strings"
	"testing"

	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID_GeneratesShortToken(t *testing.T) {
	id := kernel.NewTrackingID()
	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 8)
	assert.Equal(t, strings.ToUpper(id.String()), id.String())
}

func TestNewTrackingID_Unique(t *testing.T) {
	a := kernel.NewTrackingID()
	b := kernel.NewTrackingID()
	assert.False(t, a.IsEqual(b))
}

func TestTrackingIDFromString_Normalizes(t *testing.T) {
	id, err := kernel.TrackingIDFromString("  abc123xy ")
	require.NoError(t, err)
	assert.Equal(t, "ABC123XY", id.String())
}

func TestTrackingIDFromString_Empty(t *testing.T) {
	_, err := kernel.TrackingIDFromString("   ")
	require.Error(t, err)
}

func TestTrackingIDFromString_RoundTrip(t *testing.T) {
	original := kernel.NewTrackingID()
	parsed, err := kernel.TrackingIDFromString(original.String())
	require.NoError(t, err)
	assert.True(t, original.IsEqual(parsed))
}

func TestTrackingID_ZeroValueFailsValidation(t *testing.T) {
	var id kernel.TrackingID
	err := id.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
}
