package queries_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackCargoQuery_ValidInput(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	query, err := queries.NewTrackCargoQuery(trackingID)
	require.NoError(t, err)
	assert.True(t, query.TrackingID().IsEqual(trackingID))
}

func TestNewTrackCargoQuery_InvalidTrackingID(t *testing.T) {
	_, err := queries.NewTrackCargoQuery(kernel.TrackingID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
}

func TestTrackCargoQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.TrackCargoQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrTrackCargoQueryIsNotConstructed)
}
