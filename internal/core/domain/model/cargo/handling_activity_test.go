package cargo_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
)

func TestNoActivity(t *testing.T) {
	activity := cargo.NoActivity()
	assert.True(t, activity.IsNone())
	assert.Equal(t, "none", activity.String())
}

func TestNewHandlingActivity(t *testing.T) {
	activity := cargo.NewHandlingActivity(handling.Receive, location.Hongkong)
	assert.False(t, activity.IsNone())
	assert.Equal(t, handling.Receive, activity.Type())
	assert.Equal(t, "CNHKG", activity.Location().UnLocode().String())
	assert.Nil(t, activity.Voyage())
}

func TestNewHandlingActivityOnVoyage(t *testing.T) {
	activity := cargo.NewHandlingActivityOnVoyage(handling.Load, location.Hongkong, voyage.V100)
	assert.False(t, activity.IsNone())
	assert.Equal(t, handling.Load, activity.Type())
	assert.NotNil(t, activity.Voyage())
	assert.Equal(t, "V100", activity.Voyage().Number().String())
}

func TestHandlingActivity_IsEqual(t *testing.T) {
	load := cargo.NewHandlingActivityOnVoyage(handling.Load, location.Hongkong, voyage.V100)

	tests := []struct {
		name     string
		other    cargo.HandlingActivity
		expected bool
	}{
		{"same activity", cargo.NewHandlingActivityOnVoyage(handling.Load, location.Hongkong, voyage.V100), true},
		{"different type", cargo.NewHandlingActivityOnVoyage(handling.Unload, location.Hongkong, voyage.V100), false},
		{"different location", cargo.NewHandlingActivityOnVoyage(handling.Load, location.Tokyo, voyage.V100), false},
		{"different voyage", cargo.NewHandlingActivityOnVoyage(handling.Load, location.Hongkong, voyage.V200), false},
		{"no voyage", cargo.NewHandlingActivity(handling.Load, location.Hongkong), false},
		{"sentinel", cargo.NoActivity(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, load.IsEqual(tt.other))
		})
	}
}

func TestHandlingActivity_IsEqual_Sentinels(t *testing.T) {
	assert.True(t, cargo.NoActivity().IsEqual(cargo.NoActivity()))
}
