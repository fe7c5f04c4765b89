package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks and fixtures shared by the command handler tests.

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*cargo.Cargo), args.Error(1)
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, event handling.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHandlingEventRepository) GetHandlingHistory(
	ctx context.Context, trackingID kernel.TrackingID,
) (handling.History, error) {
	args := m.Called(ctx, trackingID)
	return args.Get(0).(handling.History), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error) {
	args := m.Called(ctx, unLocode)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]location.Location), args.Error(1)
}

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Get(ctx context.Context, number voyage.Number) (voyage.Voyage, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(voyage.Voyage), args.Error(1)
}

func (m *MockVoyageRepository) GetAll(ctx context.Context) ([]voyage.Voyage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]voyage.Voyage), args.Error(1)
}

type MockCargoUoW struct{ mock.Mock }

func (m *MockCargoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func deadline() time.Time {
	return time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
}

// bookedCargo builds a Hongkong -> Stockholm cargo awaiting routing.
func bookedCargo(t *testing.T, trackingID kernel.TrackingID) *cargo.Cargo {
	t.Helper()
	rs, err := cargo.NewRouteSpecification(location.Hongkong, location.Stockholm, deadline())
	require.NoError(t, err)
	c, err := cargo.NewCargo(trackingID, rs)
	require.NoError(t, err)
	return c
}

// hongkongToTokyo builds a single-leg itinerary on the sample voyage V100.
func hongkongToTokyo(t *testing.T) cargo.Itinerary {
	t.Helper()
	leg, err := cargo.NewLeg(voyage.V100, location.Hongkong, location.Tokyo,
		time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	require.NoError(t, err)
	return itinerary
}

// tokyoToNewYork builds an itinerary that does not depart from Hongkong.
func tokyoToNewYork(t *testing.T) cargo.Itinerary {
	t.Helper()
	leg, err := cargo.NewLeg(voyage.V200, location.Tokyo, location.NewYork,
		time.Date(2026, time.March, 8, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	require.NoError(t, err)
	return itinerary
}
