package routing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Get(ctx context.Context, number voyage.Number) (voyage.Voyage, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(voyage.Voyage), args.Error(1)
}

func (m *MockVoyageRepository) GetAll(ctx context.Context) ([]voyage.Voyage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]voyage.Voyage), args.Error(1)
}

func spec(t *testing.T, origin, destination location.Location, deadline time.Time) cargo.RouteSpecification {
	t.Helper()
	rs, err := cargo.NewRouteSpecification(origin, destination, deadline)
	require.NoError(t, err)
	return rs
}

func march(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestFetchRoutesForSpecification_SingleVoyageRoute(t *testing.T) {
	ctx := t.Context()
	repo := new(MockVoyageRepository)
	repo.On("GetAll", ctx).Return(voyage.SampleVoyages(), nil).Once()

	service := routing.NewScheduleRoutingService(repo)

	// V100 carries Hongkong -> Tokyo -> New York.
	candidates, err := service.FetchRoutesForSpecification(
		ctx, spec(t, location.Hongkong, location.NewYork, march(20)))
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	itinerary := candidates[0]
	legs := itinerary.Legs()
	require.Len(t, legs, 2)
	assert.Equal(t, "V100", legs[0].Voyage().Number().String())
	assert.Equal(t, "CNHKG", legs[0].LoadLocation().UnLocode().String())
	assert.Equal(t, "JNTKO", legs[0].UnloadLocation().UnLocode().String())
	assert.Equal(t, "USNYC", legs[1].UnloadLocation().UnLocode().String())
	repo.AssertExpectations(t)
}

func TestFetchRoutesForSpecification_MidVoyageOrigin(t *testing.T) {
	ctx := t.Context()
	repo := new(MockVoyageRepository)
	repo.On("GetAll", ctx).Return(voyage.SampleVoyages(), nil).Once()

	service := routing.NewScheduleRoutingService(repo)

	// V200 carries Tokyo -> New York -> Chicago -> Stockholm; the route
	// starts at the New York movement, not at the voyage's first port.
	candidates, err := service.FetchRoutesForSpecification(
		ctx, spec(t, location.NewYork, location.Stockholm, march(20)))
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	legs := candidates[0].Legs()
	require.Len(t, legs, 2)
	assert.Equal(t, "USNYC", legs[0].LoadLocation().UnLocode().String())
	assert.Equal(t, "SESTO", legs[1].UnloadLocation().UnLocode().String())
}

func TestFetchRoutesForSpecification_DeadlineFiltersRoute(t *testing.T) {
	ctx := t.Context()
	repo := new(MockVoyageRepository)
	repo.On("GetAll", ctx).Return(voyage.SampleVoyages(), nil).Once()

	service := routing.NewScheduleRoutingService(repo)

	// V200 reaches Stockholm on March 16, after this deadline.
	candidates, err := service.FetchRoutesForSpecification(
		ctx, spec(t, location.Tokyo, location.Stockholm, march(10)))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFetchRoutesForSpecification_NoRouteExists(t *testing.T) {
	ctx := t.Context()
	repo := new(MockVoyageRepository)
	repo.On("GetAll", ctx).Return(voyage.SampleVoyages(), nil).Once()

	service := routing.NewScheduleRoutingService(repo)

	candidates, err := service.FetchRoutesForSpecification(
		ctx, spec(t, location.Dallas, location.Helsinki, march(20)))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFetchRoutesForSpecification_InvalidSpecification(t *testing.T) {
	service := routing.NewScheduleRoutingService(new(MockVoyageRepository))

	_, err := service.FetchRoutesForSpecification(t.Context(), cargo.RouteSpecification{})
	require.Error(t, err)
}

func TestFetchRoutesForSpecification_RepositoryError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockVoyageRepository)
	repo.On("GetAll", ctx).Return([]voyage.Voyage(nil), errors.New("db down")).Once()

	service := routing.NewScheduleRoutingService(repo)

	_, err := service.FetchRoutesForSpecification(
		ctx, spec(t, location.Hongkong, location.NewYork, march(20)))
	require.Error(t, err)
}
