package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/provider"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

type navigationDeps struct {
	plans     *mocks.MockPlanService
	geocoding *mocks.MockGeocodingService
	router    *mocks.MockRouter
	places    *mocks.MockPlacesFinder
	incidents *mocks.MockIncidentRepository
	sim       *mocks.MockSimulator
}

func newTestNavigationService(t *testing.T, withRouter bool) (NavigationService, navigationDeps) {
	ctrl := gomock.NewController(t)
	deps := navigationDeps{
		plans:     mocks.NewMockPlanService(ctrl),
		geocoding: mocks.NewMockGeocodingService(ctrl),
		router:    mocks.NewMockRouter(ctrl),
		places:    mocks.NewMockPlacesFinder(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		sim:       mocks.NewMockSimulator(ctrl),
	}
	var router Router
	if withRouter {
		router = deps.router
	}
	service := NewNavigationService(deps.plans, deps.geocoding, router, deps.places, deps.incidents, deps.sim, newTestLogger(), newTestConfig())
	return service, deps
}

func allowPremium(deps navigationDeps, feature models.Feature) {
	deps.plans.EXPECT().Require(gomock.Any(), "u1", feature).Return(&models.UserProfile{Plan: models.PlanPremium}, nil)
}

func TestPlanRoute_RequiresPremium(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	planErr := &PlanError{Feature: models.FeatureNavigation, Current: models.PlanFree, Required: models.PlanPremium}
	deps.plans.EXPECT().Require(gomock.Any(), "u1", models.FeatureNavigation).Return(nil, planErr)

	_, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{Destination: "Mombasa"})

	assert.ErrorIs(t, err, ErrUpgradeRequired)
}

func TestPlanRoute_InterpolatedShortest(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	allowPremium(deps, models.FeatureNavigation)
	oLat, oLng := -1.2921, 36.8219
	dLat, dLng := -1.3000, 36.8300

	deps.incidents.EXPECT().CountNearPath(gomock.Any(), gomock.Any(), 500).Return(2, nil)
	deps.sim.EXPECT().Jitter(5).Return(3)

	route, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{
		OriginLat: &oLat, OriginLng: &oLng, DestLat: &dLat, DestLng: &dLng,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RouteShortest, route.Mode)
	assert.Equal(t, "interpolated", route.Source)
	// короткий отрезок - 3 промежуточные точки плюс концы
	assert.Len(t, route.Points, 5)
	assert.Equal(t, models.RoutePoint{Lat: oLat, Lng: oLng}, route.Points[0])
	assert.Equal(t, models.RoutePoint{Lat: dLat, Lng: dLng}, route.Points[4])
	assert.Equal(t, 77, route.SafetyScore)
	assert.False(t, route.UsedFallback)
	assert.InDelta(t, route.DistanceMeters/(50.0*1000/3600), route.DurationSeconds, 0.001)

	decoded, err := geo.DecodePolyline(route.Polyline)
	require.NoError(t, err)
	assert.Len(t, decoded, 5)
}

func TestPlanRoute_GeocodedDestinationWithRouter(t *testing.T) {
	service, deps := newTestNavigationService(t, true)
	allowPremium(deps, models.FeatureNavigation)

	deps.geocoding.EXPECT().
		Search(gomock.Any(), "Mombasa", 1).
		Return([]models.Place{{Name: "Mombasa", Latitude: -4.0435, Longitude: 39.6682}}, nil)
	deps.router.EXPECT().
		Route(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wps []geo.Point) (*provider.RouteResult, error) {
			// safest добавляет объезд
			require.Len(t, wps, 3)
			assert.Equal(t, geo.Point{Lat: 51.505, Lng: -0.09}, wps[0])
			assert.Equal(t, geo.Point{Lat: -4.0435, Lng: 39.6682}, wps[2])
			return &provider.RouteResult{
				Points:          []geo.Point{wps[0], wps[1], wps[2]},
				DistanceMeters:  1000,
				DurationSeconds: 60,
			}, nil
		})
	deps.incidents.EXPECT().CountNearPath(gomock.Any(), gomock.Any(), 500).Return(20, nil)
	deps.sim.EXPECT().Jitter(5).Return(0)

	route, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{
		Destination: "Mombasa",
		Mode:        models.RouteSafest,
	})

	require.NoError(t, err)
	assert.Equal(t, "osrm", route.Source)
	assert.True(t, route.UsedFallback)
	assert.Equal(t, 1000.0, route.DistanceMeters)
	assert.Equal(t, 60.0, route.DurationSeconds)
	assert.Equal(t, 0, route.SafetyScore)
}

func TestPlanRoute_RouterFailureFallsBack(t *testing.T) {
	service, deps := newTestNavigationService(t, true)
	allowPremium(deps, models.FeatureNavigation)
	oLat, oLng := 10.0, 10.0
	dLat, dLng := 10.5, 10.5

	deps.router.EXPECT().Route(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("timeout"))
	deps.incidents.EXPECT().CountNearPath(gomock.Any(), gomock.Any(), 500).Return(0, nil)
	deps.sim.EXPECT().Jitter(5).Return(1)

	route, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{
		OriginLat: &oLat, OriginLng: &oLng, DestLat: &dLat, DestLng: &dLng,
		Mode: models.RouteLessTraffic,
	})

	require.NoError(t, err)
	assert.Equal(t, "interpolated", route.Source)
	assert.Equal(t, 99, route.SafetyScore)
	assert.Equal(t, models.RoutePoint{Lat: dLat, Lng: dLng}, route.Points[len(route.Points)-1])
}

func TestPlanRoute_DetourNearPoleStaysValid(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	allowPremium(deps, models.FeatureNavigation)
	// без ограничения объезд ушел бы на широту 91.9
	oLat, oLng := 89.9, 170.0
	dLat, dLng := 89.95, 179.9

	deps.incidents.EXPECT().
		CountNearPath(gomock.Any(), gomock.Any(), 500).
		DoAndReturn(func(_ context.Context, path []geo.Point, _ int) (int, error) {
			for _, p := range path {
				assert.True(t, p.Lat >= -90 && p.Lat <= 90, "lat %v", p.Lat)
				assert.True(t, p.Lng >= -180 && p.Lng <= 180, "lng %v", p.Lng)
			}
			return 0, nil
		})
	deps.sim.EXPECT().Jitter(5).Return(0)

	_, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{
		OriginLat: &oLat, OriginLng: &oLng, DestLat: &dLat, DestLng: &dLng,
		Mode: models.RouteLessTraffic,
	})
	require.NoError(t, err)
}

func TestPlanRoute_Validation(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	deps.plans.EXPECT().Require(gomock.Any(), "u1", models.FeatureNavigation).Return(&models.UserProfile{}, nil).Times(2)

	_, err := service.PlanRoute(context.Background(), "u1", models.RouteRequest{})
	assert.ErrorIs(t, err, ErrInvalidRoute)

	_, err = service.PlanRoute(context.Background(), "u1", models.RouteRequest{Mode: "scenic"})
	assert.ErrorContains(t, err, "unknown route mode")
}

func TestInterpolateRoute_PointCount(t *testing.T) {
	a := geo.Point{Lat: 0.1, Lng: 0.1}
	b := geo.Point{Lat: 1.1, Lng: 1.1} // ~157 км
	points := interpolateRoute([]geo.Point{a, b})
	assert.Len(t, points, 8)

	assert.Equal(t, 3, intermediateCount(100))
	assert.Equal(t, 4, intermediateCount(10000))
	assert.Equal(t, 5, intermediateCount(30000))
	assert.Equal(t, 6, intermediateCount(60000))
}

func TestNearbyPlaces(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	allowPremium(deps, models.FeatureNearbyPlaces)
	places := []models.Place{{Name: "Shell"}}

	deps.places.EXPECT().Nearby(gomock.Any(), "gas_station", 51.505, -0.09, 5000, 3).Return(places, nil)

	got, err := service.NearbyPlaces(context.Background(), "u1", "gas_station", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, places, got)
}

func TestNearbyPlaces_UnknownCategory(t *testing.T) {
	service, deps := newTestNavigationService(t, false)
	allowPremium(deps, models.FeatureNearbyPlaces)

	_, err := service.NearbyPlaces(context.Background(), "u1", "casino", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
