package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

type dashboardDeps struct {
	weather   *mocks.MockWeatherService
	incidents *mocks.MockIncidentService
	traffic   *mocks.MockTrafficService
	v2v       *mocks.MockV2VService
}

func newTestDashboardService(t *testing.T) (DashboardService, dashboardDeps) {
	ctrl := gomock.NewController(t)
	deps := dashboardDeps{
		weather:   mocks.NewMockWeatherService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		traffic:   mocks.NewMockTrafficService(ctrl),
		v2v:       mocks.NewMockV2VService(ctrl),
	}
	return NewDashboardService(deps.weather, deps.incidents, deps.traffic, deps.v2v, newTestLogger(), newTestConfig()), deps
}

func TestSnapshot_Success(t *testing.T) {
	service, deps := newTestDashboardService(t)
	lat, lng := -1.28, 36.82

	deps.weather.EXPECT().GetWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.Weather{Condition: "Clear"}, nil)
	deps.incidents.EXPECT().SafetyStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.SafetyStatus{Level: models.SafetySafe}, nil)
	deps.traffic.EXPECT().Alerts(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TrafficReport{Congestion: "light"})
	deps.v2v.EXPECT().NetworkStatus(gomock.Any()).Return(models.V2VNetworkStatus{NearbyVehicles: 4})

	dash, err := service.Snapshot(context.Background(), &lat, &lng)

	require.NoError(t, err)
	assert.False(t, dash.UsedFallback)
	assert.Equal(t, lat, dash.Latitude)
	assert.Equal(t, "Clear", dash.Weather.Condition)
	assert.Equal(t, models.SafetySafe, dash.Safety.Level)
	assert.Equal(t, "light", dash.Traffic.Congestion)
	assert.Equal(t, 4, dash.Network.NearbyVehicles)
	assert.Empty(t, dash.WeatherError)
}

func TestSnapshot_WeatherDegrades(t *testing.T) {
	service, deps := newTestDashboardService(t)

	deps.weather.EXPECT().GetWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrWeatherUnavailable)
	deps.incidents.EXPECT().SafetyStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.SafetyStatus{}, nil)
	deps.traffic.EXPECT().Alerts(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TrafficReport{})
	deps.v2v.EXPECT().NetworkStatus(gomock.Any()).Return(models.V2VNetworkStatus{})

	dash, err := service.Snapshot(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.True(t, dash.UsedFallback)
	assert.Equal(t, 51.505, dash.Latitude)
	assert.Nil(t, dash.Weather)
	assert.Equal(t, "Weather unavailable", dash.WeatherError)
	assert.True(t, dash.Safety.UsedFallback)
	assert.True(t, dash.Traffic.UsedFallback)
}

func TestSnapshot_SafetyFailureFails(t *testing.T) {
	service, deps := newTestDashboardService(t)

	deps.weather.EXPECT().GetWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.Weather{}, nil).AnyTimes()
	deps.incidents.EXPECT().SafetyStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("db down"))
	deps.traffic.EXPECT().Alerts(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TrafficReport{}).AnyTimes()
	deps.v2v.EXPECT().NetworkStatus(gomock.Any()).Return(models.V2VNetworkStatus{}).AnyTimes()

	_, err := service.Snapshot(context.Background(), nil, nil)
	assert.ErrorContains(t, err, "could not build dashboard")
}
