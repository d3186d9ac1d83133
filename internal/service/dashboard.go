package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard_mock.go -package=mocks

const weatherUnavailableMessage = "Weather unavailable"

type DashboardService interface {
	Snapshot(ctx context.Context, lat, lng *float64) (*models.Dashboard, error)
}

type dashboardService struct {
	weather   WeatherService
	incidents IncidentService
	traffic   TrafficService
	v2v       V2VService
	logger    *logrus.Logger
	fallback  geo.Point
}

func NewDashboardService(weather WeatherService, incidents IncidentService, traffic TrafficService, v2v V2VService, logger *logrus.Logger, cfg *config.Config) DashboardService {
	return &dashboardService{
		weather:   weather,
		incidents: incidents,
		traffic:   traffic,
		v2v:       v2v,
		logger:    logger,
		fallback:  geo.Point{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}
}

// Snapshot собирает данные параллельно. Ошибка погоды не прерывает сборку.
func (s *dashboardService) Snapshot(ctx context.Context, lat, lng *float64) (*models.Dashboard, error) {
	point, usedFallback := geo.Resolve(lat, lng, s.fallback)
	pLat, pLng := point.Lat, point.Lng

	dash := &models.Dashboard{
		Latitude:     pLat,
		Longitude:    pLng,
		UsedFallback: usedFallback,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, err := s.weather.GetWeather(gctx, &pLat, &pLng)
		if err != nil {
			s.logger.WithError(err).WithField("method", "Snapshot").Warn("Dashboard weather degraded")
			dash.WeatherError = weatherUnavailableMessage
			return nil
		}
		dash.Weather = w
		return nil
	})

	g.Go(func() error {
		safety, err := s.incidents.SafetyStatus(gctx, &pLat, &pLng)
		if err != nil {
			return err
		}
		dash.Safety = safety
		return nil
	})

	g.Go(func() error {
		dash.Traffic = s.traffic.Alerts(gctx, &pLat, &pLng)
		return nil
	})

	g.Go(func() error {
		dash.Network = s.v2v.NetworkStatus(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service: could not build dashboard: %w", err)
	}

	// вложенные сервисы получили уже разрешенную точку
	if dash.Weather != nil {
		dash.Weather.UsedFallback = usedFallback
	}
	if dash.Safety != nil {
		dash.Safety.UsedFallback = usedFallback
	}
	dash.Traffic.UsedFallback = usedFallback
	return dash, nil
}
