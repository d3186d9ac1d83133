package service

import (
	"context"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=traffic.go -destination=mocks/traffic_mock.go -package=mocks

type TrafficService interface {
	Alerts(ctx context.Context, lat, lng *float64) models.TrafficReport
}

type trafficService struct {
	sim      Simulator
	fallback geo.Point
}

func NewTrafficService(sim Simulator, cfg *config.Config) TrafficService {
	return &trafficService{
		sim:      sim,
		fallback: geo.Point{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}
}

func (s *trafficService) Alerts(_ context.Context, lat, lng *float64) models.TrafficReport {
	point, usedFallback := geo.Resolve(lat, lng, s.fallback)
	report := s.sim.Traffic(point.Lat, point.Lng)
	report.UsedFallback = usedFallback
	return report
}
