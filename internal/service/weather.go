package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=weather.go -destination=mocks/weather_mock.go -package=mocks

const hazardDedupeTTL = time.Hour

type WeatherProvider interface {
	Name() string
	Current(ctx context.Context, lat, lng float64) (*models.Weather, error)
}

type WeatherService interface {
	GetWeather(ctx context.Context, lat, lng *float64) (*models.Weather, error)
}

type weatherService struct {
	providers []WeatherProvider
	cache     Cache
	incidents IncidentService
	logger    *logrus.Logger
	cfg       *config.Config
	fallback  geo.Point
	clock     func() time.Time
}

// NewWeatherService - провайдеры опрашиваются по порядку до первого успешного ответа
func NewWeatherService(providers []WeatherProvider, cache Cache, incidents IncidentService, logger *logrus.Logger, cfg *config.Config) WeatherService {
	return &weatherService{
		providers: providers,
		cache:     cache,
		incidents: incidents,
		logger:    logger,
		cfg:       cfg,
		fallback:  geo.Point{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
		clock:     time.Now,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, lat, lng *float64) (*models.Weather, error) {
	point, usedFallback := geo.Resolve(lat, lng, s.fallback)
	log := s.logger.WithFields(logrus.Fields{
		"service":       "weather",
		"method":        "GetWeather",
		"lat":           point.Lat,
		"lng":           point.Lng,
		"used_fallback": usedFallback,
	})

	key := fmt.Sprintf("weather:%.2f:%.2f", point.Lat, point.Lng)
	var cached models.Weather
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.WithError(err).Warn("Failed to read weather cache")
	} else if ok {
		cached.UsedFallback = usedFallback
		return &cached, nil
	}

	var weather *models.Weather
	for _, p := range s.providers {
		w, err := p.Current(ctx, point.Lat, point.Lng)
		if err != nil {
			log.WithError(err).WithField("provider", p.Name()).Warn("Weather provider failed")
			continue
		}
		weather = w
		break
	}
	if weather == nil {
		return nil, ErrWeatherUnavailable
	}
	weather.UsedFallback = usedFallback

	if err := s.cache.Set(ctx, key, weather, s.cfg.WeatherCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache weather")
	}

	if weather.IsHazardous() {
		s.reportHazard(ctx, point, weather, log)
	}
	return weather, nil
}

// reportHazard создает не больше одного погодного происшествия на ячейку ~1 км в час
func (s *weatherService) reportHazard(ctx context.Context, point geo.Point, w *models.Weather, log *logrus.Entry) {
	cell := fmt.Sprintf("weather:hazard:%.2f:%.2f:%s",
		math.Round(point.Lat*100)/100, math.Round(point.Lng*100)/100,
		s.clock().UTC().Format("2006010215"))

	fresh, err := s.cache.SetNX(ctx, cell, hazardDedupeTTL)
	if err != nil {
		log.WithError(err).Warn("Failed to set weather hazard flag")
		return
	}
	if !fresh {
		return
	}

	incident := &models.Incident{
		Type:         models.IncidentWeather,
		Description:  fmt.Sprintf("Hazardous weather: %s", w.Description),
		Latitude:     point.Lat,
		Longitude:    point.Lng,
		RadiusMeters: s.cfg.SafetyRadiusMeters,
		ReporterID:   "system:" + w.Provider,
	}
	if err := s.incidents.ReportIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to report weather incident")
		return
	}
	log.WithField("incident_id", incident.ID).Info("Weather hazard reported")
}
