package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=geocoding.go -destination=mocks/geocoding_mock.go -package=mocks

const maxSearchResults = 5

type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]models.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*models.Place, error)
}

type GeocodingService interface {
	Search(ctx context.Context, query string, limit int) ([]models.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*models.Place, error)
}

type geocodingService struct {
	geocoder Geocoder
	cache    Cache
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewGeocodingService(geocoder Geocoder, cache Cache, logger *logrus.Logger, cfg *config.Config) GeocodingService {
	return &geocodingService{
		geocoder: geocoder,
		cache:    cache,
		logger:   logger,
		cfg:      cfg,
	}
}

// Search ищет адрес. Пустой результат - ErrLocationNotFound.
func (s *geocodingService) Search(ctx context.Context, query string, limit int) ([]models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrLocationNotFound
	}
	if limit < 1 || limit > maxSearchResults {
		limit = maxSearchResults
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  "Search",
		"query":   query,
	})

	key := fmt.Sprintf("geocode:search:%d:%s", limit, strings.ToLower(query))
	var places []models.Place
	if ok, err := s.cache.Get(ctx, key, &places); err != nil {
		log.WithError(err).Warn("Failed to read geocode cache")
	} else if ok {
		return places, nil
	}

	places, err := s.geocoder.Search(ctx, query, limit)
	if err != nil {
		log.WithError(err).Error("Geocoder search failed")
		return nil, fmt.Errorf("service: geocoding failed: %w: %w", ErrUpstream, err)
	}
	if len(places) == 0 {
		return nil, ErrLocationNotFound
	}

	if err := s.cache.Set(ctx, key, places, s.cfg.GeocodeCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache geocode result")
	}
	return places, nil
}

func (s *geocodingService) Reverse(ctx context.Context, lat, lng float64) (*models.Place, error) {
	if !geo.Valid(lat, lng) {
		return nil, ErrInvalidLocation
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  "Reverse",
	})

	key := fmt.Sprintf("geocode:reverse:%.4f:%.4f", lat, lng)
	var cached models.Place
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.WithError(err).Warn("Failed to read geocode cache")
	} else if ok {
		return &cached, nil
	}

	place, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("Geocoder reverse failed")
		return nil, fmt.Errorf("service: reverse geocoding failed: %w: %w", ErrUpstream, err)
	}
	if place == nil {
		return nil, ErrLocationNotFound
	}

	if err := s.cache.Set(ctx, key, place, s.cfg.GeocodeCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache geocode result")
	}
	return place, nil
}
