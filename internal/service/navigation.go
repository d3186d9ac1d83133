package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/provider"
)

//go:generate mockgen -source=navigation.go -destination=mocks/navigation_mock.go -package=mocks

const (
	// средняя скорость для оценки времени в пути без маршрутизатора, м/с
	fallbackSpeed      = 50.0 * 1000 / 3600
	incidentPenalty    = 10
	maxSafetyJitter    = 5
	maxNearbyPlaces    = 3
	sourceRouter       = "osrm"
	sourceInterpolated = "interpolated"
)

type Router interface {
	Route(ctx context.Context, waypoints []geo.Point) (*provider.RouteResult, error)
}

type PlacesFinder interface {
	Nearby(ctx context.Context, category string, lat, lng float64, radiusMeters, limit int) ([]models.Place, error)
}

type NavigationService interface {
	PlanRoute(ctx context.Context, userID string, req models.RouteRequest) (*models.Route, error)
	NearbyPlaces(ctx context.Context, userID, category string, lat, lng *float64) ([]models.Place, error)
}

type navigationService struct {
	plans     PlanService
	geocoding GeocodingService
	router    Router
	places    PlacesFinder
	incidents IncidentRepository
	sim       Simulator
	logger    *logrus.Logger
	cfg       *config.Config
	fallback  geo.Point
}

// NewNavigationService создает сервис маршрутов. router == nil - только интерполяция.
func NewNavigationService(
	plans PlanService,
	geocoding GeocodingService,
	router Router,
	places PlacesFinder,
	incidents IncidentRepository,
	sim Simulator,
	logger *logrus.Logger,
	cfg *config.Config,
) NavigationService {
	return &navigationService{
		plans:     plans,
		geocoding: geocoding,
		router:    router,
		places:    places,
		incidents: incidents,
		sim:       sim,
		logger:    logger,
		cfg:       cfg,
		fallback:  geo.Point{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}
}

func (s *navigationService) PlanRoute(ctx context.Context, userID string, req models.RouteRequest) (*models.Route, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "navigation",
		"method":  "PlanRoute",
		"user_id": userID,
		"mode":    req.Mode,
	})

	if _, err := s.plans.Require(ctx, userID, models.FeatureNavigation); err != nil {
		return nil, err
	}

	if req.Mode == "" {
		req.Mode = models.RouteShortest
	}
	if req.Mode != models.RouteShortest && req.Mode != models.RouteLessTraffic && req.Mode != models.RouteSafest {
		return nil, fmt.Errorf("service: unknown route mode %q", req.Mode)
	}

	origin, usedFallback := geo.Resolve(req.OriginLat, req.OriginLng, s.fallback)
	dest, err := s.destination(ctx, req)
	if err != nil {
		return nil, err
	}

	waypoints := routeWaypoints(origin, dest, req.Mode)

	route := &models.Route{Mode: req.Mode, UsedFallback: usedFallback}
	var points []geo.Point
	if s.router != nil {
		res, err := s.router.Route(ctx, waypoints)
		if err != nil {
			log.WithError(err).Warn("Router failed, falling back to interpolation")
		} else {
			points = res.Points
			route.DistanceMeters = res.DistanceMeters
			route.DurationSeconds = res.DurationSeconds
			route.Source = sourceRouter
		}
	}
	if points == nil {
		points = interpolateRoute(waypoints)
		route.DistanceMeters = geo.PathLength(points)
		route.DurationSeconds = route.DistanceMeters / fallbackSpeed
		route.Source = sourceInterpolated
	}

	nearby, err := s.incidents.CountNearPath(ctx, points, s.cfg.IncidentRadiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to count incidents along route")
		return nil, fmt.Errorf("service: could not score route: %w", err)
	}
	route.SafetyScore = clampScore(100 - incidentPenalty*nearby - s.sim.Jitter(maxSafetyJitter))

	route.Points = make([]models.RoutePoint, len(points))
	for i, p := range points {
		route.Points[i] = models.RoutePoint{Lat: p.Lat, Lng: p.Lng}
	}
	route.Polyline = geo.EncodePolyline(points)

	log.WithFields(logrus.Fields{
		"distance_m":   route.DistanceMeters,
		"safety_score": route.SafetyScore,
		"source":       route.Source,
	}).Info("Route planned")
	return route, nil
}

func (s *navigationService) destination(ctx context.Context, req models.RouteRequest) (geo.Point, error) {
	if req.DestLat != nil && req.DestLng != nil {
		if !geo.Valid(*req.DestLat, *req.DestLng) {
			return geo.Point{}, ErrInvalidLocation
		}
		return geo.Point{Lat: *req.DestLat, Lng: *req.DestLng}, nil
	}
	if req.Destination == "" {
		return geo.Point{}, ErrInvalidRoute
	}

	places, err := s.geocoding.Search(ctx, req.Destination, 1)
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: places[0].Latitude, Lng: places[0].Longitude}, nil
}

// routeWaypoints добавляет промежуточную точку в объезд для less-traffic и safest
func routeWaypoints(origin, dest geo.Point, mode models.RouteMode) []geo.Point {
	switch mode {
	case models.RouteLessTraffic:
		return []geo.Point{origin, geo.Offset(origin, dest, 0.4, 0.2), dest}
	case models.RouteSafest:
		return []geo.Point{origin, geo.Offset(origin, dest, 0.5, -0.2), dest}
	default:
		return []geo.Point{origin, dest}
	}
}

// interpolateRoute соединяет опорные точки отрезками с 3..6 промежуточными точками
func interpolateRoute(waypoints []geo.Point) []geo.Point {
	points := []geo.Point{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		a, b := waypoints[i-1], waypoints[i]
		leg := geo.Interpolate(a, b, intermediateCount(geo.Distance(a, b)))
		points = append(points, leg[1:]...)
	}
	return points
}

func intermediateCount(meters float64) int {
	switch {
	case meters < 5000:
		return 3
	case meters < 20000:
		return 4
	case meters < 50000:
		return 5
	default:
		return 6
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NearbyPlaces ищет до трех ближайших объектов категории
func (s *navigationService) NearbyPlaces(ctx context.Context, userID, category string, lat, lng *float64) ([]models.Place, error) {
	if _, err := s.plans.Require(ctx, userID, models.FeatureNearbyPlaces); err != nil {
		return nil, err
	}
	if _, ok := provider.Categories[category]; !ok {
		return nil, fmt.Errorf("service: %w: %q", ErrUnknownCategory, category)
	}

	point, _ := geo.Resolve(lat, lng, s.fallback)
	places, err := s.places.Nearby(ctx, category, point.Lat, point.Lng, s.cfg.SafetyRadiusMeters, maxNearbyPlaces)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service":  "navigation",
			"method":   "NearbyPlaces",
			"category": category,
		}).Error("Places lookup failed")
		return nil, fmt.Errorf("service: places lookup failed: %w: %w", ErrUpstream, err)
	}
	return places, nil
}
