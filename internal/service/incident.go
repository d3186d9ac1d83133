package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/webhook"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks

const (
	safetyWindow      = 24 * time.Hour
	highRiskThreshold = 5
	defaultPageSize   = 20
	maxPageSize       = 100
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	FindActiveLocation(ctx context.Context, lat, lon float64) ([]*models.Incident, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error)
	CountNearby(ctx context.Context, lat, lon float64, radiusMeters int, since time.Time) (int, error)
	CountNearPath(ctx context.Context, path []geo.Point, radiusMeters int) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// EmergencyDispatcher регистрирует вызов экстренной службы
type EmergencyDispatcher interface {
	Dispatch(ctx context.Context, userID string, eventType string, lat, lng float64) (*models.SecurityEvent, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeactivateIncident(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	NearbyIncidents(ctx context.Context, lat, lng *float64, radiusMeters int) (*models.NearbyIncidents, error)
	CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]*models.Incident, error)
	SafetyStatus(ctx context.Context, lat, lng *float64) (*models.SafetyStatus, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type incidentService struct {
	repo       IncidentRepository
	logger     *logrus.Logger
	cfg        *config.Config
	publisher  webhook.WebhookPublisher
	dispatcher EmergencyDispatcher
	fallback   geo.Point
	clock      func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	dispatcher EmergencyDispatcher,
) IncidentService {
	return &incidentService{
		repo:       repo,
		logger:     logger,
		cfg:        cfg,
		publisher:  publisher,
		dispatcher: dispatcher,
		fallback:   geo.Point{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
		clock:      time.Now,
	}
}

// ReportIncident сохраняет ровно одну запись о происшествии. Для ambulance и
// first-aid дополнительно регистрируется вызов экстренной службы.
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ReportIncident",
		"type":        incident.Type,
		"reporter_id": incident.ReporterID,
	})
	log.Info("Attempting to report a new incident")

	if !incident.Type.Valid() {
		return fmt.Errorf("service: unknown incident type %q", incident.Type)
	}
	if !geo.Valid(incident.Latitude, incident.Longitude) {
		return fmt.Errorf("service: could not report incident: %w", ErrInvalidLocation)
	}

	incident.Status = models.StatusActive
	if incident.RadiusMeters <= 0 {
		incident.RadiusMeters = s.cfg.IncidentRadiusMeters
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")

	if incident.Type.IsEmergency() && s.dispatcher != nil {
		eventType := strings.ToUpper(string(incident.Type)) + " REQUEST"
		if _, err := s.dispatcher.Dispatch(ctx, incident.ReporterID, eventType, incident.Latitude, incident.Longitude); err != nil {
			// происшествие уже сохранено, вызов не откатываем
			log.WithError(err).Error("Failed to dispatch emergency service")
		}
	}
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// UpdateIncident обновляет существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, err)
	}

	if incident.Type != "" {
		if !incident.Type.Valid() {
			return fmt.Errorf("service: unknown incident type %q", incident.Type)
		}
		existing.Type = incident.Type
	}
	if incident.Description != "" {
		existing.Description = incident.Description
	}
	if incident.Latitude != 0 || incident.Longitude != 0 {
		if !geo.Valid(incident.Latitude, incident.Longitude) {
			return fmt.Errorf("service: could not update incident: %w", ErrInvalidLocation)
		}
		existing.Latitude = incident.Latitude
		existing.Longitude = incident.Longitude
	}
	if incident.RadiusMeters > 0 {
		existing.RadiusMeters = incident.RadiusMeters
	}
	if incident.Status == models.StatusActive || incident.Status == models.StatusInactive {
		existing.Status = incident.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, existing.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	*incident = *existing
	log.Info("Incident updated successfully")
	return nil
}

// DeactivateIncident деактивирует инцидент
func (s *incidentService) DeactivateIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeactivateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to deactivate incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate incident in repository")
		return fmt.Errorf("service: could not deactivate incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deactivated successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// NearbyIncidents возвращает активные происшествия в радиусе от точки
func (s *incidentService) NearbyIncidents(ctx context.Context, lat, lng *float64, radiusMeters int) (*models.NearbyIncidents, error) {
	point, usedFallback := geo.Resolve(lat, lng, s.fallback)
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.SafetyRadiusMeters
	}

	incidents, err := s.repo.FindNearby(ctx, point.Lat, point.Lng, radiusMeters)
	if err != nil {
		s.logger.WithError(err).WithField("method", "NearbyIncidents").Error("Failed to find nearby incidents")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}
	return &models.NearbyIncidents{
		Latitude:     point.Lat,
		Longitude:    point.Lng,
		RadiusMeters: radiusMeters,
		UsedFallback: usedFallback,
		Incidents:    incidents,
	}, nil
}

// CheckLocation находит активные инциденты, в зону которых попадает точка
func (s *incidentService) CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CheckLocation",
		"user_id": userID,
	})

	if !geo.Valid(lat, lon) {
		return nil, fmt.Errorf("service: could not check location: %w", ErrInvalidLocation)
	}

	activeIncidents, err := s.repo.FindActiveLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to find active incidents by location")
		return nil, fmt.Errorf("service: failed to find active incidents: %w", err)
	}
	isDanger := len(activeIncidents) > 0

	check := &models.LocationCheck{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		IsDangerous: isDanger,
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save location check")
	}

	if isDanger {
		event := webhook.WebhookEvent{
			Kind:        webhook.KindDangerZone,
			UserID:      userID,
			Latitude:    lat,
			Longitude:   lon,
			IsDangerous: true,
			Timestamp:   s.clock().UTC(),
			Incidents:   activeIncidents,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish danger zone webhook")
		}
	}

	log.WithField("is_danger", isDanger).Info("Location check completed")
	return activeIncidents, nil
}

// SafetyStatus оценивает район по числу активных происшествий за последние сутки
func (s *incidentService) SafetyStatus(ctx context.Context, lat, lng *float64) (*models.SafetyStatus, error) {
	point, usedFallback := geo.Resolve(lat, lng, s.fallback)
	radius := s.cfg.SafetyRadiusMeters

	count, err := s.repo.CountNearby(ctx, point.Lat, point.Lng, radius, s.clock().Add(-safetyWindow))
	if err != nil {
		s.logger.WithError(err).WithField("method", "SafetyStatus").Error("Failed to count recent incidents")
		return nil, fmt.Errorf("service: could not get safety status: %w", err)
	}

	return &models.SafetyStatus{
		Level:           safetyLevel(count),
		RecentIncidents: count,
		Latitude:        point.Lat,
		Longitude:       point.Lng,
		RadiusMeters:    radius,
		UsedFallback:    usedFallback,
	}, nil
}

func safetyLevel(recent int) models.SafetyLevel {
	switch {
	case recent > highRiskThreshold:
		return models.SafetyHigh
	case recent > 0:
		return models.SafetyModerate
	default:
		return models.SafetySafe
	}
}

// GetStats возвращает число пользователей, проверявших геолокацию в окне статистики
func (s *incidentService) GetStats(ctx context.Context) (*models.Stats, error) {
	window := s.cfg.StatsTimeWindowMinutes
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
		"window":  window,
	})

	users, err := s.repo.GetLocationCheckStats(ctx, window)
	if err != nil {
		log.WithError(err).Error("Failed to get location check stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	recent, err := s.repo.CountSince(ctx, s.clock().Add(-safetyWindow))
	if err != nil {
		log.WithError(err).Error("Failed to count recent incidents")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	return &models.Stats{
		ActiveUsers:      users,
		IncidentsLast24h: recent,
		WindowMinutes:    window,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
