package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/webhook"
)

//go:generate mockgen -source=security.go -destination=mocks/security_mock.go -package=mocks

const maxEventsLimit = 100

type SecurityRepository interface {
	Create(ctx context.Context, event *models.SecurityEvent) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.SecurityEvent, error)
}

// EventStreamer отправляет события безопасности во внешний поток
type EventStreamer interface {
	Stream(ctx context.Context, event *models.SecurityEvent) error
}

type SecurityService interface {
	EmergencyDispatcher
	SendSOS(ctx context.Context, userID string, lat, lng *float64) (*models.SecurityEvent, error)
	ListEvents(ctx context.Context, userID string, limit int) ([]*models.SecurityEvent, error)
}

type securityService struct {
	repo      SecurityRepository
	streamer  EventStreamer
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	clock     func() time.Time
}

// NewSecurityService создает сервис журнала безопасности. streamer может быть nil.
func NewSecurityService(repo SecurityRepository, streamer EventStreamer, publisher webhook.WebhookPublisher, logger *logrus.Logger) SecurityService {
	return &securityService{
		repo:      repo,
		streamer:  streamer,
		publisher: publisher,
		logger:    logger,
		clock:     time.Now,
	}
}

// SendSOS регистрирует сигнал бедствия. Без координат сигнал не принимается.
func (s *securityService) SendSOS(ctx context.Context, userID string, lat, lng *float64) (*models.SecurityEvent, error) {
	if lat == nil || lng == nil || !geo.Valid(*lat, *lng) {
		return nil, fmt.Errorf("service: location required for SOS: %w", ErrInvalidLocation)
	}
	return s.record(ctx, userID, models.SecurityEventSOS, webhook.KindSOS, *lat, *lng)
}

// Dispatch регистрирует вызов экстренной службы к месту происшествия
func (s *securityService) Dispatch(ctx context.Context, userID string, eventType string, lat, lng float64) (*models.SecurityEvent, error) {
	return s.record(ctx, userID, eventType, webhook.KindDispatch, lat, lng)
}

func (s *securityService) record(ctx context.Context, userID, eventType string, kind webhook.EventKind, lat, lng float64) (*models.SecurityEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "security",
		"method":     "record",
		"user_id":    userID,
		"event_type": eventType,
	})

	event := &models.SecurityEvent{
		UserID:    userID,
		Type:      eventType,
		Latitude:  lat,
		Longitude: lng,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to save security event")
		return nil, fmt.Errorf("service: could not save security event: %w", err)
	}
	log.WithField("event_id", event.ID).Warn("Security event recorded")

	if s.streamer != nil {
		if err := s.streamer.Stream(ctx, event); err != nil {
			log.WithError(err).Error("Failed to stream security event")
		}
	}

	hook := webhook.WebhookEvent{
		Kind:        kind,
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lng,
		IsDangerous: true,
		Timestamp:   s.clock().UTC(),
		EventType:   eventType,
	}
	if err := s.publisher.Publish(ctx, hook); err != nil {
		log.WithError(err).Error("Failed to publish security webhook")
	}
	return event, nil
}

func (s *securityService) ListEvents(ctx context.Context, userID string, limit int) ([]*models.SecurityEvent, error) {
	if limit < 1 || limit > maxEventsLimit {
		limit = defaultPageSize
	}
	events, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list security events")
		return nil, fmt.Errorf("service: could not list security events: %w", err)
	}
	return events, nil
}
