package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=v2v.go -destination=mocks/v2v_mock.go -package=mocks

const (
	MaxV2VMessageLength = 280
	defaultSenderName   = "Driver"
)

type V2VRepository interface {
	Create(ctx context.Context, msg *models.V2VMessage) error
	ListRecent(ctx context.Context, limit int) ([]*models.V2VMessage, error)
}

// MessageBroadcaster рассылает сообщение подключенным клиентам
type MessageBroadcaster interface {
	Broadcast(ctx context.Context, msg *models.V2VMessage) error
}

// Simulator - источник смоделированных данных о сети и дорогах
type Simulator interface {
	NetworkStatus() models.V2VNetworkStatus
	Traffic(lat, lng float64) models.TrafficReport
	Jitter(max int) int
}

type V2VService interface {
	Send(ctx context.Context, userID, senderName, text string, lat, lng *float64) (*models.V2VMessage, int, error)
	List(ctx context.Context, limit int) ([]*models.V2VMessage, error)
	NetworkStatus(ctx context.Context) models.V2VNetworkStatus
}

type v2vService struct {
	repo        V2VRepository
	plans       PlanService
	broadcaster MessageBroadcaster
	sim         Simulator
	logger      *logrus.Logger
}

func NewV2VService(repo V2VRepository, plans PlanService, broadcaster MessageBroadcaster, sim Simulator, logger *logrus.Logger) V2VService {
	return &v2vService{
		repo:        repo,
		plans:       plans,
		broadcaster: broadcaster,
		sim:         sim,
		logger:      logger,
	}
}

// Send списывает квоту, сохраняет сообщение и рассылает его.
// Второй результат - остаток сообщений на сегодня (-1 без ограничений).
func (s *v2vService) Send(ctx context.Context, userID, senderName, text string, lat, lng *float64) (*models.V2VMessage, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "v2v",
		"method":  "Send",
		"user_id": userID,
	})

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, 0, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxV2VMessageLength {
		return nil, 0, fmt.Errorf("service: message longer than %d characters", MaxV2VMessageLength)
	}

	remaining, err := s.plans.ConsumeV2VQuota(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	msg := &models.V2VMessage{
		SenderID:   userID,
		SenderName: strings.TrimSpace(senderName),
		Text:       text,
	}
	if msg.SenderName == "" {
		msg.SenderName = defaultSenderName
	}
	// координаты необязательны, некорректные отбрасываются
	if lat != nil && lng != nil && geo.Valid(*lat, *lng) {
		msg.Latitude, msg.Longitude = lat, lng
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to save V2V message")
		return nil, 0, fmt.Errorf("service: could not save V2V message: %w", err)
	}

	if err := s.broadcaster.Broadcast(ctx, msg); err != nil {
		log.WithError(err).Warn("Failed to broadcast V2V message")
	}

	log.WithField("remaining", remaining).Info("V2V message sent")
	return msg, remaining, nil
}

func (s *v2vService) List(ctx context.Context, limit int) ([]*models.V2VMessage, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	msgs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).WithField("method", "List").Error("Failed to list V2V messages")
		return nil, fmt.Errorf("service: could not list V2V messages: %w", err)
	}
	return msgs, nil
}

func (s *v2vService) NetworkStatus(_ context.Context) models.V2VNetworkStatus {
	return s.sim.NetworkStatus()
}
