package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=plan.go -destination=mocks/plan_mock.go -package=mocks

// UserRepository определяет контракт хранения профилей пользователей.
// Каждая запись меняет только свои колонки одним запросом.
type UserRepository interface {
	GetOrCreate(ctx context.Context, userID string, today string) (*models.UserProfile, error)
	ResetDailyCount(ctx context.Context, userID string, today string) error
	SetPlan(ctx context.Context, userID string, plan models.Plan, today string) (*models.UserProfile, error)
	SetTheme(ctx context.Context, userID string, theme string, today string) (*models.UserProfile, error)
	IncrementV2VCount(ctx context.Context, userID string, today string, limit int) (int, error)
}

// PlanService управляет тарифом, темой и дневным счетчиком V2V
type PlanService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	Subscribe(ctx context.Context, userID string, plan models.Plan) (*models.UserProfile, error)
	SetTheme(ctx context.Context, userID string, theme string) (*models.UserProfile, error)
	Require(ctx context.Context, userID string, feature models.Feature) (*models.UserProfile, error)
	ConsumeV2VQuota(ctx context.Context, userID string) (int, error)
}

type planService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
	loc    *time.Location
	clock  func() time.Time
}

func NewPlanService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) PlanService {
	return &planService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		loc:    cfg.Location(),
		clock:  time.Now,
	}
}

// today возвращает текущую дату в часовом поясе сервиса
func (s *planService) today() string {
	return s.clock().In(s.loc).Format(models.DateLayout)
}

// GetProfile возвращает профиль, обнуляя счетчик V2V при смене суток
func (s *planService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "plan",
		"method":  "GetProfile",
		"user_id": userID,
	})

	today := s.today()
	profile, err := s.repo.GetOrCreate(ctx, userID, today)
	if err != nil {
		log.WithError(err).Error("Failed to load user profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	if profile.ResetIfNewDay(today) {
		log.WithField("date", today).Info("Resetting daily V2V counter")
		if err := s.repo.ResetDailyCount(ctx, userID, today); err != nil {
			log.WithError(err).Error("Failed to persist counter reset")
			return nil, fmt.Errorf("service: could not reset daily counter: %w", err)
		}
	}
	return profile, nil
}

// Subscribe переводит пользователя на тариф. Счетчик V2V обнуляется только при смене тарифа.
func (s *planService) Subscribe(ctx context.Context, userID string, plan models.Plan) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "plan",
		"method":  "Subscribe",
		"user_id": userID,
		"plan":    plan,
	})

	if !plan.Valid() {
		return nil, fmt.Errorf("service: unknown plan %q", plan)
	}

	profile, err := s.repo.SetPlan(ctx, userID, plan, s.today())
	if err != nil {
		log.WithError(err).Error("Failed to update plan")
		return nil, fmt.Errorf("service: could not subscribe: %w", err)
	}

	log.Info("User subscribed to plan")
	return profile, nil
}

func (s *planService) SetTheme(ctx context.Context, userID string, theme string) (*models.UserProfile, error) {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return nil, fmt.Errorf("service: unknown theme %q", theme)
	}

	profile, err := s.repo.SetTheme(ctx, userID, theme, s.today())
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to update theme")
		return nil, fmt.Errorf("service: could not set theme: %w", err)
	}
	return profile, nil
}

// Require возвращает *PlanError, если возможность не входит в тариф пользователя
func (s *planService) Require(ctx context.Context, userID string, feature models.Feature) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.Plan.Allows(feature) {
		s.logger.WithFields(logrus.Fields{
			"service": "plan",
			"method":  "Require",
			"user_id": userID,
			"feature": feature,
			"plan":    profile.Plan,
		}).Info("Feature blocked by plan")
		return profile, &PlanError{Feature: feature, Current: profile.Plan, Required: models.RequiredPlan(feature)}
	}
	return profile, nil
}

// ConsumeV2VQuota списывает одно сообщение из дневной квоты.
// Возвращает остаток на сегодня, -1 - без ограничений.
func (s *planService) ConsumeV2VQuota(ctx context.Context, userID string) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "plan",
		"method":  "ConsumeV2VQuota",
		"user_id": userID,
	})

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return 0, err
	}

	limit := s.cfg.V2VFreeDailyLimit
	if profile.Plan.Allows(models.FeatureUnlimitedV2V) {
		limit = 0
	}
	if limit > 0 && profile.V2VDailyCount >= limit {
		log.WithField("count", profile.V2VDailyCount).Info("Daily V2V limit reached")
		return 0, ErrDailyLimitReached
	}

	count, err := s.repo.IncrementV2VCount(ctx, userID, profile.LastResetDate, limit)
	if err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			return 0, err
		}
		log.WithError(err).Error("Failed to increment V2V counter")
		return 0, fmt.Errorf("service: could not consume V2V quota: %w", err)
	}

	profile.V2VDailyCount = count
	return profile.V2VRemaining(limit), nil
}
