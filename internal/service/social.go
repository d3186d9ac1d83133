package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=social.go -destination=mocks/social_mock.go -package=mocks

const (
	MaxPostLength     = 1000
	publishBatchLimit = 100
)

type SocialRepository interface {
	CreatePost(ctx context.Context, post *models.SocialPost) error
	ListPosts(ctx context.Context, page, pageSize int, groupID *uuid.UUID) ([]*models.SocialPost, error)
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context, page, pageSize int) ([]*models.Group, error)
	CreateScheduledPost(ctx context.Context, post *models.ScheduledPost) error
	ListScheduledPosts(ctx context.Context, userID string) ([]*models.ScheduledPost, error)
	PublishDue(ctx context.Context, now time.Time, limit int) ([]*models.SocialPost, error)
}

type SocialService interface {
	CreatePost(ctx context.Context, userID, content string, groupID *uuid.UUID) (*models.SocialPost, error)
	Feed(ctx context.Context, page, pageSize int, groupID *uuid.UUID) ([]*models.SocialPost, error)
	CreateGroup(ctx context.Context, userID, name, description string) (*models.Group, error)
	ListGroups(ctx context.Context, page, pageSize int) ([]*models.Group, error)
	SchedulePost(ctx context.Context, userID, content string, groupID *uuid.UUID, publishAt time.Time) (*models.ScheduledPost, error)
	ListScheduled(ctx context.Context, userID string) ([]*models.ScheduledPost, error)
	PublishDue(ctx context.Context) (int, error)
}

type socialService struct {
	repo   SocialRepository
	plans  PlanService
	logger *logrus.Logger
	clock  func() time.Time
}

func NewSocialService(repo SocialRepository, plans PlanService, logger *logrus.Logger) SocialService {
	return &socialService{
		repo:   repo,
		plans:  plans,
		logger: logger,
		clock:  time.Now,
	}
}

func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyMessage
	}
	if len([]rune(content)) > MaxPostLength {
		return "", fmt.Errorf("service: post longer than %d characters", MaxPostLength)
	}
	return content, nil
}

// checkGroup убеждается, что группа существует
func (s *socialService) checkGroup(ctx context.Context, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.repo.GetGroup(ctx, *groupID); err != nil {
		return fmt.Errorf("service: group %s: %w", groupID, err)
	}
	return nil
}

// CreatePost доступен на любом тарифе
func (s *socialService) CreatePost(ctx context.Context, userID, content string, groupID *uuid.UUID) (*models.SocialPost, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	if err := s.checkGroup(ctx, groupID); err != nil {
		return nil, err
	}

	post := &models.SocialPost{UserID: userID, Content: content, GroupID: groupID}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to create post")
		return nil, fmt.Errorf("service: could not create post: %w", err)
	}
	return post, nil
}

func (s *socialService) Feed(ctx context.Context, page, pageSize int, groupID *uuid.UUID) ([]*models.SocialPost, error) {
	page, pageSize = normalizePage(page, pageSize)
	posts, err := s.repo.ListPosts(ctx, page, pageSize, groupID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load feed: %w", err)
	}
	return posts, nil
}

func (s *socialService) CreateGroup(ctx context.Context, userID, name, description string) (*models.Group, error) {
	if _, err := s.plans.Require(ctx, userID, models.FeatureGroups); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		OwnerID:     userID,
	}
	if group.Name == "" {
		return nil, fmt.Errorf("service: group name is empty")
	}
	if err := s.repo.CreateGroup(ctx, group); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to create group")
		return nil, fmt.Errorf("service: could not create group: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service":  "social",
		"method":   "CreateGroup",
		"group_id": group.ID,
	}).Info("Group created")
	return group, nil
}

func (s *socialService) ListGroups(ctx context.Context, page, pageSize int) ([]*models.Group, error) {
	page, pageSize = normalizePage(page, pageSize)
	groups, err := s.repo.ListGroups(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list groups: %w", err)
	}
	return groups, nil
}

// SchedulePost откладывает публикацию. publishAt должен быть в будущем.
func (s *socialService) SchedulePost(ctx context.Context, userID, content string, groupID *uuid.UUID, publishAt time.Time) (*models.ScheduledPost, error) {
	if _, err := s.plans.Require(ctx, userID, models.FeatureScheduledPosts); err != nil {
		return nil, err
	}

	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	if !publishAt.After(s.clock()) {
		return nil, ErrInvalidSchedule
	}
	if err := s.checkGroup(ctx, groupID); err != nil {
		return nil, err
	}

	post := &models.ScheduledPost{
		UserID:    userID,
		Content:   content,
		GroupID:   groupID,
		PublishAt: publishAt.UTC(),
	}
	if err := s.repo.CreateScheduledPost(ctx, post); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to schedule post")
		return nil, fmt.Errorf("service: could not schedule post: %w", err)
	}
	return post, nil
}

func (s *socialService) ListScheduled(ctx context.Context, userID string) ([]*models.ScheduledPost, error) {
	posts, err := s.repo.ListScheduledPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list scheduled posts: %w", err)
	}
	return posts, nil
}

// PublishDue переносит наступившие отложенные записи в ленту
func (s *socialService) PublishDue(ctx context.Context) (int, error) {
	posts, err := s.repo.PublishDue(ctx, s.clock(), publishBatchLimit)
	if err != nil {
		s.logger.WithError(err).WithField("method", "PublishDue").Error("Failed to publish scheduled posts")
		return 0, fmt.Errorf("service: could not publish scheduled posts: %w", err)
	}
	if len(posts) > 0 {
		s.logger.WithField("count", len(posts)).Info("Scheduled posts published")
	}
	return len(posts), nil
}
