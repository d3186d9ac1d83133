package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

var socialNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSocialService(t *testing.T) (*socialService, *mocks.MockSocialRepository, *mocks.MockPlanService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSocialRepository(ctrl)
	plans := mocks.NewMockPlanService(ctrl)

	service := NewSocialService(repo, plans, newTestLogger()).(*socialService)
	service.clock = func() time.Time { return socialNow }
	return service, repo, plans
}

func TestCreatePost_AnyPlan(t *testing.T) {
	service, repo, plans := newTestSocialService(t)
	plans.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil)

	post, err := service.CreatePost(context.Background(), "u1", "  Road clear on Mombasa Rd ", nil)

	require.NoError(t, err)
	assert.Equal(t, "Road clear on Mombasa Rd", post.Content)
}

func TestCreatePost_UnknownGroup(t *testing.T) {
	service, repo, _ := newTestSocialService(t)
	groupID := uuid.New()
	repo.EXPECT().GetGroup(gomock.Any(), groupID).Return(nil, ErrNotFound)

	_, err := service.CreatePost(context.Background(), "u1", "hi", &groupID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.CreatePost(context.Background(), "u1", " ", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestCreateGroup_RequiresPro(t *testing.T) {
	service, repo, plans := newTestSocialService(t)
	plans.EXPECT().
		Require(gomock.Any(), "u1", models.FeatureGroups).
		Return(nil, &PlanError{Feature: models.FeatureGroups, Current: models.PlanFree, Required: models.PlanPro})
	repo.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateGroup(context.Background(), "u1", "Matatu drivers", "")
	assert.ErrorIs(t, err, ErrUpgradeRequired)
}

func TestCreateGroup_Success(t *testing.T) {
	service, repo, plans := newTestSocialService(t)
	plans.EXPECT().Require(gomock.Any(), "u1", models.FeatureGroups).Return(&models.UserProfile{Plan: models.PlanPro}, nil)
	repo.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Group) error {
			g.ID = uuid.New()
			return nil
		})

	group, err := service.CreateGroup(context.Background(), "u1", " Matatu drivers ", "Nairobi CBD")

	require.NoError(t, err)
	assert.Equal(t, "Matatu drivers", group.Name)
	assert.Equal(t, "u1", group.OwnerID)
}

func TestSchedulePost(t *testing.T) {
	service, repo, plans := newTestSocialService(t)
	plans.EXPECT().Require(gomock.Any(), "u1", models.FeatureScheduledPosts).Return(&models.UserProfile{}, nil).Times(2)
	repo.EXPECT().CreateScheduledPost(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := service.SchedulePost(context.Background(), "u1", "later", nil, socialNow.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	post, err := service.SchedulePost(context.Background(), "u1", "later", nil, socialNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, post.Published)
	assert.Equal(t, socialNow.Add(time.Hour), post.PublishAt)
}

func TestPublishDue(t *testing.T) {
	service, repo, _ := newTestSocialService(t)
	repo.EXPECT().
		PublishDue(gomock.Any(), socialNow, 100).
		Return([]*models.SocialPost{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	n, err := service.PublishDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPublishDue_Error(t *testing.T) {
	service, repo, _ := newTestSocialService(t)
	repo.EXPECT().PublishDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("tx aborted"))

	_, err := service.PublishDue(context.Background())
	assert.ErrorContains(t, err, "could not publish scheduled posts")
}

func TestFeed_NormalizesPage(t *testing.T) {
	service, repo, _ := newTestSocialService(t)
	repo.EXPECT().ListPosts(gomock.Any(), 1, 20, (*uuid.UUID)(nil)).Return([]*models.SocialPost{}, nil)

	_, err := service.Feed(context.Background(), -3, 0, nil)
	require.NoError(t, err)
}
