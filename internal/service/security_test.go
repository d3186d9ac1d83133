package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
	"github.com/Geezkick/NjiaSafe-Drive/internal/webhook"
	webhook_mocks "github.com/Geezkick/NjiaSafe-Drive/internal/webhook/mocks"
)

func newTestSecurityService(t *testing.T) (*securityService, *mocks.MockSecurityRepository, *mocks.MockEventStreamer, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSecurityRepository(ctrl)
	streamer := mocks.NewMockEventStreamer(ctrl)
	publisher := webhook_mocks.NewMockWebhookPublisher(ctrl)

	service := NewSecurityService(repo, streamer, publisher, newTestLogger())
	return service.(*securityService), repo, streamer, publisher
}

func TestSendSOS_Success(t *testing.T) {
	service, repo, streamer, publisher := newTestSecurityService(t)
	ctx := context.Background()
	lat, lng := -1.3, 36.8

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.SecurityEvent) error {
			assert.Equal(t, models.SecurityEventSOS, e.Type)
			assert.Equal(t, "u1", e.UserID)
			e.ID = uuid.New()
			return nil
		}).Times(1)
	streamer.EXPECT().Stream(ctx, gomock.Any()).Return(nil).Times(1)
	publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, ev webhook.WebhookEvent) {
			assert.Equal(t, webhook.KindSOS, ev.Kind)
			assert.Equal(t, models.SecurityEventSOS, ev.EventType)
			assert.Equal(t, lat, ev.Latitude)
		}).Return(nil).Times(1)

	event, err := service.SendSOS(ctx, "u1", &lat, &lng)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
}

func TestSendSOS_LocationRequired(t *testing.T) {
	service, repo, _, _ := newTestSecurityService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	zero := 0.0

	_, err := service.SendSOS(context.Background(), "u1", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidLocation)
	assert.ErrorContains(t, err, "location required for SOS")

	_, err = service.SendSOS(context.Background(), "u1", &zero, &zero)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestSendSOS_StreamFailureIsNotFatal(t *testing.T) {
	service, repo, streamer, publisher := newTestSecurityService(t)
	lat, lng := 1.0, 2.0

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	streamer.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(fmt.Errorf("throttled")).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := service.SendSOS(context.Background(), "u1", &lat, &lng)
	require.NoError(t, err)
}

func TestDispatch_WithoutStreamer(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSecurityRepository(ctrl)
	publisher := webhook_mocks.NewMockWebhookPublisher(ctrl)
	service := NewSecurityService(repo, nil, publisher, newTestLogger())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ev webhook.WebhookEvent) {
			assert.Equal(t, webhook.KindDispatch, ev.Kind)
			assert.Equal(t, "AMBULANCE REQUEST", ev.EventType)
		}).Return(nil).Times(1)

	event, err := service.Dispatch(context.Background(), "u1", "AMBULANCE REQUEST", 3, 4)

	require.NoError(t, err)
	assert.Equal(t, "AMBULANCE REQUEST", event.Type)
}

func TestSendSOS_RepositoryError(t *testing.T) {
	service, repo, _, _ := newTestSecurityService(t)
	lat, lng := 1.0, 2.0

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("db down")).Times(1)

	_, err := service.SendSOS(context.Background(), "u1", &lat, &lng)
	assert.ErrorContains(t, err, "could not save security event")
}

func TestListEvents_ClampsLimit(t *testing.T) {
	service, repo, _, _ := newTestSecurityService(t)
	repo.EXPECT().ListByUser(gomock.Any(), "u1", 20).Return([]*models.SecurityEvent{}, nil).Times(1)

	events, err := service.ListEvents(context.Background(), "u1", 1000)
	require.NoError(t, err)
	assert.Empty(t, events)
}
