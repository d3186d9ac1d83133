package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	social := mocks.NewMockSocialService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	// Ожидания: первый проход сразу, ошибка не останавливает цикл
	social.EXPECT().PublishDue(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls++
		switch calls {
		case 1:
			return 2, nil
		case 2:
			return 0, errors.New("db down")
		default:
			cancel()
			return 0, nil
		}
	}).MinTimes(3)

	s := NewScheduler(social, 5*time.Millisecond, newTestLogger())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.GreaterOrEqual(t, calls, 3)
}
