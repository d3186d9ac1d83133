// Package scheduler периодически публикует отложенные записи
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

type Scheduler struct {
	social   service.SocialService
	interval time.Duration
	logger   *logrus.Logger
}

func NewScheduler(social service.SocialService, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		social:   social,
		interval: interval,
		logger:   logger,
	}
}

// Start выполняет первый проход сразу, затем по таймеру, до отмены контекста
func (s *Scheduler) Start(ctx context.Context) {
	log := s.logger.WithField("component", "scheduler")
	log.WithField("interval", s.interval.String()).Info("Scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx, log)
		select {
		case <-ctx.Done():
			log.Info("Scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, log *logrus.Entry) {
	n, err := s.social.PublishDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.WithError(err).Error("Failed to publish due posts")
		}
		return
	}
	if n > 0 {
		log.WithField("published", n).Info("Scheduled posts published")
	}
}
