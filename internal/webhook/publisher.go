package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// EventKind - вид события, отправляемого во внешнюю систему
type EventKind string

const (
	KindDangerZone EventKind = "danger_zone"
	KindSOS        EventKind = "sos"
	KindDispatch   EventKind = "dispatch"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Kind        EventKind          `json:"kind"`
	UserID      string             `json:"user_id"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	IsDangerous bool               `json:"is_dangerous"`
	Timestamp   time.Time          `json:"timestamp"`
	EventType   string             `json:"event_type,omitempty"`
	Incidents   []*models.Incident `json:"incidents,omitempty"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher ставит события в очередь Redis, откуда их забирает WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
