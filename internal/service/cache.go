package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

// Cache - кеш ответов внешних API и флагов дедупликации
type Cache interface {
	// Get декодирует значение в dst. false - ключа нет.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// SetNX ставит флаг, если его еще нет. true - флаг установлен этим вызовом.
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
