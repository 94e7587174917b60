// Package ratelimit guards the public approval surface: the share token is
// the only credential there, so resolution attempts are rate limited to
// keep tokens from being brute-forced.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"socialdesk/internal/config"
)

type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// NewLimiter returns a Redis fixed-window limiter, or a pass-through
// limiter when no Redis address is configured.
func NewLimiter(cfg *config.Config) Limiter {
	if cfg.Redis.Addr == "" {
		return &NopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &RedisLimiter{
		client: client,
		limit:  cfg.ApprovalRateLimit,
		window: cfg.ApprovalRateWindow,
	}
}

type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// Allow counts requests per key in a fixed window. Redis being unreachable
// fails open: a broken limiter must not take the approval page down.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.WithError(err).Warn("rate limiter unavailable, allowing request")
		return true
	}

	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}

	return count <= int64(l.limit)
}

type NopLimiter struct{}

func (l *NopLimiter) Allow(_ context.Context, _ string) bool {
	return true
}
