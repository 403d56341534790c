package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisResetLimiter throttles password-recovery requests per email using a
// counter with a sliding expiry.
type RedisResetLimiter struct {
	client *redis.Client
}

func NewRedisResetLimiter(client *redis.Client) *RedisResetLimiter {
	return &RedisResetLimiter{client: client}
}

func (l *RedisResetLimiter) Allow(ctx context.Context, key string, threshold int, window time.Duration) (bool, error) {
	redisKey := "ledger:reset:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First attempt in this window starts the clock.
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(threshold), nil
}
