package grouping

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Locker interface {
	AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, lockKey string)
}

type redisLocker struct {
	redis *redis.Client
}

func NewRedisLocker(redisClient *redis.Client) Locker {
	return &redisLocker{redis: redisClient}
}

func (l *redisLocker) AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error) {
	return l.redis.SetNX(ctx, lockKey, "", ttl).Result()
}

// ReleaseLock ignores the request context so a cancelled caller still frees the lock.
func (l *redisLocker) ReleaseLock(ctx context.Context, lockKey string) {
	l.redis.Del(context.Background(), lockKey)
}

// localLocker always grants the lock, which leaves only the cache in front of the requester.
type localLocker struct{}

func (localLocker) AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (localLocker) ReleaseLock(ctx context.Context, lockKey string) {}
