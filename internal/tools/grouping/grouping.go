package grouping

import (
	"context"
	"time"

	"bitbucket.org/crgw/rental-quote/internal/tools/slowlog"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultLockTTL   = time.Minute
	defaultRetryWait = 100 * time.Millisecond
	defaultMaxWaits  = 20
)

type Cache interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string, destination any) bool
}

// Group coalesces concurrent cache misses for the same key: one caller runs
// the requester while the others wait for its result to land in the cache.
type Group struct {
	cache     Cache
	locker    Locker
	lockTTL   time.Duration
	retryWait time.Duration
	maxWaits  int
}

func New(cache Cache, locker Locker) *Group {
	if locker == nil {
		locker = localLocker{}
	}

	return &Group{
		cache:     cache,
		locker:    locker,
		lockTTL:   defaultLockTTL,
		retryWait: defaultRetryWait,
		maxWaits:  defaultMaxWaits,
	}
}

func (g *Group) WithRetry(wait time.Duration, maxWaits int) *Group {
	g.retryWait = wait
	g.maxWaits = maxWaits
	return g
}

// Do returns the cached value for key or the requester result, which is then
// cached for ttl. Failed requests are never cached. After maxWaits the
// requester runs without the lock.
func Do[T any](
	ctx context.Context,
	g *Group,
	key string,
	ttl time.Duration,
	log *zerolog.Logger,
	requester func() (T, error),
) (T, error) {
	groupingLog := log.With().Str("groupingId", uuid.New().String()).Logger()
	slowLog := slowlog.CreateLogger(&groupingLog)
	slowLog.Start("grouping:Do")
	defer slowLog.Stop("grouping:Do")

	var zero T
	lockKey := key + ":lock"

	for waits := 0; ; waits++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		var cached T
		if g.cache.Fetch(ctx, key, &cached) {
			groupingLog.Debug().
				Str("label", "cache").
				Bool("hit", true).
				Str("key", key).
				Msg("Used cache response")

			return cached, nil
		}

		if waits >= g.maxWaits {
			groupingLog.Warn().Str("key", key).Msg("Gave up waiting for the grouping lock")
			return requester()
		}

		acquired, err := g.locker.AcquireLock(ctx, lockKey, g.lockTTL)
		if err != nil || acquired {
			return requestAndStore(ctx, g, key, lockKey, acquired, ttl, &groupingLog, requester)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(g.retryWait):
		}
	}
}

func requestAndStore[T any](
	ctx context.Context,
	g *Group,
	key string,
	lockKey string,
	locked bool,
	ttl time.Duration,
	log *zerolog.Logger,
	requester func() (T, error),
) (T, error) {
	if locked {
		defer g.locker.ReleaseLock(ctx, lockKey)
	}

	value, err := requester()
	if err != nil {
		return value, err
	}

	if err := g.cache.Store(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Unable to store response in cache")
	}

	return value, nil
}
