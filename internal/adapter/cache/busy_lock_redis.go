package cache

import (
	"context"
	"errors"
	"time"

	"rfq_console/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultBusyTTL = 30 * time.Second

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisBusyLock shares busy flags between API instances. Locks expire after
// ttl so a crashed request cannot block an action forever.
type RedisBusyLock struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IBusyLock = (*RedisBusyLock)(nil)

func NewRedisBusyLock(rdb *redis.Client, ttl time.Duration) *RedisBusyLock {
	if ttl <= 0 {
		ttl = defaultBusyTTL
	}
	return &RedisBusyLock{rdb: rdb, ttl: ttl}
}

func (l *RedisBusyLock) Acquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	release := func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			zap.L().Warn("[busy][redis] release failed", zap.String("key", key), zap.Error(err))
		}
	}
	return release, true, nil
}

func (l *RedisBusyLock) Held(ctx context.Context, key string) (bool, error) {
	n, err := l.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
