package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adlens/internal/core/port"
)

// DefaultTTL bounds how long a crashed holder blocks a key.
const DefaultTTL = 5 * time.Minute

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// RedisLocker takes locks with SET NX and a random owner token. Release
// deletes the key only while the token still matches.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ port.Locker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("lock token: %w", err)
	}
	token := hex.EncodeToString(b)
	redisKey := "lock:" + key

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", redisKey, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrSyncInProgress, key)
	}
	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int()
		if err != nil {
			return fmt.Errorf("release lock %s: %w", redisKey, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrNotHeld, key)
		}
		return nil
	}, nil
}
