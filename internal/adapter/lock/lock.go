// Package lock serialises syncs per (client, platform) key. Redis is
// preferred for cross-host locking; Postgres advisory locks are the
// fallback and LocalLocker covers single-process use.
package lock

import (
	"database/sql"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"adlens/internal/core/port"
)

// ErrNotHeld is returned by a release func when the lock expired or was
// taken over before release.
var ErrNotHeld = errors.New("lock no longer held")

// New returns the best available backend: Redis when redisClient is set,
// otherwise Postgres advisory locks on db.
func New(redisClient redis.UniversalClient, db *sql.DB, ttl time.Duration) port.Locker {
	if redisClient != nil {
		return NewRedisLocker(redisClient, ttl)
	}
	return NewAdvisoryLocker(db)
}
