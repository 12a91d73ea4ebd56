package lock

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"adlens/internal/core/port"
)

// AdvisoryLocker uses session scoped pg_try_advisory_lock. Each lock pins
// one pooled connection until it is released; a dropped connection frees
// the lock.
type AdvisoryLocker struct {
	db *sql.DB
}

var _ port.Locker = (*AdvisoryLocker)(nil)

func NewAdvisoryLocker(db *sql.DB) *AdvisoryLocker {
	return &AdvisoryLocker{db: db}
}

// lockID maps key onto the advisory lock id space.
func lockID(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}

func (l *AdvisoryLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	id := lockID(key)
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock connection: %w", err)
	}
	var acquired bool
	if err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", id).Scan(&acquired); err != nil {
		conn.Close()
		return nil, fmt.Errorf("acquire advisory lock %s: %w", key, err)
	}
	if !acquired {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", port.ErrSyncInProgress, key)
	}
	return func(ctx context.Context) error {
		defer conn.Close()
		var released bool
		if err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", id).Scan(&released); err != nil {
			return fmt.Errorf("release advisory lock %s: %w", key, err)
		}
		if !released {
			return fmt.Errorf("%w: %s", ErrNotHeld, key)
		}
		return nil
	}, nil
}
