package configs

import "time"

// Sync tunes the sync engine and dashboard fan-out.
type Sync struct {
	// Timeout bounds every call to a platform.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// Concurrency caps parallel campaign upserts per sync.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// LockTTL is how long a sync lock survives a crashed holder.
	LockTTL    time.Duration `env:"LOCK_TTL" envDefault:"5m"`
	MaxRetries int           `env:"MAX_RETRIES" envDefault:"2"`
}
