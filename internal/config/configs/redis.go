package configs

// Redis configures the distributed sync lock. An empty Addr disables
// Redis and sync locks fall back to Postgres advisory locks.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
