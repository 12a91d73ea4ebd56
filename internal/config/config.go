package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"adlens/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with the given envPrefix. Use Load to
// construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP  configs.HTTP     `envPrefix:"HTTP_"`
	Log   configs.Logger   `envPrefix:"LOG_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`
	Vault configs.Vault    `envPrefix:"VAULT_"`
	Sync  configs.Sync     `envPrefix:"SYNC_"`

	SearchAds    configs.Platform `envPrefix:"SEARCH_ADS_"`
	SocialAds    configs.Platform `envPrefix:"SOCIAL_ADS_"`
	WebAnalytics configs.Platform `envPrefix:"WEB_ANALYTICS_"`
}

var (
	searchAdsDefaults = configs.Platform{
		BaseURL:    "https://googleads.googleapis.com",
		APIVersion: "v17",
		AuthURL:    "https://accounts.google.com/o/oauth2/auth",
		TokenURL:   "https://oauth2.googleapis.com/token",
		Scopes:     []string{"https://www.googleapis.com/auth/adwords"},
	}
	socialAdsDefaults = configs.Platform{
		BaseURL:    "https://graph.facebook.com",
		APIVersion: "v19.0",
		AuthURL:    "https://www.facebook.com/v19.0/dialog/oauth",
		TokenURL:   "https://graph.facebook.com/v19.0/oauth/access_token",
		Scopes:     []string{"ads_read", "ads_management"},
	}
	webAnalyticsDefaults = configs.Platform{
		BaseURL:    "https://analyticsdata.googleapis.com",
		APIVersion: "v1beta",
		AuthURL:    "https://accounts.google.com/o/oauth2/auth",
		TokenURL:   "https://oauth2.googleapis.com/token",
		Scopes:     []string{"https://www.googleapis.com/auth/analytics.readonly"},
	}
)

// Load reads configuration from environment variables into a Config and
// validates it.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	cfg.SearchAds = cfg.SearchAds.WithDefaults(searchAdsDefaults)
	cfg.SocialAds = cfg.SocialAds.WithDefaults(socialAdsDefaults)
	cfg.WebAnalytics = cfg.WebAnalytics.WithDefaults(webAnalyticsDefaults)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Vault.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Sync.Concurrency < 1 {
		errs = append(errs, errors.New("SYNC_CONCURRENCY must be positive"))
	}
	if c.Psql.MinConns > c.Psql.MaxConns {
		errs = append(errs, errors.New("PSQL_MIN_CONNS exceeds PSQL_MAX_CONNS"))
	}
	return errors.Join(errs...)
}
