// Package app assembles the services shared by the HTTP server and the
// sync command.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	httpadapter "adlens/internal/adapter/http"
	"adlens/internal/adapter/lock"
	"adlens/internal/adapter/platform"
	"adlens/internal/adapter/postgres"
	"adlens/internal/adapter/usecase"
	"adlens/internal/adapter/vault"
	"adlens/internal/config"
	"adlens/internal/config/configs"
	"adlens/internal/core/domain"
	"adlens/internal/db"
)

// App owns every long lived connection. Close releases them.
type App struct {
	Pool  *pgxpool.Pool
	Redis redis.UniversalClient
	// LockDB backs advisory locks when Redis is not configured.
	LockDB *sql.DB

	Clients     *usecase.ClientService
	Campaigns   *usecase.CampaignService
	Credentials *usecase.CredentialService
	Dashboard   *usecase.DashboardService
	Sync        *usecase.SyncEngine
	Connect     *usecase.ConnectService

	CampaignRepo *postgres.CampaignRepository

	logger *slog.Logger
}

// New connects to Postgres (and Redis when configured) and wires the
// services.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a := &App{Pool: pool, logger: logger}

	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err = client.Ping(ctx).Err(); err != nil {
			client.Close()
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.Redis = client
	} else {
		if a.LockDB, err = sql.Open("postgres", cfg.Psql.Addr.String()); err != nil {
			a.Close()
			return nil, fmt.Errorf("open lock database: %w", err)
		}
	}

	v, err := vault.New(cfg.Vault.Secret)
	if err != nil {
		a.Close()
		return nil, err
	}

	clients := postgres.NewClientRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	integrations := postgres.NewIntegrationRepository(pool)
	a.CampaignRepo = campaigns

	a.Credentials = usecase.NewCredentialService(postgres.NewCredentialRepository(pool), integrations, v, logger)

	oauthConfigs := oauthByPlatform(cfg)
	adapterConfig := func(p configs.Platform) platform.Config {
		return platform.Config{
			BaseURL:        p.BaseURL,
			APIVersion:     p.APIVersion,
			Timeout:        cfg.Sync.Timeout,
			MaxRetries:     cfg.Sync.MaxRetries,
			OAuth:          p.OAuth(),
			DeveloperToken: p.DeveloperToken,
			Tokens:         a.Credentials,
		}
	}
	registry, err := platform.NewRegistry(
		platform.NewSearchAdsAdapter(a.Credentials, adapterConfig(cfg.SearchAds), logger),
		platform.NewSocialAdsAdapter(a.Credentials, adapterConfig(cfg.SocialAds), logger),
		platform.NewWebAnalyticsAdapter(a.Credentials, adapterConfig(cfg.WebAnalytics), logger),
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Sync.Timeout}
	refresher := usecase.NewTokenRefresher(oauthConfigs, a.Credentials, integrations, httpClient, logger)

	a.Sync = usecase.NewSyncEngine(
		registry, clients, campaigns, integrations,
		lock.New(a.Redis, a.LockDB, cfg.Sync.LockTTL),
		refresher,
		usecase.SyncConfig{Timeout: cfg.Sync.Timeout, Concurrency: cfg.Sync.Concurrency},
		logger,
	)
	a.Dashboard = usecase.NewDashboardService(clients, integrations, registry, cfg.Sync.Timeout, logger)
	a.Connect = usecase.NewConnectService(oauthConfigs, clients, a.Credentials, integrations, httpClient, logger)
	a.Clients = usecase.NewClientService(clients, integrations, logger)
	a.Campaigns = usecase.NewCampaignService(registry, campaigns, cfg.Sync.Timeout, logger)
	return a, nil
}

// Handler returns the HTTP API backed by a's services.
func (a *App) Handler() http.Handler {
	return httpadapter.NewHandler(httpadapter.Services{
		Dashboard:   a.Dashboard,
		Sync:        a.Sync,
		Connect:     a.Connect,
		Credentials: a.Credentials,
		Clients:     a.Clients,
		Campaigns:   a.Campaigns,
	}, a.logger).Router()
}

// Close releases every connection a holds.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.LockDB != nil {
		errs = append(errs, a.LockDB.Close())
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
	return errors.Join(errs...)
}

func oauthByPlatform(cfg config.Config) map[domain.Platform]*oauth2.Config {
	out := make(map[domain.Platform]*oauth2.Config, 3)
	for p, pc := range map[domain.Platform]configs.Platform{
		domain.PlatformSearchAds:    cfg.SearchAds,
		domain.PlatformSocialAds:    cfg.SocialAds,
		domain.PlatformWebAnalytics: cfg.WebAnalytics,
	} {
		if oc := pc.OAuth(); oc != nil {
			out[p] = oc
		}
	}
	return out
}
