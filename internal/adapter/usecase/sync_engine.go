package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/metrics"
)

// SyncConfig tunes the sync engine.
type SyncConfig struct {
	// Timeout bounds the remote fetch.
	Timeout time.Duration
	// Concurrency caps parallel campaign upserts.
	Concurrency int
}

func (c SyncConfig) withDefaults() SyncConfig {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	return c
}

// SyncEngine pulls remote campaigns into the campaign repository.
type SyncEngine struct {
	registry     port.AdapterRegistry
	clients      port.ClientRepository
	campaigns    port.CampaignRepository
	integrations port.IntegrationRepository
	locker       port.Locker
	refresher    port.TokenRefresher
	cfg          SyncConfig
	logger       *slog.Logger
	now          func() time.Time
}

var _ port.SyncUseCase = (*SyncEngine)(nil)

// NewSyncEngine wires the engine. refresher may be nil, in which case
// expiring tokens are left to the adapters.
func NewSyncEngine(
	registry port.AdapterRegistry,
	clients port.ClientRepository,
	campaigns port.CampaignRepository,
	integrations port.IntegrationRepository,
	locker port.Locker,
	refresher port.TokenRefresher,
	cfg SyncConfig,
	logger *slog.Logger,
) *SyncEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncEngine{
		registry:     registry,
		clients:      clients,
		campaigns:    campaigns,
		integrations: integrations,
		locker:       locker,
		refresher:    refresher,
		cfg:          cfg.withDefaults(),
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func lockKey(clientID uuid.UUID, platform domain.Platform) string {
	return fmt.Sprintf("sync:%s:%s", clientID, platform)
}

// requireLiveClient fails with ErrClientNotFound for unknown and
// tombstoned clients.
func (e *SyncEngine) requireLiveClient(ctx context.Context, clientID uuid.UUID) error {
	c, err := e.clients.Get(ctx, clientID)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}
	if c == nil || c.IsDeleted() {
		return fmt.Errorf("%w: %s", port.ErrClientNotFound, clientID)
	}
	return nil
}

func (e *SyncEngine) Sync(ctx context.Context, clientID uuid.UUID, platform domain.Platform, dr *domain.DateRange) (res *port.SyncResult, err error) {
	adapter, err := e.registry.Adapter(platform)
	if err != nil {
		return nil, err
	}
	if dr != nil {
		if err = dr.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", port.ErrInvalidArgument, err)
		}
	}

	if err = e.requireLiveClient(ctx, clientID); err != nil {
		return nil, err
	}

	release, err := e.locker.Acquire(ctx, lockKey(clientID, platform))
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			e.logger.Warn("release sync lock", slog.String("platform", platform.String()), slog.Any("error", rerr))
		}
	}()

	start := e.now()
	log := e.logger.With(slog.String("client_id", clientID.String()), slog.String("platform", platform.String()))
	defer func() {
		var updated, created int
		if res != nil {
			updated, created = res.CampaignsUpdated, res.NewCampaigns
		}
		metrics.ObserveSync(platform, start, updated, created, err)
	}()

	integ, err := e.integrations.Get(ctx, clientID, platform)
	if err != nil {
		return nil, fmt.Errorf("load integration: %w", err)
	}
	if integ == nil {
		integ = domain.NewIntegration(clientID, platform)
	}

	if e.refresher != nil && integ.NeedsTokenRefresh(start) {
		log.Info("refreshing access token before sync")
		if err = e.refresher.Refresh(ctx, integ); err != nil {
			if !errors.Is(err, port.ErrPlatformAPI) && !port.IsFatal(err) && !errors.Is(err, port.ErrCredentialsNotFound) {
				err = port.NewPlatformAPIError(platform, 401, err)
			}
			return nil, fmt.Errorf("sync %s: %w", platform, err)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	remote, err := adapter.FetchCampaigns(fetchCtx, clientID, dr)
	cancel()
	if err != nil {
		if errors.Is(err, port.ErrPlatformAPI) {
			e.markError(ctx, log, integ, err)
		}
		return nil, fmt.Errorf("sync %s: %w", platform, err)
	}

	updated, created, err := e.upsert(ctx, clientID, platform, remote, start)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", platform, err)
	}

	integ.UpdateLastSync(start)
	if terr := integ.MarkAsConnected(); terr != nil {
		log.Warn("integration state not updated", slog.Any("error", terr))
	}
	if err = e.integrations.Upsert(ctx, integ); err != nil {
		return nil, fmt.Errorf("persist integration: %w", err)
	}

	log.Info("sync finished",
		slog.Int("fetched", len(remote)),
		slog.Int("updated", updated),
		slog.Int("created", created),
		slog.Duration("took", time.Since(start)))
	return &port.SyncResult{
		Platform:         platform,
		CampaignsUpdated: updated,
		NewCampaigns:     created,
		SyncedAt:         start,
	}, nil
}

func (e *SyncEngine) markError(ctx context.Context, log *slog.Logger, integ *domain.Integration, cause error) {
	if err := integ.MarkAsError(cause.Error()); err != nil {
		log.Warn("integration state not updated", slog.Any("error", err))
		return
	}
	if err := e.integrations.Upsert(ctx, integ); err != nil {
		log.Error("persist integration error", slog.Any("error", err))
	}
}

// upsert writes remote campaigns in parallel. Entries sharing a natural key
// are applied in order by one task so no two tasks touch the same row.
func (e *SyncEngine) upsert(ctx context.Context, clientID uuid.UUID, platform domain.Platform, remote []domain.PlatformCampaign, now time.Time) (int, int, error) {
	groups := make(map[domain.CampaignKey][]domain.PlatformCampaign, len(remote))
	var order []domain.CampaignKey
	for _, pc := range remote {
		if pc.CampaignID == "" {
			e.logger.Warn("skipping campaign without id", slog.String("platform", platform.String()), slog.String("name", pc.Name))
			continue
		}
		key := domain.CampaignKey{ClientID: clientID, CampaignID: pc.CampaignID, Platform: platform}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], pc)
	}

	var updated, created atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for _, key := range order {
		batch := groups[key]
		g.Go(func() error {
			isNew, err := e.upsertOne(gctx, key, batch, now)
			if err != nil {
				return fmt.Errorf("upsert campaign %s: %w", key, err)
			}
			if isNew {
				created.Add(1)
			} else {
				updated.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return int(updated.Load()), int(created.Load()), nil
}

func (e *SyncEngine) upsertOne(ctx context.Context, key domain.CampaignKey, batch []domain.PlatformCampaign, now time.Time) (bool, error) {
	existing, err := e.campaigns.FindByKey(ctx, key)
	if err != nil {
		return false, err
	}
	isNew := existing == nil
	for _, pc := range batch {
		if existing == nil {
			existing = domain.NewCampaignFromPlatform(key.ClientID, key.Platform, pc, now)
			continue
		}
		existing.ApplyRemote(pc, now)
	}
	if isNew {
		return true, e.campaigns.Create(ctx, existing)
	}
	return false, e.campaigns.Update(ctx, existing)
}

// SyncAll syncs every platform the client has an active integration for,
// one after another. Recoverable failures are reported per platform; a
// fatal one stops the run.
func (e *SyncEngine) SyncAll(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]port.PlatformSyncOutcome, error) {
	if err := e.requireLiveClient(ctx, clientID); err != nil {
		return nil, err
	}
	integrations, err := e.integrations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	active := make(map[domain.Platform]bool, len(integrations))
	for _, i := range integrations {
		if i.Status != domain.IntegrationDisconnected {
			active[i.Platform] = true
		}
	}

	var outcomes []port.PlatformSyncOutcome
	for _, p := range e.registry.Platforms() {
		if !active[p] {
			continue
		}
		res, err := e.Sync(ctx, clientID, p, dr)
		if err != nil {
			if port.IsFatal(err) {
				return outcomes, err
			}
			outcomes = append(outcomes, port.PlatformSyncOutcome{Platform: p, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, port.PlatformSyncOutcome{Platform: p, Result: res})
	}
	if len(outcomes) == 0 {
		return nil, port.ErrNoSources
	}
	return outcomes, nil
}
