package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adlens/internal/adapter/lock"
	"adlens/internal/adapter/platform"
	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/core/port/mocks"
	"adlens/internal/metrics"
)

func adapterFor(t *testing.T, p domain.Platform) *mocks.MockPlatformAdapter {
	t.Helper()
	a := mocks.NewMockPlatformAdapter(t)
	a.EXPECT().Platform().Return(p)
	return a
}

func registryOf(t *testing.T, adapters ...port.PlatformAdapter) *platform.Registry {
	t.Helper()
	r, err := platform.NewRegistry(adapters...)
	require.NoError(t, err)
	return r
}

func remoteCampaign(id string, impressions, clicks int64, cost, conversions, revenue float64) domain.PlatformCampaign {
	return domain.PlatformCampaign{
		CampaignID: id,
		Name:       "Campaign " + id,
		Status:     domain.CampaignStatusActive,
		Budget:     decimal.NewFromInt(100),
		Metrics: domain.DeriveMetrics(domain.RawCounters{
			Impressions: impressions,
			Clicks:      clicks,
			Cost:        cost,
			Conversions: conversions,
			Revenue:     revenue,
		}),
	}
}

// liveClients treats ids it has never seen as live clients so tests can
// sync arbitrary ids. Stored rows, tombstones included, take precedence.
type liveClients struct {
	*memClients
}

func newLiveClients() liveClients { return liveClients{newMemClients()} }

func (l liveClients) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	l.mu.Lock()
	_, known := l.rows[id]
	l.mu.Unlock()
	if known {
		return l.memClients.Get(ctx, id)
	}
	return &domain.Client{ID: id, Name: "client " + id.String()}, nil
}

type syncFixture struct {
	engine       *SyncEngine
	clients      liveClients
	campaigns    *memCampaigns
	integrations *memIntegrations
	locker       *lock.LocalLocker
}

func newSyncFixture(t *testing.T, refresher port.TokenRefresher, adapters ...port.PlatformAdapter) *syncFixture {
	t.Helper()
	f := &syncFixture{
		clients:      newLiveClients(),
		campaigns:    newMemCampaigns(),
		integrations: newMemIntegrations(),
		locker:       lock.NewLocalLocker(),
	}
	f.engine = NewSyncEngine(registryOf(t, adapters...), f.clients, f.campaigns, f.integrations, f.locker, refresher, SyncConfig{Concurrency: 2}, nil)
	return f
}

func connected(clientID uuid.UUID, p domain.Platform) domain.Integration {
	i := domain.NewIntegration(clientID, p)
	_ = i.MarkAsConnected()
	return *i
}

func TestSyncNewClient(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, (*domain.DateRange)(nil)).Return([]domain.PlatformCampaign{
		remoteCampaign("c1", 1000, 50, 200, 5, 800),
		remoteCampaign("c2", 500, 10, 40, 0, 0),
	}, nil)
	f := newSyncFixture(t, nil, a)

	res, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformSearchAds, res.Platform)
	assert.Equal(t, 2, res.NewCampaigns)
	assert.Equal(t, 0, res.CampaignsUpdated)
	assert.False(t, res.SyncedAt.IsZero())

	c1, ok := f.campaigns.get(clientID, domain.PlatformSearchAds, "c1")
	require.True(t, ok)
	assert.InDelta(t, 5.0, c1.Metrics.CTR, 1e-9)
	assert.InDelta(t, 4.0, c1.Metrics.CPC, 1e-9)
	assert.InDelta(t, 4.0, c1.Metrics.ROAS, 1e-9)
	assert.InDelta(t, 10.0, c1.Metrics.ConversionRate, 1e-9)
	assert.InDelta(t, 40.0, c1.Metrics.CPA, 1e-9)
	assert.Equal(t, res.SyncedAt, c1.LastSync)

	c2, ok := f.campaigns.get(clientID, domain.PlatformSearchAds, "c2")
	require.True(t, ok)
	assert.InDelta(t, 2.0, c2.Metrics.CTR, 1e-9)
	assert.InDelta(t, 4.0, c2.Metrics.CPC, 1e-9)
	assert.Zero(t, c2.Metrics.ROAS)
	assert.Zero(t, c2.Metrics.ConversionRate)
	assert.Zero(t, c2.Metrics.CPA)

	integ, err := f.integrations.Get(context.Background(), clientID, domain.PlatformSearchAds)
	require.NoError(t, err)
	require.NotNil(t, integ)
	assert.Equal(t, domain.IntegrationConnected, integ.Status)
	require.NotNil(t, integ.LastSync)
	assert.Equal(t, res.SyncedAt, *integ.LastSync)
}

func TestSyncIsIdempotent(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSocialAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).Return([]domain.PlatformCampaign{
		remoteCampaign("a", 1000, 50, 200, 5, 800),
		remoteCampaign("b", 500, 10, 40, 0, 0),
	}, nil).Times(2)
	f := newSyncFixture(t, nil, a)
	ctx := context.Background()

	_, err := f.engine.Sync(ctx, clientID, domain.PlatformSocialAds, nil)
	require.NoError(t, err)
	first, _ := f.campaigns.get(clientID, domain.PlatformSocialAds, "a")

	res, err := f.engine.Sync(ctx, clientID, domain.PlatformSocialAds, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, res.NewCampaigns)
	assert.Equal(t, 2, res.CampaignsUpdated)
	assert.Equal(t, 2, f.campaigns.len())
	second, _ := f.campaigns.get(clientID, domain.PlatformSocialAds, "a")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestSyncKeysByClientAndPlatform(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	search := adapterFor(t, domain.PlatformSearchAds)
	search.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.PlatformCampaign{remoteCampaign("42", 100, 1, 1, 0, 0)}, nil).Times(2)
	social := adapterFor(t, domain.PlatformSocialAds)
	social.EXPECT().FetchCampaigns(mock.Anything, alice, mock.Anything).
		Return([]domain.PlatformCampaign{remoteCampaign("42", 300, 3, 3, 0, 0)}, nil)
	f := newSyncFixture(t, nil, search, social)
	ctx := context.Background()

	for _, step := range []struct {
		client uuid.UUID
		p      domain.Platform
	}{
		{alice, domain.PlatformSearchAds},
		{alice, domain.PlatformSocialAds},
		{bob, domain.PlatformSearchAds},
	} {
		res, err := f.engine.Sync(ctx, step.client, step.p, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.NewCampaigns, "%s on %s", step.client, step.p)
	}

	assert.Equal(t, 3, f.campaigns.len())
	s, _ := f.campaigns.get(alice, domain.PlatformSearchAds, "42")
	o, _ := f.campaigns.get(alice, domain.PlatformSocialAds, "42")
	assert.NotEqual(t, s.ID, o.ID)
	assert.Equal(t, int64(100), s.Metrics.Impressions)
	assert.Equal(t, int64(300), o.Metrics.Impressions)
}

func TestSyncMergesDuplicateRemoteEntries(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).Return([]domain.PlatformCampaign{
		remoteCampaign("dup", 10, 1, 1, 0, 0),
		remoteCampaign("", 99, 9, 9, 0, 0),
		remoteCampaign("dup", 20, 2, 2, 0, 0),
	}, nil)
	f := newSyncFixture(t, nil, a)

	res, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.NewCampaigns)
	assert.Equal(t, 0, res.CampaignsUpdated)
	assert.Equal(t, 1, f.campaigns.len())
	c, _ := f.campaigns.get(clientID, domain.PlatformSearchAds, "dup")
	assert.Equal(t, int64(20), c.Metrics.Impressions)
}

func TestSyncPlatformErrorMarksIntegration(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSocialAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return(nil, port.NewPlatformAPIError(domain.PlatformSocialAds, 500, errors.New("internal")))
	f := newSyncFixture(t, nil, a)
	require.NoError(t, f.integrations.Upsert(context.Background(), ptr(connected(clientID, domain.PlatformSocialAds))))
	before := testutil.ToFloat64(metrics.SyncRunsTotal.WithLabelValues("social_ads", "error"))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSocialAds, nil)

	require.ErrorIs(t, err, port.ErrPlatformAPI)
	var apiErr *port.PlatformAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
	integ, _ := f.integrations.Get(context.Background(), clientID, domain.PlatformSocialAds)
	assert.Equal(t, domain.IntegrationError, integ.Status)
	assert.NotEmpty(t, integ.Error)
	assert.Zero(t, f.campaigns.len())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SyncRunsTotal.WithLabelValues("social_ads", "error")))
}

func TestSyncRecoversFromError(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSocialAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return([]domain.PlatformCampaign{remoteCampaign("x", 1, 1, 1, 1, 1)}, nil)
	f := newSyncFixture(t, nil, a)
	errored := domain.NewIntegration(clientID, domain.PlatformSocialAds)
	require.NoError(t, errored.MarkAsConnected())
	require.NoError(t, errored.MarkAsError("boom"))
	require.NoError(t, f.integrations.Upsert(context.Background(), errored))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSocialAds, nil)

	require.NoError(t, err)
	integ, _ := f.integrations.Get(context.Background(), clientID, domain.PlatformSocialAds)
	assert.Equal(t, domain.IntegrationConnected, integ.Status)
	assert.Empty(t, integ.Error)
}

func TestSyncWithoutCredentials(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformWebAnalytics)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return(nil, fmt.Errorf("%w: web_analytics for client %s", port.ErrCredentialsNotFound, clientID))
	f := newSyncFixture(t, nil, a)
	require.NoError(t, f.integrations.Upsert(context.Background(), ptr(connected(clientID, domain.PlatformWebAnalytics))))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformWebAnalytics, nil)

	require.ErrorIs(t, err, port.ErrCredentialsNotFound)
	assert.Equal(t, domain.IntegrationConnected, f.integrations.status(clientID, domain.PlatformWebAnalytics))
}

func TestSyncSkipsDeletedClient(t *testing.T) {
	ctx := context.Background()
	a := adapterFor(t, domain.PlatformSearchAds)
	f := newSyncFixture(t, nil, a)
	c := domain.Client{ID: uuid.New(), Name: "Acme", Slug: "acme"}
	require.NoError(t, f.clients.Create(ctx, &c))
	require.NoError(t, f.integrations.Upsert(ctx, ptr(connected(c.ID, domain.PlatformSearchAds))))
	deleted, err := f.clients.SoftDelete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = f.engine.Sync(ctx, c.ID, domain.PlatformSearchAds, nil)
	require.ErrorIs(t, err, port.ErrClientNotFound)

	outcomes, err := f.engine.SyncAll(ctx, c.ID, nil)
	require.ErrorIs(t, err, port.ErrClientNotFound)
	assert.Empty(t, outcomes)

	stored, err := f.campaigns.ListByClient(ctx, c.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
	integ, err := f.integrations.Get(ctx, c.ID, domain.PlatformSearchAds)
	require.NoError(t, err)
	assert.Nil(t, integ.LastSync)

	release, err := f.locker.Acquire(ctx, lockKey(c.ID, domain.PlatformSearchAds))
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}

func TestSyncUnknownClient(t *testing.T) {
	locker := mocks.NewMockLocker(t)
	engine := NewSyncEngine(registryOf(t, adapterFor(t, domain.PlatformSearchAds)), newMemClients(), newMemCampaigns(), newMemIntegrations(), locker, nil, SyncConfig{}, nil)

	_, err := engine.Sync(context.Background(), uuid.New(), domain.PlatformSearchAds, nil)

	require.ErrorIs(t, err, port.ErrClientNotFound)
}

func TestSyncUnsupportedPlatform(t *testing.T) {
	locker := mocks.NewMockLocker(t)
	engine := NewSyncEngine(registryOf(t, adapterFor(t, domain.PlatformSearchAds)), newLiveClients(), newMemCampaigns(), newMemIntegrations(), locker, nil, SyncConfig{}, nil)
	for _, p := range []domain.Platform{"bing_ads", domain.PlatformSocialAds} {
		_, err := engine.Sync(context.Background(), uuid.New(), p, nil)
		require.ErrorIs(t, err, port.ErrUnsupportedPlatform)
		assert.True(t, port.IsFatal(err))
	}
}

func TestSyncRejectsInvertedRange(t *testing.T) {
	f := newSyncFixture(t, nil, adapterFor(t, domain.PlatformSearchAds))
	now := time.Now()
	dr := &domain.DateRange{Start: now, End: now.AddDate(0, 0, -7)}

	_, err := f.engine.Sync(context.Background(), uuid.New(), domain.PlatformSearchAds, dr)

	assert.ErrorIs(t, err, port.ErrInvalidArgument)
}

func TestSyncRespectsLock(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).Return(nil, nil).Once()
	f := newSyncFixture(t, nil, a)
	ctx := context.Background()

	release, err := f.locker.Acquire(ctx, lockKey(clientID, domain.PlatformSearchAds))
	require.NoError(t, err)

	_, err = f.engine.Sync(ctx, clientID, domain.PlatformSearchAds, nil)
	require.ErrorIs(t, err, port.ErrSyncInProgress)

	require.NoError(t, release(ctx))
	res, err := f.engine.Sync(ctx, clientID, domain.PlatformSearchAds, nil)
	require.NoError(t, err)
	assert.Zero(t, res.NewCampaigns)
}

func TestSyncReleasesLockOnFailure(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return(nil, port.NewPlatformAPIError(domain.PlatformSearchAds, 429, errors.New("slow down")))
	var released bool
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, lockKey(clientID, domain.PlatformSearchAds)).
		Return(func(context.Context) error { released = true; return nil }, nil)
	engine := NewSyncEngine(registryOf(t, a), newLiveClients(), newMemCampaigns(), newMemIntegrations(), locker, nil, SyncConfig{}, nil)

	_, err := engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.ErrorIs(t, err, port.ErrPlatformAPI)
	assert.True(t, released)
}

func TestSyncContention(t *testing.T) {
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, mock.Anything).Return(nil, port.ErrSyncInProgress)
	engine := NewSyncEngine(registryOf(t, adapterFor(t, domain.PlatformSocialAds)), newLiveClients(), newMemCampaigns(), newMemIntegrations(), locker, nil, SyncConfig{}, nil)

	_, err := engine.Sync(context.Background(), uuid.New(), domain.PlatformSocialAds, nil)

	assert.ErrorIs(t, err, port.ErrSyncInProgress)
}

func expiring(clientID uuid.UUID, p domain.Platform, in time.Duration) *domain.Integration {
	i := domain.NewIntegration(clientID, p)
	_ = i.UpdateTokens("refresh", time.Now().Add(in))
	return i
}

func TestSyncRefreshesExpiringToken(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).Return(nil, nil)
	refresher := mocks.NewMockTokenRefresher(t)
	refresher.EXPECT().Refresh(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, integ *domain.Integration) error {
		return integ.UpdateTokens("refresh", time.Now().Add(time.Hour))
	})
	f := newSyncFixture(t, refresher, a)
	require.NoError(t, f.integrations.Upsert(context.Background(), expiring(clientID, domain.PlatformSearchAds, time.Minute)))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.NoError(t, err)
	integ, _ := f.integrations.Get(context.Background(), clientID, domain.PlatformSearchAds)
	require.NotNil(t, integ.TokenExpiresAt)
	assert.True(t, integ.TokenExpiresAt.After(time.Now().Add(30*time.Minute)))
}

func TestSyncSkipsRefreshForFreshToken(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	a.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).Return(nil, nil)
	refresher := mocks.NewMockTokenRefresher(t)
	f := newSyncFixture(t, refresher, a)
	require.NoError(t, f.integrations.Upsert(context.Background(), expiring(clientID, domain.PlatformSearchAds, time.Hour)))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.NoError(t, err)
}

func TestSyncRefreshFailureStopsSync(t *testing.T) {
	clientID := uuid.New()
	a := adapterFor(t, domain.PlatformSearchAds)
	refresher := mocks.NewMockTokenRefresher(t)
	refresher.EXPECT().Refresh(mock.Anything, mock.Anything).Return(errors.New("invalid_grant"))
	f := newSyncFixture(t, refresher, a)
	require.NoError(t, f.integrations.Upsert(context.Background(), expiring(clientID, domain.PlatformSearchAds, -time.Minute)))

	_, err := f.engine.Sync(context.Background(), clientID, domain.PlatformSearchAds, nil)

	require.ErrorIs(t, err, port.ErrPlatformAPI)
	var apiErr *port.PlatformAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, port.APIErrorAuth, apiErr.Kind)
}

func TestSyncAll(t *testing.T) {
	clientID := uuid.New()
	search := adapterFor(t, domain.PlatformSearchAds)
	search.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return([]domain.PlatformCampaign{remoteCampaign("s", 1, 1, 1, 1, 1)}, nil)
	social := adapterFor(t, domain.PlatformSocialAds)
	social.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return(nil, port.NewPlatformAPIError(domain.PlatformSocialAds, 429, errors.New("throttled")))
	analytics := adapterFor(t, domain.PlatformWebAnalytics)
	f := newSyncFixture(t, nil, analytics, social, search)

	errored := domain.NewIntegration(clientID, domain.PlatformSocialAds)
	require.NoError(t, errored.MarkAsConnected())
	require.NoError(t, errored.MarkAsError("earlier failure"))
	ctx := context.Background()
	require.NoError(t, f.integrations.Upsert(ctx, ptr(connected(clientID, domain.PlatformSearchAds))))
	require.NoError(t, f.integrations.Upsert(ctx, errored))
	require.NoError(t, f.integrations.Upsert(ctx, domain.NewIntegration(clientID, domain.PlatformWebAnalytics)))

	outcomes, err := f.engine.SyncAll(ctx, clientID, nil)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, domain.PlatformSearchAds, outcomes[0].Platform)
	require.NotNil(t, outcomes[0].Result)
	assert.Equal(t, 1, outcomes[0].Result.NewCampaigns)
	assert.Empty(t, outcomes[0].Error)
	assert.Equal(t, domain.PlatformSocialAds, outcomes[1].Platform)
	assert.Nil(t, outcomes[1].Result)
	assert.Contains(t, outcomes[1].Error, "rate_limit")
}

func TestSyncAllStopsOnFatal(t *testing.T) {
	clientID := uuid.New()
	search := adapterFor(t, domain.PlatformSearchAds)
	search.EXPECT().FetchCampaigns(mock.Anything, clientID, mock.Anything).
		Return(nil, fmt.Errorf("read credentials: %w", port.ErrDecryptionFailed))
	social := adapterFor(t, domain.PlatformSocialAds)
	f := newSyncFixture(t, nil, search, social)
	ctx := context.Background()
	require.NoError(t, f.integrations.Upsert(ctx, ptr(connected(clientID, domain.PlatformSearchAds))))
	require.NoError(t, f.integrations.Upsert(ctx, ptr(connected(clientID, domain.PlatformSocialAds))))

	_, err := f.engine.SyncAll(ctx, clientID, nil)

	require.ErrorIs(t, err, port.ErrDecryptionFailed)
	assert.Equal(t, domain.IntegrationConnected, f.integrations.status(clientID, domain.PlatformSearchAds))
}

func TestSyncAllWithoutIntegrations(t *testing.T) {
	f := newSyncFixture(t, nil, adapterFor(t, domain.PlatformSearchAds))

	_, err := f.engine.SyncAll(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, port.ErrNoSources)
}

func ptr[T any](v T) *T { return &v }
