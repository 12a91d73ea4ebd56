package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/core/port/mocks"
)

// deviceAdapter adds a device breakdown to a mocked adapter.
type deviceAdapter struct {
	*mocks.MockPlatformAdapter
	devices []domain.DevicePerformance
	calls   atomic.Int32
}

func (d *deviceAdapter) FetchDeviceBreakdown(context.Context, uuid.UUID, domain.DateRange) ([]domain.DevicePerformance, error) {
	d.calls.Add(1)
	return d.devices, nil
}

type dashboardFixture struct {
	client       domain.Client
	clients      *memClients
	integrations *memIntegrations
}

func newDashboardFixture(t *testing.T, connectedPlatforms ...domain.Platform) *dashboardFixture {
	t.Helper()
	c := domain.Client{ID: uuid.New(), Slug: "acme", Name: "Acme"}
	f := &dashboardFixture{client: c, clients: newMemClients(c), integrations: newMemIntegrations()}
	for _, p := range connectedPlatforms {
		require.NoError(t, f.integrations.Upsert(context.Background(), ptr(connected(c.ID, p))))
	}
	return f
}

func (f *dashboardFixture) service(t *testing.T, adapters ...port.PlatformAdapter) *DashboardService {
	t.Helper()
	return NewDashboardService(f.clients, f.integrations, registryOf(t, adapters...), time.Second, nil)
}

func answering(t *testing.T, p domain.Platform, campaigns []domain.PlatformCampaign, daily []domain.DailyMetric) *mocks.MockPlatformAdapter {
	t.Helper()
	a := adapterFor(t, p)
	a.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).Return(campaigns, nil)
	a.EXPECT().FetchDailyMetrics(mock.Anything, mock.Anything, mock.Anything).Return(daily, nil)
	return a
}

func failing(t *testing.T, p domain.Platform, err error) *mocks.MockPlatformAdapter {
	t.Helper()
	a := adapterFor(t, p)
	a.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).Return(nil, err)
	return a
}

func TestDashboardPartialFailure(t *testing.T) {
	f := newDashboardFixture(t, domain.Platforms()...)
	search := answering(t, domain.PlatformSearchAds, []domain.PlatformCampaign{
		remoteCampaign("a", 1000, 50, 100, 4, 400),
		remoteCampaign("b", 500, 25, 50, 1, 50),
	}, nil)
	social := failing(t, domain.PlatformSocialAds, port.NewPlatformAPIError(domain.PlatformSocialAds, 500, errors.New("upstream")))
	analytics := &deviceAdapter{
		MockPlatformAdapter: answering(t, domain.PlatformWebAnalytics, []domain.PlatformCampaign{
			{CampaignID: "spring", Name: "spring", Metrics: domain.DeriveMetrics(domain.RawCounters{Conversions: 3, Revenue: 90})},
		}, nil),
		devices: []domain.DevicePerformance{{Device: "mobile", Sessions: 120}, {Device: "desktop", Sessions: 80}},
	}

	payload, err := f.service(t, analytics, social, search).GetDashboardData(context.Background(), f.client.ID, domain.Period7d, nil)

	require.NoError(t, err)
	require.Len(t, payload.Failures, 1)
	assert.Equal(t, domain.PlatformSocialAds, payload.Failures[0].Platform)
	assert.Contains(t, payload.Failures[0].Reason, "upstream")

	require.Len(t, payload.ChannelPerformance, 2)
	assert.Equal(t, domain.PlatformSearchAds, payload.ChannelPerformance[0].Platform)
	assert.Equal(t, "Search Ads", payload.ChannelPerformance[0].Channel)
	assert.Equal(t, domain.PlatformWebAnalytics, payload.ChannelPerformance[1].Platform)

	m := payload.Metrics
	assert.Equal(t, domain.Period7d, m.Period)
	assert.InDelta(t, 150.0, m.TotalSpend, 1e-9)
	assert.InDelta(t, 540.0, m.TotalRevenue, 1e-9)
	assert.InDelta(t, 8.0, m.TotalConversions, 1e-9)
	assert.Equal(t, int64(1500), m.TotalImpressions)
	assert.Equal(t, int64(75), m.TotalClicks)
	assert.InDelta(t, 5.0, m.AvgCTR, 1e-9)
	assert.InDelta(t, 2.0, m.AvgCPC, 1e-9)
	assert.InDelta(t, 3.6, m.ROAS, 1e-9)

	assert.Len(t, payload.DevicePerformance, 2)
	assert.Equal(t, int32(1), analytics.calls.Load())
}

func TestDashboardChannelRatiosAreBlended(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds)
	search := answering(t, domain.PlatformSearchAds, []domain.PlatformCampaign{
		remoteCampaign("a", 100, 10, 10, 0, 100),
		remoteCampaign("b", 900, 10, 90, 0, 0),
	}, nil)

	payload, err := f.service(t, search).GetDashboardData(context.Background(), f.client.ID, "", nil)

	require.NoError(t, err)
	ch := payload.ChannelPerformance[0]
	assert.InDelta(t, 2.0, ch.CTR, 1e-9)
	assert.InDelta(t, 5.0, ch.CPC, 1e-9)
	assert.InDelta(t, 1.0, ch.ROAS, 1e-9)
	assert.Equal(t, domain.Period30d, payload.Metrics.Period)
	assert.Empty(t, payload.Failures)
	assert.NotNil(t, payload.DevicePerformance)
}

func TestDashboardSourceTimeout(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds, domain.PlatformSocialAds)
	search := answering(t, domain.PlatformSearchAds, []domain.PlatformCampaign{
		remoteCampaign("a", 1000, 50, 100, 4, 400),
	}, nil)
	social := adapterFor(t, domain.PlatformSocialAds)
	social.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, _ *domain.DateRange) ([]domain.PlatformCampaign, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	svc := NewDashboardService(f.clients, f.integrations, registryOf(t, search, social), 50*time.Millisecond, nil)

	start := time.Now()
	payload, err := svc.GetDashboardData(context.Background(), f.client.ID, domain.Period30d, nil)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	require.Len(t, payload.Failures, 1)
	assert.Equal(t, domain.PlatformSocialAds, payload.Failures[0].Platform)
	assert.Contains(t, payload.Failures[0].Reason, context.DeadlineExceeded.Error())
	require.Len(t, payload.ChannelPerformance, 1)
	assert.Equal(t, domain.PlatformSearchAds, payload.ChannelPerformance[0].Platform)
	assert.InDelta(t, 100.0, payload.Metrics.TotalSpend, 1e-9)
}

func TestDashboardFatalErrorAborts(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds, domain.PlatformSocialAds)
	search := adapterFor(t, domain.PlatformSearchAds)
	search.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	search.EXPECT().FetchDailyMetrics(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	social := failing(t, domain.PlatformSocialAds, fmt.Errorf("read credentials: %w", port.ErrDecryptionFailed))

	_, err := f.service(t, search, social).GetDashboardData(context.Background(), f.client.ID, domain.Period30d, nil)

	assert.ErrorIs(t, err, port.ErrDecryptionFailed)
}

func TestDashboardNoSources(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds)
	svc := f.service(t, adapterFor(t, domain.PlatformSearchAds), adapterFor(t, domain.PlatformSocialAds))

	_, err := svc.GetDashboardData(context.Background(), f.client.ID, domain.Period30d, []domain.Platform{domain.PlatformSocialAds})

	assert.ErrorIs(t, err, port.ErrNoSources)
}

func TestDashboardAllSourcesFail(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds)
	search := failing(t, domain.PlatformSearchAds, port.NewPlatformAPIError(domain.PlatformSearchAds, 401, errors.New("expired")))

	payload, err := f.service(t, search).GetDashboardData(context.Background(), f.client.ID, domain.Period30d, nil)

	require.NoError(t, err)
	assert.Len(t, payload.Failures, 1)
	assert.Empty(t, payload.ChannelPerformance)
	assert.Zero(t, payload.Metrics.TotalSpend)
	assert.Zero(t, payload.Metrics.ROAS)
}

func TestDashboardRequestValidation(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds)
	deleted := domain.Client{ID: uuid.New(), Slug: "gone", DeletedAt: ptr(time.Now())}
	f.clients = newMemClients(f.client, deleted)
	svc := f.service(t, adapterFor(t, domain.PlatformSearchAds))
	ctx := context.Background()

	_, err := svc.GetDashboardData(ctx, f.client.ID, "14d", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = svc.GetDashboardData(ctx, uuid.New(), domain.Period30d, nil)
	assert.ErrorIs(t, err, port.ErrClientNotFound)

	_, err = svc.GetDashboardData(ctx, deleted.ID, domain.Period30d, nil)
	assert.ErrorIs(t, err, port.ErrClientNotFound)

	_, err = svc.GetDashboardData(ctx, f.client.ID, domain.Period30d, []domain.Platform{"bing_ads"})
	assert.ErrorIs(t, err, port.ErrUnsupportedPlatform)
}

func TestDashboardTopCampaigns(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds, domain.PlatformSocialAds)
	search := answering(t, domain.PlatformSearchAds, []domain.PlatformCampaign{
		remoteCampaign("s1", 1, 1, 10, 0, 10), // 1.0
		remoteCampaign("s2", 1, 1, 10, 0, 50), // 5.0
		remoteCampaign("s3", 1, 1, 20, 0, 40), // 2.0, more spend
		remoteCampaign("s4", 1, 1, 0, 0, 0),   // 0
	}, nil)
	social := answering(t, domain.PlatformSocialAds, []domain.PlatformCampaign{
		remoteCampaign("o1", 1, 1, 10, 0, 20), // 2.0
		remoteCampaign("o2", 1, 1, 10, 0, 30), // 3.0
		remoteCampaign("o3", 1, 1, 5, 0, 10),  // 2.0, less spend
	}, nil)

	payload, err := f.service(t, search, social).GetDashboardData(context.Background(), f.client.ID, domain.Period30d, nil)

	require.NoError(t, err)
	require.Len(t, payload.TopCampaigns, TopCampaignLimit)
	var ids []string
	for _, c := range payload.TopCampaigns {
		ids = append(ids, c.CampaignID)
	}
	assert.Equal(t, []string{"s2", "o2", "s3", "o1", "o3"}, ids)
	assert.Equal(t, domain.PlatformSocialAds, payload.TopCampaigns[1].Platform)
}

func TestDashboardMergesDailyMetrics(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds, domain.PlatformWebAnalytics)
	search := &deviceAdapter{MockPlatformAdapter: answering(t, domain.PlatformSearchAds, nil, []domain.DailyMetric{
		{Date: "2024-03-01", Spend: 5, Clicks: 2},
		{Date: "2024-03-02", Spend: 10, Clicks: 3},
	})}
	analytics := answering(t, domain.PlatformWebAnalytics, nil, []domain.DailyMetric{
		{Date: "2024-03-03", Conversions: 1},
		{Date: "2024-03-01", Conversions: 2, Revenue: 40},
	})

	payload, err := f.service(t, search, analytics).GetDashboardData(context.Background(), f.client.ID, domain.Period7d, nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.DailyMetric{
		{Date: "2024-03-01", Spend: 5, Clicks: 2, Conversions: 2, Revenue: 40},
		{Date: "2024-03-02", Spend: 10, Clicks: 3},
		{Date: "2024-03-03", Conversions: 1},
	}, payload.DailyMetrics)
	assert.Zero(t, search.calls.Load(), "device breakdown only comes from analytics")
	assert.Empty(t, payload.DevicePerformance)
}

func TestDashboardPassesPeriodRange(t *testing.T) {
	f := newDashboardFixture(t, domain.PlatformSearchAds)
	svc := NewDashboardService(f.clients, f.integrations, nil, time.Second, nil)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	want := domain.DateRange{Start: now.AddDate(0, 0, -90), End: now}
	search := adapterFor(t, domain.PlatformSearchAds)
	search.EXPECT().FetchCampaigns(mock.Anything, f.client.ID, &want).Return(nil, nil)
	search.EXPECT().FetchDailyMetrics(mock.Anything, f.client.ID, want).Return(nil, nil)
	svc.registry = registryOf(t, search)

	_, err := svc.GetDashboardData(context.Background(), f.client.ID, domain.Period90d, nil)

	require.NoError(t, err)
}
