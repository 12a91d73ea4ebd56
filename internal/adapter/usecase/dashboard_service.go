package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/metrics"
)

// TopCampaignLimit caps DashboardPayload.TopCampaigns.
const TopCampaignLimit = 5

// DashboardService fans out to every requested, connected platform and
// merges whatever answers into one payload.
type DashboardService struct {
	clients      port.ClientRepository
	integrations port.IntegrationRepository
	registry     port.AdapterRegistry
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

var _ port.DashboardUseCase = (*DashboardService)(nil)

func NewDashboardService(clients port.ClientRepository, integrations port.IntegrationRepository, registry port.AdapterRegistry, timeout time.Duration, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DashboardService{
		clients:      clients,
		integrations: integrations,
		registry:     registry,
		timeout:      timeout,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// sourceResult is one platform's settled fetch.
type sourceResult struct {
	platform  domain.Platform
	campaigns []domain.PlatformCampaign
	daily     []domain.DailyMetric
	devices   []domain.DevicePerformance
	err       error
}

func (s *DashboardService) GetDashboardData(ctx context.Context, clientID uuid.UUID, period domain.Period, enabled []domain.Platform) (*domain.DashboardPayload, error) {
	if period == "" {
		period = domain.Period30d
	}
	if period.Days() == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil || client.IsDeleted() {
		return nil, fmt.Errorf("%w: %s", port.ErrClientNotFound, clientID)
	}

	attempted, err := s.attempted(ctx, clientID, enabled)
	if err != nil {
		return nil, err
	}
	if len(attempted) == 0 {
		return nil, port.ErrNoSources
	}

	dr := period.DateRange(s.now())
	results := make([]sourceResult, len(attempted))
	var wg sync.WaitGroup
	for i, p := range attempted {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.fetch(ctx, clientID, p, dr)
		}()
	}
	wg.Wait()

	payload := &domain.DashboardPayload{
		ChannelPerformance: []domain.ChannelPerformance{},
		TopCampaigns:       []domain.TopCampaign{},
		DailyMetrics:       []domain.DailyMetric{},
		DevicePerformance:  []domain.DevicePerformance{},
	}
	var ok []sourceResult
	for _, r := range results {
		if r.err == nil {
			ok = append(ok, r)
			continue
		}
		if port.IsFatal(r.err) {
			return nil, r.err
		}
		metrics.ObserveSourceFailure(r.platform, r.err)
		s.logger.Warn("dashboard source failed",
			slog.String("client_id", clientID.String()),
			slog.String("platform", r.platform.String()),
			slog.Any("error", r.err))
		payload.Failures = append(payload.Failures, domain.SourceFailure{Platform: r.platform, Reason: r.err.Error()})
	}
	merge(payload, ok)
	payload.Metrics.Period = period
	return payload, nil
}

// attempted returns enabled platforms whose integration is connected, in
// display order.
func (s *DashboardService) attempted(ctx context.Context, clientID uuid.UUID, enabled []domain.Platform) ([]domain.Platform, error) {
	if len(enabled) == 0 {
		enabled = domain.Platforms()
	}
	want := make(map[domain.Platform]bool, len(enabled))
	for _, p := range enabled {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
		}
		want[p] = true
	}
	integrations, err := s.integrations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	connected := make(map[domain.Platform]bool, len(integrations))
	for _, i := range integrations {
		if i.IsConnected() {
			connected[i.Platform] = true
		}
	}
	var out []domain.Platform
	for _, p := range s.registry.Platforms() {
		if want[p] && connected[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *DashboardService) fetch(ctx context.Context, clientID uuid.UUID, p domain.Platform, dr domain.DateRange) sourceResult {
	res := sourceResult{platform: p}
	adapter, err := s.registry.Adapter(p)
	if err != nil {
		res.err = err
		return res
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if res.campaigns, err = adapter.FetchCampaigns(ctx, clientID, &dr); err != nil {
		res.err = err
		return res
	}
	if res.daily, err = adapter.FetchDailyMetrics(ctx, clientID, dr); err != nil {
		res.err = err
		return res
	}
	if reporter, ok := adapter.(port.DeviceReporter); ok && p == domain.PlatformWebAnalytics {
		if res.devices, err = reporter.FetchDeviceBreakdown(ctx, clientID, dr); err != nil {
			res.err = err
			return res
		}
	}
	return res
}

func blend(spend, revenue float64, impressions, clicks int64) (ctr, cpc, roas float64) {
	m := domain.DeriveMetrics(domain.RawCounters{Impressions: impressions, Clicks: clicks, Cost: spend, Revenue: revenue})
	return m.CTR, m.CPC, m.ROAS
}

func merge(payload *domain.DashboardPayload, results []sourceResult) {
	t := &payload.Metrics
	days := make(map[string]*domain.DailyMetric)
	for _, r := range results {
		ch := domain.ChannelPerformance{Platform: r.platform, Channel: r.platform.DisplayName()}
		for _, c := range r.campaigns {
			m := c.Metrics
			ch.Spend += m.Cost
			ch.Impressions += m.Impressions
			ch.Clicks += m.Clicks
			ch.Conversions += m.Conversions
			ch.Revenue += m.Revenue
			payload.TopCampaigns = append(payload.TopCampaigns, domain.TopCampaign{
				CampaignID:  c.CampaignID,
				Name:        c.Name,
				Platform:    r.platform,
				Status:      c.Status,
				Spend:       m.Cost,
				Conversions: m.Conversions,
				Revenue:     m.Revenue,
				ROAS:        m.ROAS,
			})
		}
		ch.CTR, ch.CPC, ch.ROAS = blend(ch.Spend, ch.Revenue, ch.Impressions, ch.Clicks)
		payload.ChannelPerformance = append(payload.ChannelPerformance, ch)

		t.TotalSpend += ch.Spend
		t.TotalImpressions += ch.Impressions
		t.TotalClicks += ch.Clicks
		t.TotalConversions += ch.Conversions
		t.TotalRevenue += ch.Revenue

		for _, d := range r.daily {
			day, ok := days[d.Date]
			if !ok {
				day = &domain.DailyMetric{Date: d.Date}
				days[d.Date] = day
			}
			day.Spend += d.Spend
			day.Impressions += d.Impressions
			day.Clicks += d.Clicks
			day.Conversions += d.Conversions
			day.Revenue += d.Revenue
		}
		payload.DevicePerformance = append(payload.DevicePerformance, r.devices...)
	}
	t.AvgCTR, t.AvgCPC, t.ROAS = blend(t.TotalSpend, t.TotalRevenue, t.TotalImpressions, t.TotalClicks)

	sort.Slice(payload.ChannelPerformance, func(i, j int) bool {
		return payload.ChannelPerformance[i].Platform.Order() < payload.ChannelPerformance[j].Platform.Order()
	})
	top := payload.TopCampaigns
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].ROAS != top[j].ROAS {
			return top[i].ROAS > top[j].ROAS
		}
		if top[i].Spend != top[j].Spend {
			return top[i].Spend > top[j].Spend
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > TopCampaignLimit {
		payload.TopCampaigns = top[:TopCampaignLimit]
	}
	for _, d := range days {
		payload.DailyMetrics = append(payload.DailyMetrics, *d)
	}
	sort.Slice(payload.DailyMetrics, func(i, j int) bool { return payload.DailyMetrics[i].Date < payload.DailyMetrics[j].Date })
}
