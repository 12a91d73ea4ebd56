package platform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// WebAnalyticsAdapter reads campaign attribution, daily totals and device
// breakdowns from the web-analytics reporting API. It is read only.
type WebAnalyticsAdapter struct {
	creds  port.CredentialProvider
	client *client
}

var (
	_ port.PlatformAdapter = (*WebAnalyticsAdapter)(nil)
	_ port.DeviceReporter  = (*WebAnalyticsAdapter)(nil)
)

func NewWebAnalyticsAdapter(creds port.CredentialProvider, cfg Config, logger *slog.Logger) *WebAnalyticsAdapter {
	return &WebAnalyticsAdapter{creds: creds, client: newClient(domain.PlatformWebAnalytics, cfg, logger)}
}

func (a *WebAnalyticsAdapter) Platform() domain.Platform { return domain.PlatformWebAnalytics }

type reportValue struct {
	Value string `json:"value"`
}

type reportRow struct {
	DimensionValues []reportValue `json:"dimensionValues"`
	MetricValues    []reportValue `json:"metricValues"`
}

func (r reportRow) dim(i int) string {
	if i < len(r.DimensionValues) {
		return r.DimensionValues[i].Value
	}
	return ""
}

func (r reportRow) float(i int) float64 {
	if i >= len(r.MetricValues) {
		return 0
	}
	v, _ := strconv.ParseFloat(r.MetricValues[i].Value, 64)
	return v
}

func (r reportRow) int(i int) int64 {
	return int64(r.float(i))
}

type reportResponse struct {
	Rows     []reportRow `json:"rows"`
	RowCount int         `json:"rowCount"`
}

type named struct {
	Name string `json:"name"`
}

type reportRequest struct {
	DateRanges      []map[string]string `json:"dateRanges"`
	Dimensions      []named             `json:"dimensions"`
	Metrics         []named             `json:"metrics"`
	DimensionFilter any                 `json:"dimensionFilter,omitempty"`
	Limit           int                 `json:"limit,omitempty"`
	Offset          int                 `json:"offset,omitempty"`
}

func names(ns ...string) []named {
	out := make([]named, len(ns))
	for i, n := range ns {
		out[i] = named{Name: n}
	}
	return out
}

const reportPageSize = 10000

type analyticsSession struct {
	token      string
	propertyID string
}

func (a *WebAnalyticsAdapter) session(ctx context.Context, clientID uuid.UUID) (*analyticsSession, error) {
	creds, err := a.creds.GetWebAnalyticsCredentials(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, credentialsMissing(domain.PlatformWebAnalytics, clientID)
	}
	token, err := a.client.refreshToken(ctx, clientID, creds.RefreshToken, creds.AccessToken, creds.TokenExpiry)
	if err != nil {
		return nil, err
	}
	return &analyticsSession{token: token, propertyID: creds.PropertyID}, nil
}

// runReport pages through a report until every row is read.
func (a *WebAnalyticsAdapter) runReport(ctx context.Context, s *analyticsSession, req reportRequest) ([]reportRow, error) {
	req.Limit = reportPageSize
	var rows []reportRow
	for {
		var resp reportResponse
		found, err := a.client.do(ctx, request{
			method: http.MethodPost,
			url:    a.client.url(fmt.Sprintf("properties/%s:runReport", s.propertyID)),
			token:  s.token,
			json:   req,
		}, &resp)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, a.client.apiError(http.StatusNotFound, fmt.Errorf("property %s not found", s.propertyID))
		}
		rows = append(rows, resp.Rows...)
		if len(resp.Rows) == 0 || len(rows) >= resp.RowCount {
			return rows, nil
		}
		req.Offset = len(rows)
	}
}

func dateRanges(dr domain.DateRange) []map[string]string {
	return []map[string]string{{"startDate": dr.StartDay(), "endDate": dr.EndDay()}}
}

// Campaign rows without attribution are skipped.
var unattributed = map[string]bool{"": true, "(not set)": true, "(direct)": true, "(organic)": true, "(referral)": true}

func (a *WebAnalyticsAdapter) campaigns(ctx context.Context, s *analyticsSession, dr domain.DateRange, filter any) ([]domain.PlatformCampaign, error) {
	rows, err := a.runReport(ctx, s, reportRequest{
		DateRanges:      dateRanges(dr),
		Dimensions:      names("sessionCampaignId", "sessionCampaignName"),
		Metrics:         names("conversions", "totalRevenue"),
		DimensionFilter: filter,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlatformCampaign, 0, len(rows))
	for _, r := range rows {
		id, name := r.dim(0), r.dim(1)
		if unattributed[id] {
			if unattributed[name] {
				continue
			}
			id = name
		}
		out = append(out, domain.PlatformCampaign{
			CampaignID: id,
			Name:       name,
			Status:     domain.CampaignStatusActive,
			Metrics: domain.DeriveMetrics(domain.RawCounters{
				Conversions: r.float(0),
				Revenue:     r.float(1),
			}),
		})
	}
	return out, nil
}

func (a *WebAnalyticsAdapter) FetchCampaigns(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]domain.PlatformCampaign, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return a.campaigns(ctx, s, domain.ResolveDateRange(dr, time.Now()), nil)
}

func (a *WebAnalyticsAdapter) FetchCampaignDetails(ctx context.Context, clientID uuid.UUID, campaignID string) (*domain.PlatformCampaign, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	filter := map[string]any{
		"filter": map[string]any{
			"fieldName":    "sessionCampaignId",
			"stringFilter": map[string]string{"matchType": "EXACT", "value": campaignID},
		},
	}
	campaigns, err := a.campaigns(ctx, s, domain.DefaultDateRange(time.Now()), filter)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].CampaignID == campaignID {
			return &campaigns[i], nil
		}
	}
	return nil, nil
}

func (a *WebAnalyticsAdapter) UpdateCampaignStatus(context.Context, uuid.UUID, string, domain.CampaignStatus) (bool, error) {
	return false, fmt.Errorf("%w: %s campaigns are read only", port.ErrUnsupportedOperation, domain.PlatformWebAnalytics)
}

func (a *WebAnalyticsAdapter) CreateCampaign(context.Context, uuid.UUID, domain.CampaignDraft) (string, error) {
	return "", fmt.Errorf("%w: %s cannot create campaigns", port.ErrUnsupportedOperation, domain.PlatformWebAnalytics)
}

// analyticsDay converts the report's YYYYMMDD dates.
func analyticsDay(s string) string {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return s
	}
	return t.Format(domain.DateFormat)
}

func (a *WebAnalyticsAdapter) FetchDailyMetrics(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DailyMetric, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	rows, err := a.runReport(ctx, s, reportRequest{
		DateRanges: dateRanges(dr),
		Dimensions: names("date"),
		Metrics:    names("conversions", "totalRevenue"),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyMetric, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyMetric{
			Date:        analyticsDay(r.dim(0)),
			Conversions: r.float(0),
			Revenue:     r.float(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (a *WebAnalyticsAdapter) FetchDeviceBreakdown(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DevicePerformance, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	rows, err := a.runReport(ctx, s, reportRequest{
		DateRanges: dateRanges(dr),
		Dimensions: names("deviceCategory"),
		Metrics:    names("sessions", "totalUsers", "conversions", "totalRevenue"),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.DevicePerformance, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DevicePerformance{
			Device:      r.dim(0),
			Sessions:    r.int(0),
			Users:       r.int(1),
			Conversions: r.float(2),
			Revenue:     r.float(3),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sessions > out[j].Sessions })
	return out, nil
}

// TestConnection fetches property metadata with the stored credentials.
func (a *WebAnalyticsAdapter) TestConnection(ctx context.Context, clientID uuid.UUID) bool {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		a.client.logger.Debug("connection test failed", slog.String("client_id", clientID.String()), slog.Any("error", err))
		return false
	}
	found, err := a.client.do(ctx, request{
		method: http.MethodGet,
		url:    a.client.url(fmt.Sprintf("properties/%s/metadata", s.propertyID)),
		token:  s.token,
	}, nil)
	return err == nil && found
}
