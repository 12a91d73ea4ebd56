package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// SocialAdsAdapter talks to the social-ads graph API. Tokens are long
// lived bearer tokens, spend is reported in currency and budgets in minor
// units.
type SocialAdsAdapter struct {
	creds  port.CredentialProvider
	client *client
}

var _ port.PlatformAdapter = (*SocialAdsAdapter)(nil)

func NewSocialAdsAdapter(creds port.CredentialProvider, cfg Config, logger *slog.Logger) *SocialAdsAdapter {
	return &SocialAdsAdapter{creds: creds, client: newClient(domain.PlatformSocialAds, cfg, logger)}
}

func (a *SocialAdsAdapter) Platform() domain.Platform { return domain.PlatformSocialAds }

func socialAdsStatus(s string) domain.CampaignStatus {
	switch strings.ToUpper(s) {
	case "ACTIVE":
		return domain.CampaignStatusActive
	case "PAUSED":
		return domain.CampaignStatusPaused
	case "ARCHIVED", "DELETED":
		return domain.CampaignStatusCompleted
	default:
		return domain.CampaignStatusDraft
	}
}

func socialAdsNativeStatus(s domain.CampaignStatus) (string, error) {
	switch s {
	case domain.CampaignStatusActive:
		return "ACTIVE", nil
	case domain.CampaignStatusPaused:
		return "PAUSED", nil
	case domain.CampaignStatusCompleted:
		return "ARCHIVED", nil
	default:
		return "", fmt.Errorf("%w: social ads cannot set status %q", port.ErrInvalidArgument, s)
	}
}

// Action types counted as conversions; purchase values count as revenue.
var socialConversionActions = map[string]bool{
	"purchase":              true,
	"lead":                  true,
	"complete_registration": true,
}

const socialRevenueAction = "purchase"

type socialAction struct {
	ActionType string    `json:"action_type"`
	Value      flexFloat `json:"value"`
}

type socialInsight struct {
	CampaignID   string         `json:"campaign_id"`
	DateStart    string         `json:"date_start"`
	Impressions  flexInt        `json:"impressions"`
	Clicks       flexInt        `json:"clicks"`
	Spend        flexDecimal    `json:"spend"`
	Actions      []socialAction `json:"actions"`
	ActionValues []socialAction `json:"action_values"`
}

func (in socialInsight) counters() domain.RawCounters {
	raw := domain.RawCounters{
		Impressions: int64(in.Impressions),
		Clicks:      int64(in.Clicks),
		Cost:        in.Spend.InexactFloat64(),
	}
	for _, a := range in.Actions {
		if socialConversionActions[a.ActionType] {
			raw.Conversions += float64(a.Value)
		}
	}
	for _, a := range in.ActionValues {
		if a.ActionType == socialRevenueAction {
			raw.Revenue += float64(a.Value)
		}
	}
	return raw
}

type socialCampaign struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Status         string      `json:"status"`
	StartTime      string      `json:"start_time"`
	StopTime       string      `json:"stop_time"`
	DailyBudget    flexDecimal `json:"daily_budget"`
	LifetimeBudget flexDecimal `json:"lifetime_budget"`
}

func (c socialCampaign) budget() decimal.Decimal {
	if !c.LifetimeBudget.IsZero() {
		return minorToCurrency(c.LifetimeBudget.Decimal)
	}
	return minorToCurrency(c.DailyBudget.Decimal)
}

type socialPage[T any] struct {
	Data   []T `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

const socialCampaignFields = "id,name,status,start_time,stop_time,daily_budget,lifetime_budget"
const socialInsightFields = "campaign_id,impressions,clicks,spend,actions,action_values"

func parseSocialTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05-0700", time.RFC3339, domain.DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func timeRange(dr domain.DateRange) string {
	raw, _ := json.Marshal(map[string]string{"since": dr.StartDay(), "until": dr.EndDay()})
	return string(raw)
}

type socialSession struct {
	token     string
	accountID string
}

func (a *SocialAdsAdapter) session(ctx context.Context, clientID uuid.UUID) (*socialSession, error) {
	creds, err := a.creds.GetSocialAdsCredentials(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, credentialsMissing(domain.PlatformSocialAds, clientID)
	}
	if !creds.TokenExpiry.IsZero() && creds.TokenExpiry.Before(time.Now()) {
		return nil, a.client.apiError(http.StatusUnauthorized, fmt.Errorf("access token expired at %s", creds.TokenExpiry.Format(time.RFC3339)))
	}
	return &socialSession{
		token:     creds.AccessToken,
		accountID: strings.TrimPrefix(creds.AdAccountID, "act_"),
	}, nil
}

// list follows paging.next links, collecting every element. A missing
// first page is an error; a cursor that expires mid-walk ends the walk.
func list[T any](ctx context.Context, c *client, token, target string, query url.Values) ([]T, error) {
	var out []T
	for first := true; target != ""; first = false {
		var page socialPage[T]
		found, err := c.do(ctx, request{method: http.MethodGet, url: target, token: token, query: query}, &page)
		if err != nil {
			return nil, err
		}
		if !found {
			if first {
				return nil, c.apiError(http.StatusNotFound, fmt.Errorf("%s not found", strings.SplitN(target, "?", 2)[0]))
			}
			return out, nil
		}
		out = append(out, page.Data...)
		// next links carry their own query string
		target, query = page.Paging.Next, nil
	}
	return out, nil
}

func (a *SocialAdsAdapter) insights(ctx context.Context, s *socialSession, object string, dr domain.DateRange, level string, daily bool) ([]socialInsight, error) {
	q := url.Values{}
	q.Set("fields", socialInsightFields)
	q.Set("level", level)
	q.Set("time_range", timeRange(dr))
	q.Set("limit", "500")
	if daily {
		q.Set("time_increment", "1")
	}
	return list[socialInsight](ctx, a.client, s.token, a.client.url(object+"/insights"), q)
}

func (a *SocialAdsAdapter) FetchCampaigns(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]domain.PlatformCampaign, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	window := domain.ResolveDateRange(dr, time.Now())

	q := url.Values{}
	q.Set("fields", socialCampaignFields)
	q.Set("limit", "200")
	campaigns, err := list[socialCampaign](ctx, a.client, s.token, a.client.url("act_"+s.accountID+"/campaigns"), q)
	if err != nil {
		return nil, err
	}
	insights, err := a.insights(ctx, s, "act_"+s.accountID, window, "campaign", false)
	if err != nil {
		return nil, err
	}
	byCampaign := make(map[string]domain.RawCounters, len(insights))
	for _, in := range insights {
		byCampaign[in.CampaignID] = in.counters()
	}

	out := make([]domain.PlatformCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.platformCampaign(byCampaign[c.ID]))
	}
	return out, nil
}

func (c socialCampaign) platformCampaign(raw domain.RawCounters) domain.PlatformCampaign {
	return domain.PlatformCampaign{
		CampaignID: c.ID,
		Name:       c.Name,
		Status:     socialAdsStatus(c.Status),
		StartDate:  parseSocialTime(c.StartTime),
		EndDate:    parseSocialTime(c.StopTime),
		Budget:     c.budget(),
		Metrics:    domain.DeriveMetrics(raw),
	}
}

func (a *SocialAdsAdapter) FetchCampaignDetails(ctx context.Context, clientID uuid.UUID, campaignID string) (*domain.PlatformCampaign, error) {
	if !isNumeric(campaignID) {
		return nil, fmt.Errorf("%w: social ads campaign id %q", port.ErrInvalidArgument, campaignID)
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	var c socialCampaign
	found, err := a.client.do(ctx, request{
		method: http.MethodGet,
		url:    a.client.url(campaignID),
		token:  s.token,
		query:  url.Values{"fields": {socialCampaignFields}},
	}, &c)
	if err != nil {
		return nil, err
	}
	if !found || c.ID == "" {
		return nil, nil
	}
	insights, err := a.insights(ctx, s, campaignID, domain.DefaultDateRange(time.Now()), "campaign", false)
	if err != nil {
		return nil, err
	}
	var raw domain.RawCounters
	if len(insights) > 0 {
		raw = insights[0].counters()
	}
	pc := c.platformCampaign(raw)
	return &pc, nil
}

type socialSuccess struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func (a *SocialAdsAdapter) UpdateCampaignStatus(ctx context.Context, clientID uuid.UUID, campaignID string, status domain.CampaignStatus) (bool, error) {
	native, err := socialAdsNativeStatus(status)
	if err != nil {
		return false, err
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return false, err
	}
	var resp socialSuccess
	found, err := a.client.do(ctx, request{
		method: http.MethodPost,
		url:    a.client.url(campaignID),
		token:  s.token,
		form:   url.Values{"status": {native}},
	}, &resp)
	if err != nil {
		return false, err
	}
	return found && resp.Success, nil
}

func (a *SocialAdsAdapter) CreateCampaign(ctx context.Context, clientID uuid.UUID, draft domain.CampaignDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", fmt.Errorf("%w: campaign name is required", port.ErrInvalidArgument)
	}
	status := draft.Status
	if status == "" || status == domain.CampaignStatusDraft {
		status = domain.CampaignStatusPaused
	}
	native, err := socialAdsNativeStatus(status)
	if err != nil {
		return "", err
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return "", err
	}
	form := url.Values{
		"name":                  {draft.Name},
		"status":                {native},
		"objective":             {"OUTCOME_SALES"},
		"special_ad_categories": {"[]"},
	}
	if draft.Budget.IsPositive() {
		form.Set("daily_budget", fmt.Sprint(currencyToMinor(draft.Budget)))
	}
	if draft.StartDate != nil {
		form.Set("start_time", draft.StartDate.Format(time.RFC3339))
	}
	if draft.EndDate != nil {
		form.Set("stop_time", draft.EndDate.Format(time.RFC3339))
	}
	var resp socialSuccess
	if _, err = a.client.do(ctx, request{
		method: http.MethodPost,
		url:    a.client.url("act_" + s.accountID + "/campaigns"),
		token:  s.token,
		form:   form,
	}, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", a.client.apiError(http.StatusOK, fmt.Errorf("create returned no id"))
	}
	return resp.ID, nil
}

func (a *SocialAdsAdapter) FetchDailyMetrics(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DailyMetric, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	insights, err := a.insights(ctx, s, "act_"+s.accountID, dr, "account", true)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyMetric, 0, len(insights))
	for _, in := range insights {
		c := in.counters()
		out = append(out, domain.DailyMetric{
			Date:        in.DateStart,
			Spend:       c.Cost,
			Impressions: c.Impressions,
			Clicks:      c.Clicks,
			Conversions: c.Conversions,
			Revenue:     c.Revenue,
		})
	}
	return out, nil
}

// TestConnection reads the ad account with the stored token.
func (a *SocialAdsAdapter) TestConnection(ctx context.Context, clientID uuid.UUID) bool {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		a.client.logger.Debug("connection test failed", slog.String("client_id", clientID.String()), slog.Any("error", err))
		return false
	}
	found, err := a.client.do(ctx, request{
		method: http.MethodGet,
		url:    a.client.url("act_" + s.accountID),
		token:  s.token,
		query:  url.Values{"fields": {"id,name"}},
	}, nil)
	return err == nil && found
}
