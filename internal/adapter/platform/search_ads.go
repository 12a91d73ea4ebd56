package platform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// SearchAdsAdapter talks to the search-ads reporting API. Queries are
// GAQL-style strings, money is reported in micros and campaign ids are
// numeric strings.
type SearchAdsAdapter struct {
	creds  port.CredentialProvider
	client *client
}

var _ port.PlatformAdapter = (*SearchAdsAdapter)(nil)

// NewSearchAdsAdapter returns an adapter using cfg.OAuth for refresh-token
// authentication.
func NewSearchAdsAdapter(creds port.CredentialProvider, cfg Config, logger *slog.Logger) *SearchAdsAdapter {
	return &SearchAdsAdapter{creds: creds, client: newClient(domain.PlatformSearchAds, cfg, logger)}
}

func (a *SearchAdsAdapter) Platform() domain.Platform { return domain.PlatformSearchAds }

var searchAdsStatuses = map[string]domain.CampaignStatus{
	"ENABLED": domain.CampaignStatusActive,
	"PAUSED":  domain.CampaignStatusPaused,
	"REMOVED": domain.CampaignStatusCompleted,
}

func searchAdsStatus(s string) domain.CampaignStatus {
	if st, ok := searchAdsStatuses[strings.ToUpper(s)]; ok {
		return st
	}
	return domain.CampaignStatusDraft
}

func searchAdsNativeStatus(s domain.CampaignStatus) (string, error) {
	switch s {
	case domain.CampaignStatusActive:
		return "ENABLED", nil
	case domain.CampaignStatusPaused:
		return "PAUSED", nil
	case domain.CampaignStatusCompleted:
		return "REMOVED", nil
	default:
		return "", fmt.Errorf("%w: search ads cannot set status %q", port.ErrInvalidArgument, s)
	}
}

type searchAdsRow struct {
	Campaign struct {
		ID           string `json:"id"`
		ResourceName string `json:"resourceName"`
		Name         string `json:"name"`
		Status       string `json:"status"`
		StartDate    string `json:"startDate"`
		EndDate      string `json:"endDate"`
	} `json:"campaign"`
	CampaignBudget struct {
		AmountMicros flexDecimal `json:"amountMicros"`
	} `json:"campaignBudget"`
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
	Metrics struct {
		Impressions      flexInt     `json:"impressions"`
		Clicks           flexInt     `json:"clicks"`
		CostMicros       flexDecimal `json:"costMicros"`
		Conversions      flexFloat   `json:"conversions"`
		ConversionsValue flexFloat   `json:"conversionsValue"`
	} `json:"metrics"`
}

func (r searchAdsRow) counters() domain.RawCounters {
	return domain.RawCounters{
		Impressions: int64(r.Metrics.Impressions),
		Clicks:      int64(r.Metrics.Clicks),
		Cost:        microsToCurrency(r.Metrics.CostMicros.Decimal).InexactFloat64(),
		Conversions: float64(r.Metrics.Conversions),
		Revenue:     float64(r.Metrics.ConversionsValue),
	}
}

type searchAdsResponse struct {
	Results       []searchAdsRow `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
}

// session is an authenticated view of one client's search-ads account.
type searchAdsSession struct {
	token      string
	customerID string
	loginID    string
}

func normalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

func (a *SearchAdsAdapter) session(ctx context.Context, clientID uuid.UUID) (*searchAdsSession, error) {
	creds, err := a.creds.GetSearchAdsCredentials(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, credentialsMissing(domain.PlatformSearchAds, clientID)
	}
	token, err := a.client.refreshToken(ctx, clientID, creds.RefreshToken, creds.AccessToken, creds.TokenExpiry)
	if err != nil {
		return nil, err
	}
	return &searchAdsSession{
		token:      token,
		customerID: normalizeCustomerID(creds.CustomerID),
		loginID:    normalizeCustomerID(creds.LoginCustomerID),
	}, nil
}

func (a *SearchAdsAdapter) headers(s *searchAdsSession) map[string]string {
	return map[string]string{
		"developer-token":   a.client.cfg.DeveloperToken,
		"login-customer-id": s.loginID,
	}
}

// search runs query and follows page tokens until exhausted.
func (a *SearchAdsAdapter) search(ctx context.Context, s *searchAdsSession, query string) ([]searchAdsRow, error) {
	var (
		rows      []searchAdsRow
		pageToken string
	)
	for {
		body := map[string]string{"query": query}
		if pageToken != "" {
			body["pageToken"] = pageToken
		}
		var resp searchAdsResponse
		found, err := a.client.do(ctx, request{
			method:  http.MethodPost,
			url:     a.client.url(fmt.Sprintf("customers/%s/googleAds:search", s.customerID)),
			token:   s.token,
			headers: a.headers(s),
			json:    body,
		}, &resp)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, a.client.apiError(http.StatusNotFound, fmt.Errorf("customer %s not found", s.customerID))
		}
		rows = append(rows, resp.Results...)
		if resp.NextPageToken == "" {
			return rows, nil
		}
		pageToken = resp.NextPageToken
	}
}

const searchAdsCampaignFields = `campaign.id, campaign.name, campaign.status, campaign.start_date, campaign.end_date,
  campaign_budget.amount_micros, metrics.impressions, metrics.clicks, metrics.cost_micros,
  metrics.conversions, metrics.conversions_value`

func campaignQuery(dr domain.DateRange, where string) string {
	q := fmt.Sprintf("SELECT %s FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'",
		searchAdsCampaignFields, dr.StartDay(), dr.EndDay())
	if where != "" {
		q += " AND " + where
	}
	return q
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

func (r searchAdsRow) campaign() domain.PlatformCampaign {
	id := r.Campaign.ID
	if id == "" && r.Campaign.ResourceName != "" {
		id = lastSegment(r.Campaign.ResourceName)
	}
	return domain.PlatformCampaign{
		CampaignID: id,
		Name:       r.Campaign.Name,
		Status:     searchAdsStatus(r.Campaign.Status),
		StartDate:  parseDay(r.Campaign.StartDate),
		EndDate:    parseDay(r.Campaign.EndDate),
		Budget:     microsToCurrency(r.CampaignBudget.AmountMicros.Decimal),
		Metrics:    domain.DeriveMetrics(r.counters()),
	}
}

func lastSegment(resourceName string) string {
	if i := strings.LastIndex(resourceName, "/"); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}

func (a *SearchAdsAdapter) FetchCampaigns(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]domain.PlatformCampaign, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	rows, err := a.search(ctx, s, campaignQuery(domain.ResolveDateRange(dr, time.Now()), ""))
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlatformCampaign, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.campaign())
	}
	return out, nil
}

func (a *SearchAdsAdapter) FetchCampaignDetails(ctx context.Context, clientID uuid.UUID, campaignID string) (*domain.PlatformCampaign, error) {
	if !isNumeric(campaignID) {
		return nil, fmt.Errorf("%w: search ads campaign id %q", port.ErrInvalidArgument, campaignID)
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	rows, err := a.search(ctx, s, campaignQuery(domain.DefaultDateRange(time.Now()), "campaign.id = "+campaignID))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	pc := rows[0].campaign()
	return &pc, nil
}

type searchAdsMutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

func (a *SearchAdsAdapter) mutate(ctx context.Context, s *searchAdsSession, op map[string]any) (string, error) {
	var resp searchAdsMutateResponse
	found, err := a.client.do(ctx, request{
		method:  http.MethodPost,
		url:     a.client.url(fmt.Sprintf("customers/%s/campaigns:mutate", s.customerID)),
		token:   s.token,
		headers: a.headers(s),
		json:    map[string]any{"operations": []map[string]any{op}},
	}, &resp)
	if err != nil {
		return "", err
	}
	if !found || len(resp.Results) == 0 {
		return "", nil
	}
	return resp.Results[0].ResourceName, nil
}

func (a *SearchAdsAdapter) UpdateCampaignStatus(ctx context.Context, clientID uuid.UUID, campaignID string, status domain.CampaignStatus) (bool, error) {
	if !isNumeric(campaignID) {
		return false, fmt.Errorf("%w: search ads campaign id %q", port.ErrInvalidArgument, campaignID)
	}
	native, err := searchAdsNativeStatus(status)
	if err != nil {
		return false, err
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return false, err
	}
	rn, err := a.mutate(ctx, s, map[string]any{
		"update": map[string]string{
			"resourceName": fmt.Sprintf("customers/%s/campaigns/%s", s.customerID, campaignID),
			"status":       native,
		},
		"updateMask": "status",
	})
	if err != nil {
		return false, err
	}
	return rn != "", nil
}

func (a *SearchAdsAdapter) CreateCampaign(ctx context.Context, clientID uuid.UUID, draft domain.CampaignDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", fmt.Errorf("%w: campaign name is required", port.ErrInvalidArgument)
	}
	status := draft.Status
	if status == "" || status == domain.CampaignStatusDraft {
		status = domain.CampaignStatusPaused
	}
	native, err := searchAdsNativeStatus(status)
	if err != nil {
		return "", err
	}
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return "", err
	}
	create := map[string]any{
		"name":   draft.Name,
		"status": native,
		"campaignBudget": map[string]any{
			"amountMicros": fmt.Sprint(currencyToMicros(draft.Budget)),
		},
	}
	if draft.StartDate != nil {
		create["startDate"] = draft.StartDate.Format(domain.DateFormat)
	}
	if draft.EndDate != nil {
		create["endDate"] = draft.EndDate.Format(domain.DateFormat)
	}
	rn, err := a.mutate(ctx, s, map[string]any{"create": create})
	if err != nil {
		return "", err
	}
	if rn == "" {
		return "", a.client.apiError(http.StatusOK, fmt.Errorf("create returned no resource"))
	}
	return lastSegment(rn), nil
}

func (a *SearchAdsAdapter) FetchDailyMetrics(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DailyMetric, error) {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT segments.date, metrics.impressions, metrics.clicks, metrics.cost_micros,
  metrics.conversions, metrics.conversions_value FROM customer
  WHERE segments.date BETWEEN '%s' AND '%s' ORDER BY segments.date`, dr.StartDay(), dr.EndDay())
	rows, err := a.search(ctx, s, q)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyMetric, 0, len(rows))
	for _, r := range rows {
		c := r.counters()
		out = append(out, domain.DailyMetric{
			Date:        r.Segments.Date,
			Spend:       c.Cost,
			Impressions: c.Impressions,
			Clicks:      c.Clicks,
			Conversions: c.Conversions,
			Revenue:     c.Revenue,
		})
	}
	return out, nil
}

// TestConnection lists accessible customers with the stored credentials.
func (a *SearchAdsAdapter) TestConnection(ctx context.Context, clientID uuid.UUID) bool {
	ctx, cancel := a.client.withTimeout(ctx)
	defer cancel()

	s, err := a.session(ctx, clientID)
	if err != nil {
		a.client.logger.Debug("connection test failed", slog.String("client_id", clientID.String()), slog.Any("error", err))
		return false
	}
	found, err := a.client.do(ctx, request{
		method:  http.MethodGet,
		url:     a.client.url("customers:listAccessibleCustomers"),
		token:   s.token,
		headers: a.headers(s),
	}, nil)
	return err == nil && found
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
