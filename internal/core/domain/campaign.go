package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errors.New("invalid campaign status")

// CampaignStatus is the normalised campaign status vocabulary shared by all
// platforms.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusDraft     CampaignStatus = "draft"
)

// ParseCampaignStatus validates a normalised status string.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	st := CampaignStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusDraft:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Campaign is the locally stored view of a remote campaign. The triple
// (ClientID, CampaignID, Platform) is its natural key.
type Campaign struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"clientId"`
	CampaignID string          `json:"campaignId"`
	Platform   Platform        `json:"platform"`
	Name       string          `json:"name"`
	Status     CampaignStatus  `json:"status"`
	StartDate  *time.Time      `json:"startDate,omitempty"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	Budget     decimal.Decimal `json:"budget"`
	Metrics    Metrics         `json:"metrics"`
	LastSync   time.Time       `json:"lastSync"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Key returns the natural key of c.
func (c *Campaign) Key() CampaignKey {
	return CampaignKey{ClientID: c.ClientID, CampaignID: c.CampaignID, Platform: c.Platform}
}

// UpdateMetrics merges delta into the raw counters and recomputes every
// derived field.
func (c *Campaign) UpdateMetrics(delta MetricsDelta) {
	c.Metrics = DeriveMetrics(delta.Apply(c.Metrics.RawCounters))
}

// ApplyRemote refreshes c from the platform's latest view and stamps the
// sync time.
func (c *Campaign) ApplyRemote(pc PlatformCampaign, now time.Time) {
	c.Name = pc.Name
	c.Status = pc.Status
	c.StartDate = pc.StartDate
	c.EndDate = pc.EndDate
	c.Budget = pc.Budget
	c.UpdateMetrics(DeltaFromCounters(pc.Metrics.RawCounters))
	c.LastSync = now
	c.UpdatedAt = now
}

// NewCampaignFromPlatform builds a new local campaign for clientID.
func NewCampaignFromPlatform(clientID uuid.UUID, platform Platform, pc PlatformCampaign, now time.Time) *Campaign {
	c := &Campaign{
		ID:         uuid.New(),
		ClientID:   clientID,
		CampaignID: pc.CampaignID,
		Platform:   platform,
		CreatedAt:  now,
	}
	c.ApplyRemote(pc, now)
	return c
}

// CampaignKey is the natural key used for upserts.
type CampaignKey struct {
	ClientID   uuid.UUID
	CampaignID string
	Platform   Platform
}

func (k CampaignKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ClientID, k.Platform, k.CampaignID)
}

// PlatformCampaign is the common shape every platform adapter returns.
type PlatformCampaign struct {
	CampaignID string          `json:"campaignId"`
	Name       string          `json:"name"`
	Status     CampaignStatus  `json:"status"`
	StartDate  *time.Time      `json:"startDate,omitempty"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	Budget     decimal.Decimal `json:"budget"`
	Metrics    Metrics         `json:"metrics"`
}

// CampaignDraft describes a campaign to create on a platform.
type CampaignDraft struct {
	Name      string          `json:"name"`
	Status    CampaignStatus  `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	StartDate *time.Time      `json:"startDate,omitempty"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
}
