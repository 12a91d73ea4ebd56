package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adlens/internal/core/domain"
)

// SyncResult summarises one sync run.
type SyncResult struct {
	Platform         domain.Platform `json:"platform"`
	CampaignsUpdated int             `json:"campaignsUpdated"`
	NewCampaigns     int             `json:"newCampaigns"`
	SyncedAt         time.Time       `json:"syncedAt"`
}

// PlatformSyncOutcome is one platform's part of a SyncAll run.
type PlatformSyncOutcome struct {
	Platform domain.Platform `json:"platform"`
	Result   *SyncResult     `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// SyncUseCase pulls remote campaign state into local storage.
type SyncUseCase interface {
	// Sync is idempotent: repeating it against unchanged remote data
	// creates nothing and leaves stored metrics unchanged.
	Sync(ctx context.Context, clientID uuid.UUID, platform domain.Platform, dr *domain.DateRange) (*SyncResult, error)
	// SyncAll syncs every connected platform of the client. Only fatal
	// errors are returned; per-platform failures are in the outcomes.
	SyncAll(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]PlatformSyncOutcome, error)
}

// DashboardUseCase merges every connected platform into one payload.
type DashboardUseCase interface {
	GetDashboardData(ctx context.Context, clientID uuid.UUID, period domain.Period, enabled []domain.Platform) (*domain.DashboardPayload, error)
}

// CallbackRequest is the OAuth callback handed over by the auth flow.
type CallbackRequest struct {
	Code       string
	ClientSlug string
	// AccountID is the platform account the tokens grant access to
	// (customer, ad account or property id).
	AccountID string
}

// ConnectUseCase completes OAuth authorisation for a platform.
type ConnectUseCase interface {
	AuthCodeURL(platform domain.Platform, clientSlug string) (string, error)
	HandleCallback(ctx context.Context, platform domain.Platform, req CallbackRequest) (*domain.Integration, error)
}

// CredentialUseCase owns the vault round trip for stored credentials.
type CredentialUseCase interface {
	CredentialProvider
	SaveCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform, creds map[string]string) error
	// GetCredentials returns nil, nil when nothing is stored.
	GetCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (map[string]string, error)
	// DeleteCredentials removes the record and disconnects the integration.
	DeleteCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (bool, error)
	// ListConnected returns the platforms with stored credentials.
	ListConnected(ctx context.Context, clientID uuid.UUID) ([]domain.Platform, error)
}

// ClientUseCase provisions clients.
type ClientUseCase interface {
	CreateClient(ctx context.Context, name string, budget decimal.Decimal) (*domain.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetClientBySlug(ctx context.Context, slug string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListIntegrations(ctx context.Context, id uuid.UUID) ([]domain.Integration, error)
}

// CampaignUseCase manages campaigns on their platform.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context, clientID uuid.UUID, platform *domain.Platform) ([]domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, clientID uuid.UUID, platform domain.Platform, campaignID string, status domain.CampaignStatus) error
	CreateCampaign(ctx context.Context, clientID uuid.UUID, platform domain.Platform, draft domain.CampaignDraft) (string, error)
}
