package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
)

// PlatformAdapter translates one remote platform into the common campaign
// shape. Failures talking to the platform are returned as
// *PlatformAPIError.
type PlatformAdapter interface {
	Platform() domain.Platform
	// FetchCampaigns lists campaigns with metrics for dr, or the trailing
	// 30 days when dr is nil.
	FetchCampaigns(ctx context.Context, clientID uuid.UUID, dr *domain.DateRange) ([]domain.PlatformCampaign, error)
	// FetchCampaignDetails returns nil, nil when the campaign is unknown.
	FetchCampaignDetails(ctx context.Context, clientID uuid.UUID, campaignID string) (*domain.PlatformCampaign, error)
	UpdateCampaignStatus(ctx context.Context, clientID uuid.UUID, campaignID string, status domain.CampaignStatus) (bool, error)
	CreateCampaign(ctx context.Context, clientID uuid.UUID, draft domain.CampaignDraft) (string, error)
	// FetchDailyMetrics returns per-day totals ordered by date.
	FetchDailyMetrics(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DailyMetric, error)
	// TestConnection reports whether stored credentials authenticate. It
	// never returns an error.
	TestConnection(ctx context.Context, clientID uuid.UUID) bool
}

// DeviceReporter is implemented by adapters that can break traffic down by
// device category.
type DeviceReporter interface {
	FetchDeviceBreakdown(ctx context.Context, clientID uuid.UUID, dr domain.DateRange) ([]domain.DevicePerformance, error)
}

// AdapterRegistry resolves the adapter for a platform.
type AdapterRegistry interface {
	Adapter(p domain.Platform) (PlatformAdapter, error)
	Platforms() []domain.Platform
}

// CredentialProvider hands adapters decrypted credentials on demand.
// Implementations must not cache plaintext.
type CredentialProvider interface {
	GetSearchAdsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.SearchAdsCredentials, error)
	GetSocialAdsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.SocialAdsCredentials, error)
	GetWebAnalyticsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.WebAnalyticsCredentials, error)
}

// TokenStore persists an access token an adapter minted from a stored
// refresh token so later calls reuse it. An empty refresh keeps the stored
// one.
type TokenStore interface {
	StoreAccessToken(ctx context.Context, clientID uuid.UUID, platform domain.Platform, access, refresh string, expiry time.Time) error
}

// Vault encrypts and decrypts individual credential values.
type Vault interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Locker serialises work on a key across processes. Acquire returns
// ErrSyncInProgress when another holder owns the key.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}

// TokenRefresher exchanges a stored refresh token for a new access token
// and persists the result, updating integ in place.
type TokenRefresher interface {
	Refresh(ctx context.Context, integ *domain.Integration) error
}
