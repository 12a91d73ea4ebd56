package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/metrics"
)

// TokenRefresher exchanges stored refresh tokens through each platform's
// OAuth token endpoint. Platforms without an OAuth config cannot refresh.
type TokenRefresher struct {
	oauth        map[domain.Platform]*oauth2.Config
	creds        port.CredentialUseCase
	integrations port.IntegrationRepository
	httpClient   *http.Client
	logger       *slog.Logger
}

var _ port.TokenRefresher = (*TokenRefresher)(nil)

func NewTokenRefresher(oauth map[domain.Platform]*oauth2.Config, creds port.CredentialUseCase, integrations port.IntegrationRepository, httpClient *http.Client, logger *slog.Logger) *TokenRefresher {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TokenRefresher{oauth: oauth, creds: creds, integrations: integrations, httpClient: httpClient, logger: logger}
}

// Refresh moves integ through refreshing and persists the outcome. On
// success the new tokens are stored encrypted and integ is connected; on
// failure integ is in error and a *port.PlatformAPIError is returned.
func (r *TokenRefresher) Refresh(ctx context.Context, integ *domain.Integration) (err error) {
	p := integ.Platform
	defer func() { metrics.ObserveTokenRefresh(p, err) }()

	cfg := r.oauth[p]
	if cfg == nil {
		return r.fail(ctx, integ, errors.New("platform has no refresh flow"))
	}
	stored, err := r.creds.GetCredentials(ctx, integ.ClientID, p)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: %s for client %s", port.ErrCredentialsNotFound, p, integ.ClientID)
	}
	refresh := stored[domain.CredRefreshToken]
	if refresh == "" {
		return r.fail(ctx, integ, errors.New("no refresh token stored"))
	}

	if err = integ.MarkAsRefreshing(); err != nil {
		return err
	}
	if err = r.integrations.Upsert(ctx, integ); err != nil {
		return fmt.Errorf("persist refreshing state: %w", err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		return r.fail(ctx, integ, fmt.Errorf("token refresh: %w", err))
	}

	stored[domain.CredAccessToken] = tok.AccessToken
	if tok.RefreshToken != "" {
		stored[domain.CredRefreshToken] = tok.RefreshToken
	}
	if !tok.Expiry.IsZero() {
		stored[domain.CredTokenExpiry] = tok.Expiry.UTC().Format(time.RFC3339)
	}
	if err = r.creds.SaveCredentials(ctx, integ.ClientID, p, stored); err != nil {
		return fmt.Errorf("store refreshed tokens: %w", err)
	}
	if err = integ.UpdateTokens(stored[domain.CredRefreshToken], tok.Expiry); err != nil {
		return err
	}
	if err = r.integrations.Upsert(ctx, integ); err != nil {
		return fmt.Errorf("persist refreshed integration: %w", err)
	}
	r.logger.Info("access token refreshed",
		slog.String("client_id", integ.ClientID.String()),
		slog.String("platform", p.String()),
		slog.Time("expires_at", tok.Expiry))
	return nil
}

func (r *TokenRefresher) fail(ctx context.Context, integ *domain.Integration, cause error) error {
	apiErr := port.NewPlatformAPIError(integ.Platform, http.StatusUnauthorized, cause)
	if err := integ.MarkAsError(apiErr.Error()); err != nil {
		r.logger.Warn("integration state not updated", slog.Any("error", err))
		return apiErr
	}
	if err := r.integrations.Upsert(ctx, integ); err != nil {
		r.logger.Error("persist integration error", slog.Any("error", err))
	}
	return apiErr
}
