package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// ConnectService completes the OAuth authorisation handoff: it exchanges
// the callback code for tokens, stores them through the credential
// service and connects the integration.
type ConnectService struct {
	oauth        map[domain.Platform]*oauth2.Config
	clients      port.ClientRepository
	creds        port.CredentialUseCase
	integrations port.IntegrationRepository
	httpClient   *http.Client
	logger       *slog.Logger
	now          func() time.Time
}

var _ port.ConnectUseCase = (*ConnectService)(nil)

func NewConnectService(
	oauth map[domain.Platform]*oauth2.Config,
	clients port.ClientRepository,
	creds port.CredentialUseCase,
	integrations port.IntegrationRepository,
	httpClient *http.Client,
	logger *slog.Logger,
) *ConnectService {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ConnectService{
		oauth:        oauth,
		clients:      clients,
		creds:        creds,
		integrations: integrations,
		httpClient:   httpClient,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *ConnectService) config(platform domain.Platform) (*oauth2.Config, error) {
	if !platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	cfg := s.oauth[platform]
	if cfg == nil {
		return nil, fmt.Errorf("%w: oauth is not configured for %s", port.ErrUnsupportedOperation, platform)
	}
	return cfg, nil
}

// AuthCodeURL returns the consent URL. The client slug travels as state.
func (s *ConnectService) AuthCodeURL(platform domain.Platform, clientSlug string) (string, error) {
	cfg, err := s.config(platform)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(clientSlug) == "" {
		return "", fmt.Errorf("%w: client slug is required", port.ErrInvalidArgument)
	}
	return cfg.AuthCodeURL(clientSlug, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

func (s *ConnectService) HandleCallback(ctx context.Context, platform domain.Platform, req port.CallbackRequest) (*domain.Integration, error) {
	cfg, err := s.config(platform)
	if err != nil {
		return nil, err
	}
	if req.Code == "" || req.AccountID == "" {
		return nil, fmt.Errorf("%w: code and account id are required", port.ErrInvalidArgument)
	}
	client, err := s.clients.GetBySlug(ctx, req.ClientSlug)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %q", port.ErrClientNotFound, req.ClientSlug)
	}

	tok, err := cfg.Exchange(context.WithValue(ctx, oauth2.HTTPClient, s.httpClient), req.Code)
	if err != nil {
		status := 0
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			status = http.StatusUnauthorized
		}
		return nil, port.NewPlatformAPIError(platform, status, fmt.Errorf("code exchange: %w", err))
	}

	creds, err := credentialsFromToken(platform, tok, req.AccountID)
	if err != nil {
		return nil, err
	}
	if err = s.creds.SaveCredentials(ctx, client.ID, platform, creds); err != nil {
		return nil, err
	}

	integ, err := s.integrations.Get(ctx, client.ID, platform)
	if err != nil {
		return nil, fmt.Errorf("load integration: %w", err)
	}
	if integ == nil {
		integ = domain.NewIntegration(client.ID, platform)
	}
	if err = integ.UpdateTokens(tok.RefreshToken, tok.Expiry); err != nil {
		return nil, err
	}
	integ.UpdateLastSync(s.now())
	if err = s.integrations.Upsert(ctx, integ); err != nil {
		return nil, fmt.Errorf("persist integration: %w", err)
	}
	s.logger.Info("platform connected",
		slog.String("client", client.Slug),
		slog.String("platform", platform.String()))
	return integ, nil
}

// credentialsFromToken builds the typed credential set for platform and
// checks that every required key is present.
func credentialsFromToken(platform domain.Platform, tok *oauth2.Token, accountID string) (map[string]string, error) {
	var (
		m   map[string]string
		err error
	)
	switch platform {
	case domain.PlatformSearchAds:
		c := domain.SearchAdsCredentials{
			RefreshToken: tok.RefreshToken,
			AccessToken:  tok.AccessToken,
			TokenExpiry:  tok.Expiry,
			CustomerID:   accountID,
		}
		m = c.Map()
		_, err = domain.SearchAdsCredentialsFromMap(m)
	case domain.PlatformSocialAds:
		c := domain.SocialAdsCredentials{
			AccessToken: tok.AccessToken,
			TokenExpiry: tok.Expiry,
			AdAccountID: accountID,
		}
		m = c.Map()
		_, err = domain.SocialAdsCredentialsFromMap(m)
	case domain.PlatformWebAnalytics:
		c := domain.WebAnalyticsCredentials{
			RefreshToken: tok.RefreshToken,
			AccessToken:  tok.AccessToken,
			TokenExpiry:  tok.Expiry,
			PropertyID:   accountID,
		}
		m = c.Map()
		_, err = domain.WebAnalyticsCredentialsFromMap(m)
	default:
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	if err != nil {
		return nil, port.NewPlatformAPIError(platform, http.StatusOK, fmt.Errorf("token response incomplete: %w", err))
	}
	return m, nil
}
