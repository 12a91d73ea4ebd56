package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// CredentialService moves credential maps through the vault. Values are
// encrypted one by one before they reach the repository and decrypted on
// every read; plaintext is never cached.
type CredentialService struct {
	repo         port.CredentialRepository
	integrations port.IntegrationRepository
	vault        port.Vault
	logger       *slog.Logger
}

var (
	_ port.CredentialUseCase = (*CredentialService)(nil)
	_ port.TokenStore        = (*CredentialService)(nil)
)

func NewCredentialService(repo port.CredentialRepository, integrations port.IntegrationRepository, vault port.Vault, logger *slog.Logger) *CredentialService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialService{repo: repo, integrations: integrations, vault: vault, logger: logger}
}

// SaveCredentials encrypts each value of creds and replaces the stored
// record for (clientID, platform).
func (s *CredentialService) SaveCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform, creds map[string]string) error {
	if !platform.IsValid() {
		return fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	if len(creds) == 0 {
		return fmt.Errorf("%w: empty credential set", port.ErrInvalidArgument)
	}
	encrypted := make(map[string]string, len(creds))
	keys := make([]string, 0, len(creds))
	for k, v := range creds {
		ct, err := s.vault.Encrypt(v)
		if err != nil {
			return fmt.Errorf("encrypt %s credential %q: %w", platform, k, err)
		}
		encrypted[k] = ct
		keys = append(keys, k)
	}
	if err := s.repo.Save(ctx, clientID, platform, encrypted); err != nil {
		return fmt.Errorf("save %s credentials: %w", platform, err)
	}
	sort.Strings(keys)
	s.logger.Info("credentials stored",
		slog.String("client_id", clientID.String()),
		slog.String("platform", platform.String()),
		slog.Any("keys", keys))
	return nil
}

// GetCredentials returns the decrypted map, or nil when nothing is stored.
// A single undecryptable value fails the whole read.
func (s *CredentialService) GetCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (map[string]string, error) {
	if !platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	stored, err := s.repo.Find(ctx, clientID, platform)
	if err != nil {
		return nil, fmt.Errorf("load %s credentials: %w", platform, err)
	}
	if stored == nil {
		return nil, nil
	}
	out := make(map[string]string, len(stored))
	for k, ct := range stored {
		pt, err := s.vault.Decrypt(ct)
		if err != nil {
			if !errors.Is(err, port.ErrDecryptionFailed) {
				err = fmt.Errorf("%w: %v", port.ErrDecryptionFailed, err)
			}
			return nil, fmt.Errorf("%s credential %q for client %s: %w", platform, k, clientID, err)
		}
		out[k] = pt
	}
	return out, nil
}

// StoreAccessToken merges a newly minted access token into the stored
// record. Other keys are kept.
func (s *CredentialService) StoreAccessToken(ctx context.Context, clientID uuid.UUID, platform domain.Platform, access, refresh string, expiry time.Time) error {
	stored, err := s.GetCredentials(ctx, clientID, platform)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: %s for client %s", port.ErrCredentialsNotFound, platform, clientID)
	}
	stored[domain.CredAccessToken] = access
	if refresh != "" {
		stored[domain.CredRefreshToken] = refresh
	}
	if expiry.IsZero() {
		delete(stored, domain.CredTokenExpiry)
	} else {
		stored[domain.CredTokenExpiry] = expiry.UTC().Format(time.RFC3339)
	}
	return s.SaveCredentials(ctx, clientID, platform, stored)
}

func (s *CredentialService) GetSearchAdsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.SearchAdsCredentials, error) {
	m, err := s.GetCredentials(ctx, clientID, domain.PlatformSearchAds)
	if err != nil || m == nil {
		return nil, err
	}
	creds, err := domain.SearchAdsCredentialsFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrCredentialsNotFound, err)
	}
	return creds, nil
}

func (s *CredentialService) GetSocialAdsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.SocialAdsCredentials, error) {
	m, err := s.GetCredentials(ctx, clientID, domain.PlatformSocialAds)
	if err != nil || m == nil {
		return nil, err
	}
	creds, err := domain.SocialAdsCredentialsFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrCredentialsNotFound, err)
	}
	return creds, nil
}

func (s *CredentialService) GetWebAnalyticsCredentials(ctx context.Context, clientID uuid.UUID) (*domain.WebAnalyticsCredentials, error) {
	m, err := s.GetCredentials(ctx, clientID, domain.PlatformWebAnalytics)
	if err != nil || m == nil {
		return nil, err
	}
	creds, err := domain.WebAnalyticsCredentialsFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrCredentialsNotFound, err)
	}
	return creds, nil
}

// DeleteCredentials removes the stored record and marks the integration
// disconnected, whether or not a record existed.
func (s *CredentialService) DeleteCredentials(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (bool, error) {
	if !platform.IsValid() {
		return false, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, platform)
	}
	deleted, err := s.repo.Delete(ctx, clientID, platform)
	if err != nil {
		return false, fmt.Errorf("delete %s credentials: %w", platform, err)
	}
	integ, err := s.integrations.Get(ctx, clientID, platform)
	if err != nil {
		return deleted, fmt.Errorf("load %s integration: %w", platform, err)
	}
	if integ == nil {
		integ = domain.NewIntegration(clientID, platform)
	}
	integ.MarkAsDisconnected()
	if err = s.integrations.Upsert(ctx, integ); err != nil {
		return deleted, fmt.Errorf("disconnect %s integration: %w", platform, err)
	}
	s.logger.Info("credentials removed",
		slog.String("client_id", clientID.String()),
		slog.String("platform", platform.String()),
		slog.Bool("existed", deleted))
	return deleted, nil
}

func (s *CredentialService) ListConnected(ctx context.Context, clientID uuid.UUID) ([]domain.Platform, error) {
	records, err := s.repo.FindAll(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	out := make([]domain.Platform, 0, len(records))
	for _, r := range records {
		out = append(out, r.Platform)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out, nil
}
