package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// CampaignService manages campaigns on their platform and keeps the local
// copy in step.
type CampaignService struct {
	registry  port.AdapterRegistry
	campaigns port.CampaignRepository
	timeout   time.Duration
	logger    *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignService)(nil)

func NewCampaignService(registry port.AdapterRegistry, campaigns port.CampaignRepository, timeout time.Duration, logger *slog.Logger) *CampaignService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CampaignService{registry: registry, campaigns: campaigns, timeout: timeout, logger: logger}
}

func (s *CampaignService) ListCampaigns(ctx context.Context, clientID uuid.UUID, platform *domain.Platform) ([]domain.Campaign, error) {
	if platform != nil && !platform.IsValid() {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, *platform)
	}
	return s.campaigns.ListByClient(ctx, clientID, platform)
}

// UpdateCampaignStatus changes the status on the platform first, then on
// the stored row when one exists.
func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, clientID uuid.UUID, platform domain.Platform, campaignID string, status domain.CampaignStatus) error {
	adapter, err := s.registry.Adapter(platform)
	if err != nil {
		return err
	}
	if _, err = domain.ParseCampaignStatus(string(status)); err != nil {
		return fmt.Errorf("%w: %w", port.ErrInvalidArgument, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	ok, err := adapter.UpdateCampaignStatus(callCtx, clientID, campaignID, status)
	cancel()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s campaign %s", port.ErrCampaignNotFound, platform, campaignID)
	}

	key := domain.CampaignKey{ClientID: clientID, CampaignID: campaignID, Platform: platform}
	c, err := s.campaigns.FindByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("load campaign %s: %w", key, err)
	}
	if c == nil {
		return nil
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	if err = s.campaigns.Update(ctx, c); err != nil {
		return fmt.Errorf("update campaign %s: %w", key, err)
	}
	s.logger.Info("campaign status changed",
		slog.String("campaign", key.String()),
		slog.String("status", string(status)))
	return nil
}

// CreateCampaign creates the campaign on the platform and returns its
// platform id. It appears locally after the next sync.
func (s *CampaignService) CreateCampaign(ctx context.Context, clientID uuid.UUID, platform domain.Platform, draft domain.CampaignDraft) (string, error) {
	adapter, err := s.registry.Adapter(platform)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return adapter.CreateCampaign(ctx, clientID, draft)
}
