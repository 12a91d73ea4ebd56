package port

import (
	"context"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
)

// Repositories return nil, nil when a row does not exist.

// ClientRepository persists clients. Soft-deleted clients are invisible to
// Get and GetBySlug.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Client, error)
	// SlugsWithPrefix returns every slug, tombstoned included, that equals
	// prefix or starts with prefix + "-".
	SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CredentialRepository persists encrypted credential maps keyed by
// (client, platform). It never decrypts.
type CredentialRepository interface {
	// Save replaces any existing record for the pair.
	Save(ctx context.Context, clientID uuid.UUID, platform domain.Platform, encrypted map[string]string) error
	Find(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (map[string]string, error)
	FindAll(ctx context.Context, clientID uuid.UUID) ([]domain.CredentialRecord, error)
	Delete(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (bool, error)
}

// CampaignRepository persists campaigns by natural key.
type CampaignRepository interface {
	FindByKey(ctx context.Context, key domain.CampaignKey) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	Update(ctx context.Context, c *domain.Campaign) error
	ListByClient(ctx context.Context, clientID uuid.UUID, platform *domain.Platform) ([]domain.Campaign, error)
}

// IntegrationRepository persists one integration row per (client, platform).
type IntegrationRepository interface {
	Get(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (*domain.Integration, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Integration, error)
	Upsert(ctx context.Context, i *domain.Integration) error
}
