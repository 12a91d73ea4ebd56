package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// ClientService provisions agency clients.
type ClientService struct {
	clients      port.ClientRepository
	integrations port.IntegrationRepository
	logger       *slog.Logger
	now          func() time.Time
}

var _ port.ClientUseCase = (*ClientService)(nil)

func NewClientService(clients port.ClientRepository, integrations port.IntegrationRepository, logger *slog.Logger) *ClientService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientService{
		clients:      clients,
		integrations: integrations,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateClient stores a new client under a unique slug derived from name
// and starts every platform disconnected.
func (s *ClientService) CreateClient(ctx context.Context, name string, budget decimal.Decimal) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", port.ErrInvalidArgument)
	}
	if budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", port.ErrInvalidArgument)
	}
	slug, err := s.uniqueSlug(ctx, domain.Slugify(name))
	if err != nil {
		return nil, err
	}
	now := s.now()
	c := &domain.Client{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		Budget:    budget,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.clients.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	for _, p := range domain.Platforms() {
		if err = s.integrations.Upsert(ctx, domain.NewIntegration(c.ID, p)); err != nil {
			return nil, fmt.Errorf("create %s integration: %w", p, err)
		}
	}
	s.logger.Info("client created", slog.String("client_id", c.ID.String()), slog.String("slug", slug))
	return c, nil
}

// uniqueSlug appends -2, -3, ... until base no longer collides with any
// existing slug, deleted clients included.
func (s *ClientService) uniqueSlug(ctx context.Context, base string) (string, error) {
	existing, err := s.clients.SlugsWithPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("load slugs: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, slug := range existing {
		taken[slug] = true
	}
	if !taken[base] {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	c, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrClientNotFound, id)
	}
	return c, nil
}

func (s *ClientService) GetClientBySlug(ctx context.Context, slug string) (*domain.Client, error) {
	c, err := s.clients.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", port.ErrClientNotFound, slug)
	}
	return c, nil
}

// DeleteClient tombstones the client. Its slug stays reserved.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	ok, err := s.clients.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", port.ErrClientNotFound, id)
	}
	s.logger.Info("client deleted", slog.String("client_id", id.String()))
	return nil
}

// ListIntegrations returns one integration per platform in display order.
// Platforms without a stored row are reported disconnected.
func (s *ClientService) ListIntegrations(ctx context.Context, id uuid.UUID) ([]domain.Integration, error) {
	if _, err := s.GetClient(ctx, id); err != nil {
		return nil, err
	}
	stored, err := s.integrations.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	byPlatform := make(map[domain.Platform]domain.Integration, len(stored))
	for _, i := range stored {
		byPlatform[i.Platform] = i
	}
	out := make([]domain.Integration, 0, len(domain.Platforms()))
	for _, p := range domain.Platforms() {
		if i, ok := byPlatform[p]; ok {
			out = append(out, i)
			continue
		}
		out = append(out, *domain.NewIntegration(id, p))
	}
	return out, nil
}
