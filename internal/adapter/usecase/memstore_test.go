package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"adlens/internal/core/domain"
)

// In-memory repositories. Values are copied in and out so callers cannot
// mutate stored state without going through the repository.

type memClients struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Client
}

func newMemClients(clients ...domain.Client) *memClients {
	m := &memClients{rows: make(map[uuid.UUID]domain.Client)}
	for _, c := range clients {
		m.rows[c.ID] = c
	}
	return m
}

func (m *memClients) Create(_ context.Context, c *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.ID] = *c
	return nil
}

func (m *memClients) Get(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	return &c, nil
}

func (m *memClients) GetBySlug(_ context.Context, slug string) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.Slug == slug && c.DeletedAt == nil {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memClients) SlugsWithPrefix(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.rows {
		if c.Slug == prefix || strings.HasPrefix(c.Slug, prefix+"-") {
			out = append(out, c.Slug)
		}
	}
	return out, nil
}

func (m *memClients) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.DeletedAt != nil {
		return false, nil
	}
	now := time.Now().UTC()
	c.DeletedAt = &now
	m.rows[id] = c
	return true, nil
}

type memCampaigns struct {
	mu     sync.Mutex
	rows   map[domain.CampaignKey]domain.Campaign
	writes int
}

func newMemCampaigns() *memCampaigns {
	return &memCampaigns{rows: make(map[domain.CampaignKey]domain.Campaign)}
}

func (m *memCampaigns) FindByKey(_ context.Context, key domain.CampaignKey) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[key]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCampaigns) Create(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.Key()] = *c
	m.writes++
	return nil
}

func (m *memCampaigns) Update(_ context.Context, c *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[c.Key()] = *c
	m.writes++
	return nil
}

func (m *memCampaigns) ListByClient(_ context.Context, clientID uuid.UUID, platform *domain.Platform) ([]domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Campaign
	for k, c := range m.rows {
		if k.ClientID == clientID && (platform == nil || k.Platform == *platform) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampaigns) get(clientID uuid.UUID, p domain.Platform, id string) (domain.Campaign, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[domain.CampaignKey{ClientID: clientID, CampaignID: id, Platform: p}]
	return c, ok
}

func (m *memCampaigns) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type integrationKey struct {
	clientID uuid.UUID
	platform domain.Platform
}

type memIntegrations struct {
	mu   sync.Mutex
	rows map[integrationKey]domain.Integration
}

func newMemIntegrations(rows ...domain.Integration) *memIntegrations {
	m := &memIntegrations{rows: make(map[integrationKey]domain.Integration)}
	for _, i := range rows {
		m.rows[integrationKey{i.ClientID, i.Platform}] = i
	}
	return m
}

func (m *memIntegrations) Get(_ context.Context, clientID uuid.UUID, p domain.Platform) (*domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.rows[integrationKey{clientID, p}]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (m *memIntegrations) ListByClient(_ context.Context, clientID uuid.UUID) ([]domain.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Integration
	for _, p := range domain.Platforms() {
		if i, ok := m.rows[integrationKey{clientID, p}]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memIntegrations) Upsert(_ context.Context, i *domain.Integration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[integrationKey{i.ClientID, i.Platform}] = *i
	return nil
}

func (m *memIntegrations) status(clientID uuid.UUID, p domain.Platform) domain.IntegrationStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[integrationKey{clientID, p}].Status
}

type memCredentials struct {
	mu   sync.Mutex
	rows map[integrationKey]map[string]string
}

func newMemCredentials() *memCredentials {
	return &memCredentials{rows: make(map[integrationKey]map[string]string)}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (m *memCredentials) Save(_ context.Context, clientID uuid.UUID, p domain.Platform, encrypted map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[integrationKey{clientID, p}] = copyMap(encrypted)
	return nil
}

func (m *memCredentials) Find(_ context.Context, clientID uuid.UUID, p domain.Platform) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[integrationKey{clientID, p}]
	if !ok {
		return nil, nil
	}
	return copyMap(row), nil
}

func (m *memCredentials) FindAll(_ context.Context, clientID uuid.UUID) ([]domain.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CredentialRecord
	for k, row := range m.rows {
		if k.clientID == clientID {
			out = append(out, domain.CredentialRecord{ClientID: clientID, Platform: k.platform, Credentials: copyMap(row)})
		}
	}
	return out, nil
}

func (m *memCredentials) Delete(_ context.Context, clientID uuid.UUID, p domain.Platform) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := integrationKey{clientID, p}
	_, ok := m.rows[k]
	delete(m.rows, k)
	return ok, nil
}
