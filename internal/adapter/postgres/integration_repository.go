package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adlens/internal/core/domain"
)

// IntegrationRepository implements port.IntegrationRepository.
type IntegrationRepository struct {
	db DB
}

// NewIntegrationRepository returns a repository backed by db.
func NewIntegrationRepository(db DB) *IntegrationRepository {
	return &IntegrationRepository{db: db}
}

const integrationColumns = `client_id, platform, status, last_sync, error, token_expires_at, has_refresh_token, updated_at`

func scanIntegration(row pgx.Row) (domain.Integration, error) {
	var i domain.Integration
	err := row.Scan(&i.ClientID, &i.Platform, &i.Status, &i.LastSync, &i.Error, &i.TokenExpiresAt, &i.HasRefreshToken, &i.UpdatedAt)
	return i, err
}

// Get returns the integration row for the pair.
func (r *IntegrationRepository) Get(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (*domain.Integration, error) {
	i, err := scanIntegration(r.db.QueryRow(ctx, `SELECT `+integrationColumns+`
        FROM integrations WHERE client_id = $1 AND platform = $2`, clientID, platform))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// ListByClient returns every integration row of the client.
func (r *IntegrationRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Integration, error) {
	rows, err := r.db.Query(ctx, `SELECT `+integrationColumns+`
        FROM integrations WHERE client_id = $1 ORDER BY platform`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Integration, error) {
		return scanIntegration(row)
	})
}

// Upsert writes the full state of i.
func (r *IntegrationRepository) Upsert(ctx context.Context, i *domain.Integration) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO integrations (`+integrationColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (client_id, platform) DO UPDATE SET
            status = EXCLUDED.status,
            last_sync = EXCLUDED.last_sync,
            error = EXCLUDED.error,
            token_expires_at = EXCLUDED.token_expires_at,
            has_refresh_token = EXCLUDED.has_refresh_token,
            updated_at = EXCLUDED.updated_at`,
		i.ClientID, i.Platform, i.Status, i.LastSync, i.Error, i.TokenExpiresAt, i.HasRefreshToken, i.UpdatedAt)
	return err
}
