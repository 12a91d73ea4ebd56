package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adlens/internal/core/domain"
)

// CredentialRepository implements port.CredentialRepository. Values arrive
// already encrypted and are stored as a JSON object of ciphertexts.
type CredentialRepository struct {
	db DB
}

// NewCredentialRepository returns a repository backed by db.
func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Save upserts the pair, replacing the whole map so stale keys never
// survive an update.
func (r *CredentialRepository) Save(ctx context.Context, clientID uuid.UUID, platform domain.Platform, encrypted map[string]string) error {
	raw, err := json.Marshal(encrypted)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO credentials (client_id, platform, credentials, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        ON CONFLICT (client_id, platform)
        DO UPDATE SET credentials = EXCLUDED.credentials, updated_at = now()`,
		clientID, platform, raw)
	return err
}

// Find returns the encrypted map, or nil when no record exists.
func (r *CredentialRepository) Find(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (map[string]string, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT credentials FROM credentials WHERE client_id = $1 AND platform = $2`, clientID, platform).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err = json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode credentials for %s: %w", platform, err)
	}
	return m, nil
}

// FindAll returns every record of the client ordered by platform.
func (r *CredentialRepository) FindAll(ctx context.Context, clientID uuid.UUID) ([]domain.CredentialRecord, error) {
	rows, err := r.db.Query(ctx, `
        SELECT client_id, platform, credentials, created_at, updated_at
        FROM credentials WHERE client_id = $1 ORDER BY platform`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CredentialRecord, error) {
		var (
			rec domain.CredentialRecord
			raw []byte
		)
		if err := row.Scan(&rec.ClientID, &rec.Platform, &raw, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return rec, err
		}
		if err := json.Unmarshal(raw, &rec.Credentials); err != nil {
			return rec, fmt.Errorf("decode credentials for %s: %w", rec.Platform, err)
		}
		return rec, nil
	})
}

// Delete removes the pair and reports whether a record existed.
func (r *CredentialRepository) Delete(ctx context.Context, clientID uuid.UUID, platform domain.Platform) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM credentials WHERE client_id = $1 AND platform = $2`, clientID, platform)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
