package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adlens/internal/core/domain"
)

// ClientRepository implements port.ClientRepository.
type ClientRepository struct {
	db DB
}

// NewClientRepository returns a repository backed by db.
func NewClientRepository(db DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, slug, name, budget, created_at, updated_at, deleted_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Budget, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts c. A slug collision surfaces as a unique violation.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	_, err := r.db.Exec(ctx, `INSERT INTO clients (`+clientColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Slug, c.Name, c.Budget, c.CreatedAt, c.UpdatedAt, c.DeletedAt)
	return err
}

// Get returns a live client by id.
func (r *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1 AND deleted_at IS NULL`, id))
}

// GetBySlug returns a live client by slug.
func (r *ClientRepository) GetBySlug(ctx context.Context, slug string) (*domain.Client, error) {
	return scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE slug = $1 AND deleted_at IS NULL`, slug))
}

// SlugsWithPrefix includes tombstoned clients so a slug is never reused.
func (r *ClientRepository) SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM clients WHERE slug = $1 OR slug LIKE $2`, prefix, escapeLike(prefix)+"-%")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// SoftDelete tombstones a live client.
func (r *ClientRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE clients SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
