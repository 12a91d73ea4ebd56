package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adlens/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a repository backed by db.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `
            id, client_id, campaign_id, platform, name, status, start_date, end_date, budget,
            impressions, clicks, cost, conversions, revenue,
            ctr, cpc, cpa, roas, conversion_rate,
            last_sync, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	m := &c.Metrics
	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.CampaignID,
		&c.Platform,
		&c.Name,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.Budget,
		&m.Impressions,
		&m.Clicks,
		&m.Cost,
		&m.Conversions,
		&m.Revenue,
		&m.CTR,
		&m.CPC,
		&m.CPA,
		&m.ROAS,
		&m.ConversionRate,
		&c.LastSync,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// FindByKey looks a campaign up by its natural key.
func (r *CampaignRepository) FindByKey(ctx context.Context, key domain.CampaignKey) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, `SELECT `+campaignColumns+`
        FROM campaigns WHERE client_id = $1 AND campaign_id = $2 AND platform = $3`,
		key.ClientID, key.CampaignID, key.Platform))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new campaign. The natural key constraint rejects a
// duplicate.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	m := c.Metrics
	_, err := r.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		c.ID, c.ClientID, c.CampaignID, c.Platform, c.Name, c.Status, c.StartDate, c.EndDate, c.Budget,
		m.Impressions, m.Clicks, m.Cost, m.Conversions, m.Revenue,
		m.CTR, m.CPC, m.CPA, m.ROAS, m.ConversionRate,
		c.LastSync, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update rewrites the mutable fields of the campaign identified by its
// natural key.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	m := c.Metrics
	_, err := r.db.Exec(ctx, `
        UPDATE campaigns SET
            name = $4, status = $5, start_date = $6, end_date = $7, budget = $8,
            impressions = $9, clicks = $10, cost = $11, conversions = $12, revenue = $13,
            ctr = $14, cpc = $15, cpa = $16, roas = $17, conversion_rate = $18,
            last_sync = $19, updated_at = $20
        WHERE client_id = $1 AND campaign_id = $2 AND platform = $3`,
		c.ClientID, c.CampaignID, c.Platform,
		c.Name, c.Status, c.StartDate, c.EndDate, c.Budget,
		m.Impressions, m.Clicks, m.Cost, m.Conversions, m.Revenue,
		m.CTR, m.CPC, m.CPA, m.ROAS, m.ConversionRate,
		c.LastSync, c.UpdatedAt)
	return err
}

// ListByClient returns the client's campaigns, optionally narrowed to one
// platform.
func (r *CampaignRepository) ListByClient(ctx context.Context, clientID uuid.UUID, platform *domain.Platform) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE client_id = $1`
	args := []any{clientID}
	if platform != nil {
		query += ` AND platform = $2`
		args = append(args, *platform)
	}
	query += ` ORDER BY platform, name`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}
