package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
)

const campaignColumns = `id, reference_code, customer_id, name, notes, total_value, start_date, end_date, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ReferenceCode, &c.CustomerID, &c.Name, &c.Notes, &c.TotalValue, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
INSERT INTO campaigns (id, reference_code, customer_id, name, notes, total_value, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING created_at, updated_at`,
		c.ID, c.ReferenceCode, c.CustomerID, c.Name, c.Notes, c.TotalValue, c.StartDate, c.EndDate,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError("create campaign", err)
}

func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("get campaign", err)
	}
	c, err := collectOne(rows, scanCampaign)
	return c, mapError("get campaign", err)
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
UPDATE campaigns
SET name = $2, notes = $3, total_value = $4, start_date = $5, end_date = $6, updated_at = now()
WHERE id = $1
RETURNING updated_at`,
		c.ID, c.Name, c.Notes, c.TotalValue, c.StartDate, c.EndDate,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("campaign", c.ID)
	}
	return mapError("update campaign", err)
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return mapError("delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("campaign", id)
	}
	return nil
}

func (r *CampaignRepository) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, reference_code DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError("list campaigns", err)
	}
	out, err := pgx.CollectRows(rows, scanCampaign)
	return out, mapError("list campaigns", err)
}

func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, mapError("count campaigns", err)
}
