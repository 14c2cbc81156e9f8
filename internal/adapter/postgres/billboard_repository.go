package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
)

const billboardColumns = `id, code, name, location, type, slot_count, rate_per_day, status, created_at, updated_at`

// BillboardRepository implements port.BillboardRepository.
type BillboardRepository struct {
	pool *pgxpool.Pool
}

func NewBillboardRepository(pool *pgxpool.Pool) *BillboardRepository {
	return &BillboardRepository{pool: pool}
}

func scanBillboard(row pgx.CollectableRow) (domain.Billboard, error) {
	var b domain.Billboard
	err := row.Scan(&b.ID, &b.Code, &b.Name, &b.Location, &b.Type, &b.SlotCount, &b.RatePerDay, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BillboardRepository) Create(ctx context.Context, b *domain.Billboard) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
INSERT INTO billboards (id, code, name, location, type, slot_count, rate_per_day, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING created_at, updated_at`,
		b.ID, b.Code, b.Name, b.Location, b.Type, b.SlotCount, b.RatePerDay, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return mapError("create billboard", err)
}

func (r *BillboardRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Billboard, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+billboardColumns+` FROM billboards WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("get billboard", err)
	}
	b, err := collectOne(rows, scanBillboard)
	return b, mapError("get billboard", err)
}

func (r *BillboardRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Billboard, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+billboardColumns+` FROM billboards WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, mapError("get billboards", err)
	}
	out, err := pgx.CollectRows(rows, scanBillboard)
	return out, mapError("get billboards", err)
}

// Lock must run inside a transaction; on the bare pool the lock is released
// as soon as the statement ends.
func (r *BillboardRepository) Lock(ctx context.Context, ids []uuid.UUID) error {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id FROM billboards WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return mapError("lock billboards", err)
	}
	_, err = pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	return mapError("lock billboards", err)
}

func (r *BillboardRepository) List(ctx context.Context, status *domain.BillboardStatus) ([]domain.Billboard, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
SELECT `+billboardColumns+` FROM billboards
WHERE ($1::text IS NULL OR status = $1)
ORDER BY code`, status)
	if err != nil {
		return nil, mapError("list billboards", err)
	}
	out, err := pgx.CollectRows(rows, scanBillboard)
	return out, mapError("list billboards", err)
}
