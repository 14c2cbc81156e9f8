package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
)

const purchaseOrderColumns = `id, po_number, booking_id, actual_start_date, actual_end_date, actual_value, adjustment_notes, created_at, updated_at`

// PurchaseOrderRepository implements port.PurchaseOrderRepository. The
// unique index on booking_id backs the one purchase order per booking rule.
type PurchaseOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseOrderRepository(pool *pgxpool.Pool) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{pool: pool}
}

func scanPurchaseOrder(row pgx.CollectableRow) (domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := row.Scan(&po.ID, &po.PONumber, &po.BookingID, &po.ActualStartDate, &po.ActualEndDate, &po.ActualValue, &po.AdjustmentNotes, &po.CreatedAt, &po.UpdatedAt)
	return po, err
}

func (r *PurchaseOrderRepository) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
INSERT INTO purchase_orders (id, po_number, booking_id, actual_start_date, actual_end_date, actual_value, adjustment_notes)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING created_at, updated_at`,
		po.ID, po.PONumber, po.BookingID, po.ActualStartDate, po.ActualEndDate, po.ActualValue, po.AdjustmentNotes,
	).Scan(&po.CreatedAt, &po.UpdatedAt)
	return mapError("create purchase order", err)
}

func (r *PurchaseOrderRepository) Get(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PurchaseOrderRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.PurchaseOrder, error) {
	return r.getBy(ctx, "booking_id", bookingID)
}

func (r *PurchaseOrderRepository) getBy(ctx context.Context, column string, id uuid.UUID) (*domain.PurchaseOrder, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE `+column+` = $1`, id)
	if err != nil {
		return nil, mapError("get purchase order", err)
	}
	po, err := collectOne(rows, scanPurchaseOrder)
	return po, mapError("get purchase order", err)
}

func (r *PurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return mapError("delete purchase order", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("purchase order", id)
	}
	return nil
}

func (r *PurchaseOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders ORDER BY created_at DESC, po_number DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError("list purchase orders", err)
	}
	out, err := pgx.CollectRows(rows, scanPurchaseOrder)
	return out, mapError("list purchase orders", err)
}

func (r *PurchaseOrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM purchase_orders`).Scan(&n)
	return n, mapError("count purchase orders", err)
}
