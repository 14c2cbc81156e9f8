package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/core/port"
)

const bookingColumns = `id, reference_code, customer_id, billboard_id, campaign_id, slot_number,
       start_date, end_date, actual_end_date, notional_value, status, notes, created_at, updated_at`

// BookingRepository implements port.BookingRepository.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func scanBooking(row pgx.CollectableRow) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.CustomerID,
		&b.BillboardID,
		&b.CampaignID,
		&b.SlotNumber,
		&b.StartDate,
		&b.EndDate,
		&b.ActualEndDate,
		&b.NotionalValue,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
INSERT INTO bookings (id, reference_code, customer_id, billboard_id, campaign_id, slot_number,
                      start_date, end_date, actual_end_date, notional_value, status, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING created_at, updated_at`,
		b.ID, b.ReferenceCode, b.CustomerID, b.BillboardID, b.CampaignID, b.SlotNumber,
		b.StartDate, b.EndDate, b.ActualEndDate, b.NotionalValue, b.Status, b.Notes,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return mapError("create booking", err)
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("get booking", err)
	}
	b, err := collectOne(rows, scanBooking)
	return b, mapError("get booking", err)
}

// Update overwrites every mutable column of the booking.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
UPDATE bookings
SET billboard_id = $2, campaign_id = $3, slot_number = $4, start_date = $5, end_date = $6,
    actual_end_date = $7, notional_value = $8, status = $9, notes = $10, updated_at = now()
WHERE id = $1
RETURNING updated_at`,
		b.ID, b.BillboardID, b.CampaignID, b.SlotNumber, b.StartDate, b.EndDate,
		b.ActualEndDate, b.NotionalValue, b.Status, b.Notes,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("booking", b.ID)
	}
	return mapError("update booking", err)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return mapError("delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("booking", id)
	}
	return nil
}

// FindOverlapping returns the non-cancelled bookings of the billboard whose
// scheduled range shares at least one day with [q.StartDate, q.EndDate].
func (r *BookingRepository) FindOverlapping(ctx context.Context, q port.OverlapQuery) ([]domain.Booking, error) {
	query, args := overlapQuery(q)
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find overlapping bookings", err)
	}
	out, err := pgx.CollectRows(rows, scanBooking)
	return out, mapError("find overlapping bookings", err)
}

// overlapQuery builds the overlap lookup. Both ends are inclusive, so a
// booking ending on the requested start day overlaps. A nil exclusion id
// binds as NULL and disables the id filter.
func overlapQuery(q port.OverlapQuery) (string, []any) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
WHERE billboard_id = $1
  AND status <> $4
  AND start_date <= $3
  AND end_date >= $2
  AND ($5::uuid IS NULL OR id <> $5)
ORDER BY start_date, reference_code`
	return query, []any{q.BillboardID, q.StartDate, q.EndDate, domain.BookingCancelled, q.ExcludeBookingID}
}

func (r *BookingRepository) List(ctx context.Context, f port.BookingFilter) ([]domain.Booking, error) {
	where, args := bookingWhere(f)
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY start_date DESC, reference_code DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)-1, len(args))
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list bookings", err)
	}
	out, err := pgx.CollectRows(rows, scanBooking)
	return out, mapError("list bookings", err)
}

func (r *BookingRepository) Count(ctx context.Context, f port.BookingFilter) (int64, error) {
	where, args := bookingWhere(f)
	var n int64
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM bookings `+where, args...).Scan(&n)
	return n, mapError("count bookings", err)
}

func (r *BookingRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Booking, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE campaign_id = $1 ORDER BY reference_code`, campaignID)
	if err != nil {
		return nil, mapError("list campaign bookings", err)
	}
	out, err := pgx.CollectRows(rows, scanBooking)
	return out, mapError("list campaign bookings", err)
}

// bookingWhere renders the filter as a WHERE clause with positional
// arguments. From/To select bookings overlapping the window.
func bookingWhere(f port.BookingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.BillboardID != nil {
		add("billboard_id = $%d", *f.BillboardID)
	}
	if f.CustomerID != nil {
		add("customer_id = $%d", *f.CustomerID)
	}
	if f.CampaignID != nil {
		add("campaign_id = $%d", *f.CampaignID)
	}
	if f.Status != nil {
		add("status = $%d", *f.Status)
	}
	if f.From != nil {
		add("end_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("start_date <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
