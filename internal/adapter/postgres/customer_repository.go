package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
)

// CustomerRepository implements port.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	err := conn(ctx, r.pool).QueryRow(ctx, `
INSERT INTO customers (id, name, email) VALUES ($1,$2,$3)
RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Email,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError("create customer", err)
}

func (r *CustomerRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, name, email, created_at, updated_at FROM customers WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("get customer", err)
	}
	c, err := collectOne(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		var c domain.Customer
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
	return c, mapError("get customer", err)
}
