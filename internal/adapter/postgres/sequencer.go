package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/metrics"
)

// Sequencer issues reference codes from the sequences table. Called inside
// a transaction the increment is rolled back with it, so codes stay gapless.
type Sequencer struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewSequencer(pool *pgxpool.Pool) *Sequencer {
	return &Sequencer{pool: pool, now: time.Now}
}

func (s *Sequencer) Next(ctx context.Context, entity domain.SequenceEntity) (string, error) {
	prefix, err := entity.Prefix()
	if err != nil {
		return "", err
	}
	year := s.now().UTC().Year()
	var value int64
	err = conn(ctx, s.pool).QueryRow(ctx, `
INSERT INTO sequences (prefix, year, value) VALUES ($1, $2, 1)
ON CONFLICT (prefix, year) DO UPDATE SET value = sequences.value + 1
RETURNING value`, prefix, year).Scan(&value)
	if err != nil {
		return "", mapError("next sequence", err)
	}
	metrics.ObserveSequence(entity)
	return domain.FormatReference(prefix, year, value), nil
}
