// Package redis issues reference codes from Redis counters.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"billboard-ops/internal/config/configs"
	"billboard-ops/internal/core/domain"
	"billboard-ops/internal/metrics"
)

// NewClient connects and pings with a 5 second timeout.
func NewClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// Sequencer implements port.Sequencer with one INCR counter per prefix and
// year. Increments are not transactional: a rolled back operation leaves a
// gap in the sequence.
type Sequencer struct {
	rdb *redis.Client
	now func() time.Time
}

func NewSequencer(rdb *redis.Client) *Sequencer {
	return &Sequencer{rdb: rdb, now: time.Now}
}

func (s *Sequencer) Next(ctx context.Context, entity domain.SequenceEntity) (string, error) {
	prefix, err := entity.Prefix()
	if err != nil {
		return "", err
	}
	year := s.now().UTC().Year()
	// Key: seq:<prefix>:<year>
	value, err := s.rdb.Incr(ctx, fmt.Sprintf("seq:%s:%d", prefix, year)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to increment %s sequence: %w", prefix, err)
	}
	metrics.ObserveSequence(entity)
	return domain.FormatReference(prefix, year, value), nil
}
