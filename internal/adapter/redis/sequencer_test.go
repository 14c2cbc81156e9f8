package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billboard-ops/internal/config/configs"
	"billboard-ops/internal/core/domain"
)

func newTestSequencer(t *testing.T) (*Sequencer, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSequencer(rdb), mr
}

func TestSequencer_Next(t *testing.T) {
	ctx := context.Background()
	seq, mr := newTestSequencer(t)
	seq.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	for _, want := range []string{"BK-2024-0001", "BK-2024-0002", "BK-2024-0003"} {
		got, err := seq.Next(ctx, domain.SequenceBooking)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := seq.Next(ctx, domain.SequencePurchaseOrder)
	require.NoError(t, err)
	assert.Equal(t, "PO-2024-0001", got)

	v, err := mr.Get("seq:BK:2024")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestSequencer_YearRollover(t *testing.T) {
	ctx := context.Background()
	seq, _ := newTestSequencer(t)

	seq.now = func() time.Time { return time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC) }
	got, err := seq.Next(ctx, domain.SequenceCampaign)
	require.NoError(t, err)
	assert.Equal(t, "CP-2024-0001", got)

	seq.now = func() time.Time { return time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC) }
	got, err = seq.Next(ctx, domain.SequenceCampaign)
	require.NoError(t, err)
	assert.Equal(t, "CP-2025-0001", got)
}

func TestSequencer_WideNumbers(t *testing.T) {
	ctx := context.Background()
	seq, mr := newTestSequencer(t)
	seq.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, mr.Set("seq:INV:2024", "9999"))

	got, err := seq.Next(ctx, domain.SequenceInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-10000", got)
}

func TestSequencer_UnknownEntity(t *testing.T) {
	seq, _ := newTestSequencer(t)
	_, err := seq.Next(context.Background(), domain.SequenceEntity("refund"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	rdb, err := NewClient(context.Background(), configs.Redis{Addr: addr})
	require.NoError(t, err)
	_ = rdb.Close()

	mr.Close()
	_, err = NewClient(context.Background(), configs.Redis{Addr: addr})
	assert.ErrorContains(t, err, "failed to connect to redis")
}
