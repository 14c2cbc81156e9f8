package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billboard-ops/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "billboard.booking-events", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, configs.SequencePostgres, cfg.Sequence.SequenceBackend())
	assert.Equal(t, "billboard-ops", cfg.Tracing.ServiceName)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KAFKA_BROKERS=k1:9092,k2:9092\nSEQUENCE_BACKEND=redis\nHTTP_PORT=9090\n"), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"KAFKA_BROKERS", "SEQUENCE_BACKEND", "HTTP_PORT"} {
			_ = os.Unsetenv(k)
		}
	})
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, configs.SequenceRedis, cfg.Sequence.SequenceBackend())
	assert.Equal(t, uint16(7070), cfg.HTTP.Port, "environment wins over the file")
}
