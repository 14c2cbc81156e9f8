package configs

import "strings"

const (
	SequencePostgres = "postgres"
	SequenceRedis    = "redis"
)

// Sequence selects where reference code counters live. The postgres
// backend increments inside the calling transaction; the redis backend
// uses INCR and may leave gaps after a rollback.
type Sequence struct {
	Backend string `env:"BACKEND" envDefault:"postgres"`
}

// SequenceBackend normalises Backend. Unknown values fall back to postgres.
func (c Sequence) SequenceBackend() string {
	if strings.ToLower(c.Backend) == SequenceRedis {
		return SequenceRedis
	}
	return SequencePostgres
}
