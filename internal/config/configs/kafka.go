package configs

import "time"

// Kafka configures the booking event publisher. With no brokers the
// publisher is disabled.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"billboard.booking-events"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}
