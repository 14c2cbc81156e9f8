package configs

// Tracing configures the OpenTelemetry tracer provider. JaegerEndpoint is
// the collector URL, e.g. http://localhost:14268/api/traces; when empty no
// spans are exported.
type Tracing struct {
	ServiceName    string  `env:"SERVICE_NAME" envDefault:"billboard-ops"`
	JaegerEndpoint string  `env:"JAEGER_ENDPOINT"`
	SampleRatio    float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}
