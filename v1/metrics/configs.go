package metrics

// DefaultMetricsAddress is the listen address used when none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the metrics HTTP
	// server listens, e.g. ":9090" or "127.0.0.1:9100".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process collectors are registered automatically.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName is applied as a constant service="<name>" label to all
	// metrics, to distinguish services in shared Prometheus clusters.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}
