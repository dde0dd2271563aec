package tracer

// Config holds settings for the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv tags exported traces with the deployment environment.
	AppEnv string `yaml:"app_env" env:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When disabled spans
	// stay in-process, which keeps tests and local runs free of a
	// collector dependency.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		ServiceName: "docpipe-stores",
		AppEnv:      "development",
	}
}
