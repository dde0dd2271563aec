package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum level emitted; unknown values fall back to
	// info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName tags every log line with the emitting service.
	ServiceName string `yaml:"service_name" env:"ZAP_LOGGER_SERVICE_NAME"`
}
