package metrics

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/fx/fxtest"
)

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

func (r *recordingLogger) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

func (r *recordingLogger) Info(msg string, err error, fields ...map[string]interface{})  {}
func (r *recordingLogger) Debug(msg string, err error, fields ...map[string]interface{}) {}
func (r *recordingLogger) Warn(msg string, err error, fields ...map[string]interface{}) {
	r.record(msg)
}
func (r *recordingLogger) Error(msg string, err error, fields ...map[string]interface{}) {}
func (r *recordingLogger) Fatal(msg string, err error, fields ...map[string]interface{}) {}

func TestMetricsLifecycleGracefulShutdownIsNotWarned(t *testing.T) {
	log := &recordingLogger{}
	m := NewMetrics(Config{Address: "127.0.0.1:0", ServiceName: "test"})

	lc := fxtest.NewLifecycle(t)
	RegisterMetricsLifecycle(LifecycleParams{
		Lifecycle: lc,
		Metrics:   m,
		Logger:    log,
	})

	lc.RequireStart()
	lc.RequireStop()

	// Give the server goroutine a moment to observe the shutdown.
	time.Sleep(50 * time.Millisecond)

	if warnings := log.recorded(); len(warnings) != 0 {
		t.Errorf("graceful shutdown must not be warned about, got %v", warnings)
	}
}

func TestMetricsLifecycleWithoutLoggerDoesNotPanic(t *testing.T) {
	m := NewMetrics(Config{Address: "127.0.0.1:0", ServiceName: "test"})

	lc := fxtest.NewLifecycle(t)
	RegisterMetricsLifecycle(LifecycleParams{
		Lifecycle: lc,
		Metrics:   m,
	})

	lc.RequireStart()
	lc.RequireStop()
	time.Sleep(50 * time.Millisecond)
}
