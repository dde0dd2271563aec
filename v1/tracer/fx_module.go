package tracer

import (
	"context"

	traceapi "go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// FXModule provides the tracer to the Fx dependency graph, both as the
// concrete *Tracer and as the trace.TracerProvider consumed by span-based
// observers.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewTracerWithDI,
		func(t *Tracer) traceapi.TracerProvider { return t.Provider() },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies needed to create the tracer.
type TracerParams struct {
	fx.In

	Config *Config
	Logger Logger `optional:"true"`
}

// NewTracerWithDI creates the tracer using dependency injection.
func NewTracerWithDI(params TracerParams) (*Tracer, error) {
	return NewTracer(params.Config, params.Logger)
}

// RegisterTracerLifecycle flushes and shuts down the provider on stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracer.Shutdown(ctx)
		},
	})
}
