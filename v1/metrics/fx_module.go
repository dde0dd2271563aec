package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
)

// FXModule provides the Metrics instance and the Prometheus store observer,
// and manages the metrics HTTP server lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "document-indexer"}
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewStoreObserverWithDI,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// NewStoreObserverWithDI builds the Prometheus store observer against the
// injected Metrics registerer, picking up the service label.
func NewStoreObserverWithDI(m *Metrics) *StoreObserver {
	return NewStoreObserver(m.Registerer())
}

// LifecycleParams groups the dependencies for the metrics server
// lifecycle. The logger is optional; without one, unexpected server stops
// go unlogged.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics HTTP server on application
// start and shuts it down gracefully on stop. The graceful-shutdown return
// value of ListenAndServe is not reported as a failure.
func RegisterMetricsLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				err := params.Metrics.Server.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) && params.Logger != nil {
					params.Logger.Warn("metrics server stopped unexpectedly", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Metrics.Server.Shutdown(ctx)
		},
	})
}
