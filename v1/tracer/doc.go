// Package tracer configures the OpenTelemetry tracer provider for the
// service: resource attributes, W3C trace-context propagation and an
// optional OTLP HTTP exporter.
//
// Pair it with the observability package to emit one span per store
// operation:
//
//	trc, err := tracer.NewTracer(tracer.DefaultConfig(), log)
//	if err != nil {
//	    return err
//	}
//	observer := observability.NewTracingObserver(trc.Provider())
//	store.WithObserver(observer)
package tracer
