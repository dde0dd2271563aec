// Package metrics provides Prometheus metrics exposure for applications
// built on the store client packages.
//
// It sets up an isolated Prometheus registry served over HTTP on /metrics,
// and ships StoreObserver, an observability.Observer implementation that
// turns the operation stream reported by store clients into counters and
// latency histograms:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "indexer"})
//	obs := metrics.NewStoreObserver(m.Registry)
//
//	store, _ := arango.NewStore(cfg)
//	store.WithObserver(obs)
//
// Exposed series:
//
//   - docstore_operations_total{component,operation,status}
//   - docstore_operation_duration_seconds{component,operation}
//   - docstore_documents_total{component,operation}
package metrics
