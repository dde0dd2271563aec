package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/docpipe/stores/v1/observability"
)

// StoreObserver is a Prometheus-backed observability.Observer for document
// store operations. Attach it to a store client via WithObserver to get
// operation counters and latency histograms per component and operation.
type StoreObserver struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	documentsTotal    *prometheus.CounterVec
}

// NewStoreObserver creates a StoreObserver and registers its collectors
// with the given registerer. Use Metrics.Registry (or any registerer) from
// the surrounding application.
func NewStoreObserver(reg prometheus.Registerer) *StoreObserver {
	o := &StoreObserver{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docstore_operations_total",
				Help: "Total number of document store operations",
			},
			[]string{"component", "operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docstore_operation_duration_seconds",
				Help:    "Duration of document store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"component", "operation"},
		),
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docstore_documents_total",
				Help: "Total number of documents moved by batch operations",
			},
			[]string{"component", "operation"},
		),
	}

	reg.MustRegister(o.operationsTotal, o.operationDuration, o.documentsTotal)
	return o
}

// ObserveOperation implements observability.Observer.
func (o *StoreObserver) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	o.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Size > 0 {
		o.documentsTotal.WithLabelValues(ctx.Component, ctx.Operation).Add(float64(ctx.Size))
	}
}
