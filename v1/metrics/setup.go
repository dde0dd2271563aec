package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Logger defines the interface for logging operations in the metrics
// package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=metrics
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it on /metrics.
//
// Each Metrics instance maintains its own isolated registry so several
// services can coexist in one process without metric name collisions.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry all metrics register into.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
}

// NewMetrics initializes a Metrics instance: a dedicated registry, optional
// default system collectors, a constant service label on everything, and an
// HTTP server serving the registry.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "document-indexer",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}

	registry := prometheus.NewRegistry()
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return &Metrics{
		Server:     server,
		Registry:   registry,
		registerer: wrappedRegistry,
	}
}

// Registerer returns the registerer carrying the constant service label.
// New collectors should register through it rather than the raw Registry.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}
