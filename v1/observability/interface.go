// Package observability defines the lightweight observer contract that the
// store client packages use to report completed operations, together with
// ready-made observers (no-op, fan-out, OpenTelemetry tracing).
//
// Clients call their internal observeOperation helper after every store
// round-trip; whatever Observer was attached via WithObserver receives one
// OperationContext per call. Attaching no observer costs nothing.
package observability

import "time"

// OperationContext describes one completed operation against a backing
// service.
type OperationContext struct {
	// Component identifies the client package, e.g. "arango" or "pgstore".
	Component string

	// Operation is the logical operation name, e.g. "write" or "filter".
	Operation string

	// Resource is the primary resource operated on, typically the
	// collection name.
	Resource string

	// SubResource carries additional context such as a document key.
	SubResource string

	// Duration is how long the operation took, including the store
	// round-trip.
	Duration time.Duration

	// Error is the operation outcome; nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. number of documents
	// in a batch or results returned.
	Size int64

	// Metadata holds free-form additional attributes.
	Metadata map[string]interface{}
}

// Observer receives completed operations.
// Implementations must be safe for concurrent use; clients may report from
// multiple goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
