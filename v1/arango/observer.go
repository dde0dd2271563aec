package arango

import (
	"time"

	"github.com/docpipe/stores/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track store operations for metrics
// and tracing.
//
// Notes:
//   - resource: collection name
//   - subResource: document key, where the operation targets one
func (s *Store) observeOperation(operation, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if s == nil || s.observer == nil {
		return
	}

	s.observer.ObserveOperation(observability.OperationContext{
		Component:   "arango",
		Operation:   operation,
		Resource:    s.cfg.CollectionName,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
