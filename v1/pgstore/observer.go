package pgstore

import (
	"time"

	"github.com/docpipe/stores/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured.
//
// Notes:
//   - resource: table name
//   - subResource: document key, where the operation targets one
func (s *Store) observeOperation(operation, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if s == nil || s.observer == nil {
		return
	}

	s.observer.ObserveOperation(observability.OperationContext{
		Component:   "pgstore",
		Operation:   operation,
		Resource:    s.cfg.TableName,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
