package docstore

import (
	"errors"
	"fmt"
	"strings"
)

// Common document store errors. Backends wrap their native failures with
// these sentinels so callers can branch with errors.Is without importing
// driver packages.
var (
	// ErrConnection is returned when the store is unreachable or
	// authentication failed.
	ErrConnection = errors.New("docstore: connection failed")

	// ErrNotFound is returned when a referenced identity does not exist.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrConversion is returned when a document cannot be mapped to or
	// from the store representation.
	ErrConversion = errors.New("docstore: document conversion failed")

	// ErrWrite is returned when the store rejected an insert.
	ErrWrite = errors.New("docstore: write rejected")

	// ErrUpdateConflict is returned when the store rejected an update,
	// e.g. on a revision mismatch.
	ErrUpdateConflict = errors.New("docstore: update conflict")
)

// IsNotFound checks if the error is a "document not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnection checks if the error is a connection error.
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsConversion checks if the error is a document conversion error.
func IsConversion(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsUpdateConflict checks if the error is an update conflict error.
func IsUpdateConflict(err error) bool {
	return errors.Is(err, ErrUpdateConflict)
}

// ItemError records the failure of a single document within a batch
// operation.
type ItemError struct {
	// Index is the position of the failing document in the input slice.
	Index int

	// ID is the document identity, when known at the time of failure.
	ID string

	// Err is the normalized failure, wrapping one of the package
	// sentinels.
	Err error
}

// BatchError aggregates per-item failures of a batch operation. The
// operation keeps processing remaining items after a failure, so Items can
// cover any subset of the input. It unwraps to the joined item errors,
// which keeps errors.Is working against the sentinels.
type BatchError struct {
	// Op names the failing operation ("write", "update", ...).
	Op string

	// Items holds one entry per failed document, in input order.
	Items []ItemError
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "docstore: %s failed for %d document(s):", e.Op, len(e.Items))
	for _, item := range e.Items {
		if item.ID != "" {
			fmt.Fprintf(&b, " [%d id=%s: %v]", item.Index, item.ID, item.Err)
		} else {
			fmt.Fprintf(&b, " [%d: %v]", item.Index, item.Err)
		}
	}
	return b.String()
}

// Unwrap exposes the item errors so errors.Is matches any sentinel carried
// by any failed item.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Items))
	for i, item := range e.Items {
		errs[i] = item.Err
	}
	return errs
}
