package docstore

import "context"

// Store is the common interface for all document store backends.
// Implementations are scoped to a single named collection fixed at
// construction and hold their connection resource for their whole lifetime;
// reconnection is an explicit caller concern (construct a new store).
//
// All operations are synchronous and honor the passed context for
// cancellation and deadlines; no retries happen at this layer.
type Store interface {
	// Count returns the number of documents in the collection.
	Count(ctx context.Context) (int64, error)

	// Write inserts the given documents. Per-document conversion or insert
	// failures are collected into a *BatchError; documents after a failing
	// one are still attempted.
	Write(ctx context.Context, docs []Document) error

	// Get returns the document with the given identity.
	// Returns ErrNotFound when the identity is absent.
	Get(ctx context.Context, id string) (Document, error)

	// Update patches existing documents and returns how many were actually
	// updated. Documents without an identity are skipped silently, as are
	// identities that match no stored record; Update never creates
	// documents. Store-side rejections (e.g. revision conflicts) are
	// reported through a *BatchError alongside the count.
	Update(ctx context.Context, docs []Document) (int, error)

	// Delete removes the documents with the given identities.
	// With ignoreMissing false it fails with ErrNotFound on the first
	// absent identity; with ignoreMissing true absent identities are
	// skipped silently.
	Delete(ctx context.Context, ids []string, ignoreMissing bool) error

	// Filter returns the documents matching the spec. A nil or empty spec
	// returns every document. No matches yields an empty slice, not an
	// error.
	Filter(ctx context.Context, spec FilterSpec) ([]Document, error)
}
