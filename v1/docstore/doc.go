// Package docstore defines the database-agnostic contract for persisting
// pipeline documents in a backing document store.
//
// It provides the Document type exchanged with the processing pipeline, the
// FilterSpec used for metadata filtering, the Store interface implemented by
// concrete backends, and the shared error taxonomy that backends normalize
// their native errors into.
//
// # Store Interface
//
// Store is the common interface for all document store backends. It allows
// applications to switch between backends (ArangoDB, PostgreSQL, in-memory)
// without changing application code:
//
//	func NewIndexer(store docstore.Store) *Indexer {
//	    return &Indexer{store: store}
//	}
//
//	// Works with any implementation:
//	// - arango.NewStore(...)
//	// - pgstore.NewStore(...)
//	// - memstore.NewStore(...)
//
// # Identity Convention
//
// A Document carries its identity, when it has one, inside Meta under the
// reserved key "id". Backends extract the identity into their native primary
// key during conversion and restore it into Meta on the way back out. Use
// Identity to read it without caring about the convention:
//
//	doc := docstore.Document{
//	    Content: "hello",
//	    Meta:    map[string]any{"id": "doc-1", "topic": "greetings"},
//	}
//	id := docstore.Identity(doc) // "doc-1"
//
// # Errors
//
// All backends translate their native failures into the sentinels declared
// in this package (ErrNotFound, ErrConnection, ...). Batch operations report
// per-item failures through BatchError so a success count never hides an
// unreported failure:
//
//	if err := store.Write(ctx, docs); err != nil {
//	    var batchErr *docstore.BatchError
//	    if errors.As(err, &batchErr) {
//	        for _, item := range batchErr.Items {
//	            log.Printf("doc %d failed: %v", item.Index, item.Err)
//	        }
//	    }
//	}
package docstore
