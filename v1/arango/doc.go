// Package arango provides an ArangoDB-backed implementation of the
// docstore.Store interface for persisting pipeline documents.
//
// The package is designed to keep the processing pipeline unaware of
// ArangoDB's native document shape and query language: documents are
// converted between the pipeline representation and the collection record
// shape on every boundary crossing, filter specs are translated into
// bind-parameterized AQL, and driver errors are normalized into the
// docstore taxonomy before they reach the caller.
//
// # Core Features
//
//   - Store scoped to one collection, with a single session held for the
//     store's lifetime and a fail-fast health check at construction
//   - Lossless document conversion with reserved-identity extraction; the
//     caller's metadata maps are never mutated
//   - Filter-to-AQL translation using bind variables exclusively, immune
//     to query injection from untrusted filter values
//   - Batch write/update with exact per-item outcome accounting via
//     docstore.BatchError, optional bounded write parallelism
//   - Store descriptor (de)serialization for persisting which collection
//     an application was bound to, with credentials supplied separately
//   - Optional structured logging and operation observers, fx integration
//
// # Basic Usage
//
//	store, err := arango.NewStore(arango.FromConnectionURL("http://localhost:8529").
//	    WithDatabase("pipeline").
//	    WithCollection("documents").
//	    WithCredentials("reader", os.Getenv("ARANGO_PASSWORD")))
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Write(ctx, []docstore.Document{{
//	    Content: "hello world",
//	    Meta:    map[string]any{"id": "doc-1", "topic": "greetings"},
//	}})
//
//	matches, err := store.Filter(ctx, docstore.FilterSpec{"topic": "greet"})
//
// # Identity Mapping
//
// A document identity, carried in metadata under the reserved "id" key,
// maps to the ArangoDB collection key (_key). Documents written without an
// identity receive a server-assigned key, which reappears under "id" when
// the document is read back.
package arango
