// Package pgstore provides a PostgreSQL-backed implementation of the
// docstore.Store interface for persisting pipeline documents.
//
// Documents live in a single configurable table with the pipeline identity
// as primary key, the content as a nullable text column and the metadata
// as a JSONB column. Filter specs translate into parameterized ILIKE
// predicates over JSONB fields, so untrusted filter input can never reach
// the SQL text. GORM errors are normalized into the docstore taxonomy
// before they reach the caller.
//
// The semantics mirror the arango package: reserved-identity extraction on
// write, skip-on-unknown updates, case-insensitive substring filtering and
// exact per-item batch accounting through docstore.BatchError.
//
// # Basic Usage
//
//	store, err := pgstore.NewStore(pgstore.DefaultConfig().
//	    WithDatabase("pipeline").
//	    WithTable("documents").
//	    WithCredentials("reader", os.Getenv("PGSTORE_PASSWORD")))
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
package pgstore
