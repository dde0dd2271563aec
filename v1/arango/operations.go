package arango

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	driver "github.com/arangodb/go-driver"
	"golang.org/x/sync/errgroup"

	"github.com/docpipe/stores/v1/docstore"
)

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	count, err := s.col.Count(ctx)
	err = normalizeError(err)

	s.observeOperation("count", "", time.Since(start), err, count, nil)
	if err != nil {
		return 0, fmt.Errorf("counting documents in %q: %w", s.cfg.CollectionName, err)
	}
	return count, nil
}

// Write inserts the given documents into the collection.
//
// Documents are converted and inserted one by one; a document that fails to
// convert or that the server rejects does not stop the rest of the batch.
// All per-item failures are collected into a *docstore.BatchError so
// partial writes are reported, never swallowed.
//
// With Config.WriteConcurrency > 1 inserts run in parallel with that many
// workers. No ordering guarantee is given to the caller either way; outcome
// accounting is exact regardless of execution order.
func (s *Store) Write(ctx context.Context, docs []docstore.Document) error {
	start := time.Now()

	var (
		mu    sync.Mutex
		items []docstore.ItemError
	)

	limit := s.cfg.WriteConcurrency
	if limit < 1 {
		limit = 1
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, doc := range docs {
		g.Go(func() error {
			if err := s.insertOne(groupCtx, doc); err != nil {
				mu.Lock()
				items = append(items, docstore.ItemError{
					Index: i,
					ID:    docstore.Identity(doc),
					Err:   err,
				})
				mu.Unlock()
			}
			// Item failures are accounted, not propagated; returning an
			// error here would cancel the remaining inserts.
			return nil
		})
	}
	_ = g.Wait()

	var err error
	if len(items) > 0 {
		sort.Slice(items, func(a, b int) bool { return items[a].Index < items[b].Index })
		err = &docstore.BatchError{Op: "write", Items: items}
	}

	s.observeOperation("write", "", time.Since(start), err, int64(len(docs)), map[string]interface{}{
		"failed": len(items),
	})

	if err != nil {
		s.logWarn("batch write finished with failures", err, map[string]interface{}{
			"collection": s.cfg.CollectionName,
			"total":      len(docs),
			"failed":     len(items),
		})
	}
	return err
}

// insertOne converts and inserts a single document.
func (s *Store) insertOne(ctx context.Context, doc docstore.Document) error {
	rec, err := toStoreRecord(doc)
	if err != nil {
		return err
	}

	if _, err := s.col.CreateDocument(ctx, rec); err != nil {
		if driver.IsConflict(err) {
			return fmt.Errorf("%w: key %q already exists", docstore.ErrWrite, rec.Key)
		}
		return fmt.Errorf("%w: %v", docstore.ErrWrite, err)
	}
	return nil
}

// Get returns the document with the given identity, or
// docstore.ErrNotFound when the key is absent from the collection.
func (s *Store) Get(ctx context.Context, id string) (docstore.Document, error) {
	start := time.Now()

	var rec storeRecord
	_, err := s.col.ReadDocument(ctx, id, &rec)
	err = normalizeError(err)

	s.observeOperation("get", id, time.Since(start), err, 1, nil)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("reading document %q: %w", id, err)
	}

	// ReadDocument does not populate _key through the json tag on all
	// server versions; the request key is authoritative anyway.
	rec.Key = id
	return toDocument(rec), nil
}

// Update patches existing documents and returns how many were actually
// updated.
//
// Documents without an identity are skipped silently and do not count.
// An identity that matches no stored record is also skipped; Update never
// creates documents. A document whose reserved identity entry holds a
// non-string value is reported as a per-item conversion failure, matching
// Write. Updates merge object values and keep explicit nulls,
// mirroring the server's deep-merge semantics. Revision conflicts and other
// server rejections are reported per document through a
// *docstore.BatchError alongside the count of successful updates.
func (s *Store) Update(ctx context.Context, docs []docstore.Document) (int, error) {
	start := time.Now()

	updateCtx := driver.WithMergeObjects(ctx, true)
	updateCtx = driver.WithKeepNull(updateCtx, true)

	updated := 0
	var items []docstore.ItemError

	for i, doc := range docs {
		rec, err := toStoreRecord(doc)
		if err != nil {
			// A malformed identity is a per-item failure, not a skip.
			items = append(items, docstore.ItemError{Index: i, Err: err})
			continue
		}
		id := rec.Key
		if id == "" {
			// No identity to address; policy is skip, not insert.
			continue
		}

		patch := map[string]interface{}{
			"content": rec.Content,
			"meta":    rec.Meta,
		}

		if _, err := s.col.UpdateDocument(updateCtx, id, patch); err != nil {
			if driver.IsNotFound(err) {
				// Unknown identity: skipped, never an implicit upsert.
				continue
			}
			if driver.IsPreconditionFailed(err) {
				items = append(items, docstore.ItemError{
					Index: i, ID: id,
					Err: fmt.Errorf("%w: %v", docstore.ErrUpdateConflict, err),
				})
				continue
			}
			items = append(items, docstore.ItemError{
				Index: i, ID: id,
				Err: fmt.Errorf("%w: %v", docstore.ErrWrite, err),
			})
			continue
		}
		updated++
	}

	var err error
	if len(items) > 0 {
		err = &docstore.BatchError{Op: "update", Items: items}
	}

	s.observeOperation("update", "", time.Since(start), err, int64(updated), map[string]interface{}{
		"requested": len(docs),
		"failed":    len(items),
	})
	return updated, err
}

// Delete removes the documents with the given identities, in input order.
//
// With ignoreMissing false the first absent identity fails the operation
// with docstore.ErrNotFound; with ignoreMissing true absent identities are
// skipped silently.
func (s *Store) Delete(ctx context.Context, ids []string, ignoreMissing bool) error {
	start := time.Now()

	var opErr error
	for _, id := range ids {
		if _, err := s.col.RemoveDocument(ctx, id); err != nil {
			if driver.IsNotFound(err) {
				if ignoreMissing {
					continue
				}
				opErr = fmt.Errorf("deleting document %q: %w", id, docstore.ErrNotFound)
				break
			}
			opErr = fmt.Errorf("deleting document %q: %w", id, normalizeError(err))
			break
		}
	}

	s.observeOperation("delete", "", time.Since(start), opErr, int64(len(ids)), map[string]interface{}{
		"ignore_missing": ignoreMissing,
	})
	return opErr
}

// Filter returns the documents matching the spec. A nil or empty spec
// returns every document in the collection; no matches yields an empty
// slice.
func (s *Store) Filter(ctx context.Context, spec docstore.FilterSpec) ([]docstore.Document, error) {
	start := time.Now()

	query, bindVars := buildFilterQuery(s.cfg.CollectionName, spec)

	cursor, err := s.db.Query(ctx, query, bindVars)
	if err != nil {
		err = normalizeError(err)
		s.observeOperation("filter", "", time.Since(start), err, 0, nil)
		return nil, fmt.Errorf("querying collection %q: %w", s.cfg.CollectionName, err)
	}
	defer func() {
		if closeErr := cursor.Close(); closeErr != nil {
			s.logWarn("closing query cursor", closeErr, nil)
		}
	}()

	docs := make([]docstore.Document, 0)
	for {
		var rec storeRecord
		if _, err := cursor.ReadDocument(ctx, &rec); driver.IsNoMoreDocuments(err) {
			break
		} else if err != nil {
			err = normalizeError(err)
			s.observeOperation("filter", "", time.Since(start), err, int64(len(docs)), nil)
			return nil, fmt.Errorf("reading query results: %w", err)
		}
		docs = append(docs, toDocument(rec))
	}

	s.observeOperation("filter", "", time.Since(start), nil, int64(len(docs)), map[string]interface{}{
		"fields": len(spec),
	})
	return docs, nil
}

// normalizeError maps a driver error onto the docstore taxonomy so native
// error types never cross the store boundary.
func normalizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case driver.IsNotFound(err):
		return fmt.Errorf("%w: %v", docstore.ErrNotFound, err)
	case driver.IsPreconditionFailed(err):
		return fmt.Errorf("%w: %v", docstore.ErrUpdateConflict, err)
	case driver.IsConflict(err):
		return fmt.Errorf("%w: %v", docstore.ErrWrite, err)
	default:
		return fmt.Errorf("%w: %v", docstore.ErrConnection, err)
	}
}
