// Package memstore provides an in-memory implementation of the
// docstore.Store interface.
//
// It mirrors the semantics of the persistent backends — reserved-identity
// extraction, skip-on-unknown updates, case-insensitive substring
// filtering — without any external service, which makes it the drop-in
// fake for tests and local development:
//
//	var store docstore.Store = memstore.NewStore()
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docpipe/stores/v1/docstore"
)

// record is the stored shape: identity held apart from metadata, matching
// the persistent backends.
type record struct {
	content string
	meta    map[string]any
}

// Store is an in-memory document store. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]record
}

var _ docstore.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{records: make(map[string]record)}
}

// Count implements docstore.Store.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// Write implements docstore.Store. Documents without an identity receive a
// generated UUID, the way a server-side store assigns keys on insert.
func (s *Store) Write(ctx context.Context, docs []docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []docstore.ItemError
	for i, doc := range docs {
		id, meta, err := splitIdentity(doc)
		if err != nil {
			items = append(items, docstore.ItemError{Index: i, Err: err})
			continue
		}
		if id == "" {
			id = uuid.NewString()
		}
		if _, exists := s.records[id]; exists {
			items = append(items, docstore.ItemError{
				Index: i, ID: id,
				Err: fmt.Errorf("%w: key %q already exists", docstore.ErrWrite, id),
			})
			continue
		}
		s.records[id] = record{content: doc.Content, meta: meta}
	}

	if len(items) > 0 {
		return &docstore.BatchError{Op: "write", Items: items}
	}
	return nil
}

// Get implements docstore.Store.
func (s *Store) Get(ctx context.Context, id string) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return docstore.Document{}, fmt.Errorf("reading document %q: %w", id, docstore.ErrNotFound)
	}
	return assemble(id, rec), nil
}

// Update implements docstore.Store. Metadata patches merge key-wise into
// the stored metadata; content is replaced.
func (s *Store) Update(ctx context.Context, docs []docstore.Document) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	var items []docstore.ItemError

	for i, doc := range docs {
		id, meta, err := splitIdentity(doc)
		if err != nil {
			items = append(items, docstore.ItemError{Index: i, Err: err})
			continue
		}
		if id == "" {
			continue
		}
		existing, ok := s.records[id]
		if !ok {
			// Unknown identity: skipped, never an implicit upsert.
			continue
		}

		merged := docstore.CloneMeta(existing.meta)
		for k, v := range meta {
			merged[k] = v
		}
		s.records[id] = record{content: doc.Content, meta: merged}
		updated++
	}

	var err error
	if len(items) > 0 {
		err = &docstore.BatchError{Op: "update", Items: items}
	}
	return updated, err
}

// Delete implements docstore.Store.
func (s *Store) Delete(ctx context.Context, ids []string, ignoreMissing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.records[id]; !ok {
			if ignoreMissing {
				continue
			}
			return fmt.Errorf("deleting document %q: %w", id, docstore.ErrNotFound)
		}
		delete(s.records, id)
	}
	return nil
}

// Filter implements docstore.Store. Every spec entry must match as a
// case-insensitive substring of the stored metadata value's textual form;
// results carry no ordering guarantee beyond being complete.
func (s *Store) Filter(ctx context.Context, spec docstore.FilterSpec) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]docstore.Document, 0)
	for _, id := range ids {
		rec := s.records[id]
		if matches(rec.meta, spec) {
			docs = append(docs, assemble(id, rec))
		}
	}
	return docs, nil
}

// splitIdentity extracts the reserved identity entry from a copy of the
// document's metadata. The caller's map is never modified.
func splitIdentity(doc docstore.Document) (string, map[string]any, error) {
	meta := docstore.CloneMeta(doc.Meta)

	raw, ok := meta[docstore.IdentityKey]
	if !ok {
		return "", meta, nil
	}
	id, ok := raw.(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: metadata key %q holds %T, expected string",
			docstore.ErrConversion, docstore.IdentityKey, raw)
	}
	delete(meta, docstore.IdentityKey)
	return id, meta, nil
}

// assemble rebuilds the pipeline document shape, identity merged back into
// a metadata copy.
func assemble(id string, rec record) docstore.Document {
	meta := docstore.CloneMeta(rec.meta)
	meta[docstore.IdentityKey] = id
	return docstore.Document{Content: rec.content, Meta: meta}
}

// matches reports whether every filter entry is a case-insensitive
// substring of the corresponding metadata value.
func matches(meta map[string]any, spec docstore.FilterSpec) bool {
	for field, want := range spec {
		got, ok := meta[field]
		if !ok {
			return false
		}
		stored := strings.ToLower(fmt.Sprintf("%v", got))
		wanted := strings.ToLower(fmt.Sprintf("%v", want))
		if !strings.Contains(stored, wanted) {
			return false
		}
	}
	return true
}
