package pgstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docpipe/stores/v1/docstore"
)

// missingContentSentinel is substituted for a row's content when the
// stored column is null, so callers always receive a content value.
const missingContentSentinel = "<nil>"

func (s *Store) table(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.cfg.TableName)
}

// Count returns the number of documents in the table.
func (s *Store) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	var count int64
	err := normalizeError(s.table(ctx).Count(&count).Error)

	s.observeOperation("count", "", time.Since(start), err, count, nil)
	if err != nil {
		return 0, fmt.Errorf("counting documents in %q: %w", s.cfg.TableName, err)
	}
	return count, nil
}

// Write inserts the given documents into the table, in input order.
//
// A document that fails to convert or that the database rejects does not
// stop the rest of the batch; all per-item failures are collected into a
// *docstore.BatchError. Documents without an identity receive a generated
// UUID key.
func (s *Store) Write(ctx context.Context, docs []docstore.Document) error {
	start := time.Now()

	var items []docstore.ItemError
	for i, doc := range docs {
		row, err := toRow(doc)
		if err != nil {
			items = append(items, docstore.ItemError{Index: i, ID: docstore.Identity(doc), Err: err})
			continue
		}
		if row.Key == "" {
			row.Key = uuid.NewString()
		}

		if err := s.table(ctx).Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				err = fmt.Errorf("%w: key %q already exists", docstore.ErrWrite, row.Key)
			} else {
				err = fmt.Errorf("%w: %v", docstore.ErrWrite, err)
			}
			items = append(items, docstore.ItemError{Index: i, ID: row.Key, Err: err})
		}
	}

	var err error
	if len(items) > 0 {
		err = &docstore.BatchError{Op: "write", Items: items}
	}

	s.observeOperation("write", "", time.Since(start), err, int64(len(docs)), map[string]interface{}{
		"failed": len(items),
	})
	return err
}

// Get returns the document with the given identity, or
// docstore.ErrNotFound when the key is absent from the table.
func (s *Store) Get(ctx context.Context, id string) (docstore.Document, error) {
	start := time.Now()

	var row documentRow
	err := normalizeError(s.table(ctx).Where("key = ?", id).Take(&row).Error)

	s.observeOperation("get", id, time.Since(start), err, 1, nil)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("reading document %q: %w", id, err)
	}
	return toDocument(row), nil
}

// Update patches existing documents and returns how many were actually
// updated.
//
// Documents without an identity are skipped silently and do not count; so
// is an identity that matches no stored row. Update never creates
// documents. A document whose reserved identity entry holds a non-string
// value is reported as a per-item conversion failure, matching Write.
// Metadata patches merge key-wise into the stored metadata
// inside a transaction per document; content is replaced.
func (s *Store) Update(ctx context.Context, docs []docstore.Document) (int, error) {
	start := time.Now()

	updated := 0
	var items []docstore.ItemError

	for i, doc := range docs {
		patch, err := toRow(doc)
		if err != nil {
			// A malformed identity is a per-item failure, not a skip.
			items = append(items, docstore.ItemError{Index: i, Err: err})
			continue
		}
		id := patch.Key
		if id == "" {
			// No identity to address; policy is skip, not insert.
			continue
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing documentRow
			if err := tx.Table(s.cfg.TableName).Where("key = ?", id).Take(&existing).Error; err != nil {
				return err
			}

			merged := docstore.CloneMeta(existing.Meta)
			for k, v := range patch.Meta {
				merged[k] = v
			}

			return tx.Table(s.cfg.TableName).Where("key = ?", id).Updates(map[string]interface{}{
				"content": patch.Content,
				"meta":    metaMap(merged),
			}).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown identity: skipped, never an implicit upsert.
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
		res := s.table(ctx).Where("key = ?", id).Delete(&documentRow{})
		if res.Error != nil {
			opErr = fmt.Errorf("deleting document %q: %w", id, normalizeError(res.Error))
			break
		}
		if res.RowsAffected == 0 {
			if ignoreMissing {
				continue
			}
			opErr = fmt.Errorf("deleting document %q: %w", id, docstore.ErrNotFound)
			break
		}
	}

	s.observeOperation("delete", "", time.Since(start), opErr, int64(len(ids)), map[string]interface{}{
		"ignore_missing": ignoreMissing,
	})
	return opErr
}

// Filter returns the documents matching the spec. Every spec entry must
// match as a case-insensitive substring of the stored metadata value's
// textual form. A nil or empty spec returns every document; no matches
// yields an empty slice.
//
// Field names and values are both passed as query parameters, so hostile
// filter input can never reach the SQL text.
func (s *Store) Filter(ctx context.Context, spec docstore.FilterSpec) ([]docstore.Document, error) {
	start := time.Now()

	q := s.table(ctx)
	for _, field := range sortedFields(spec) {
		pattern := "%" + escapeLikePattern(fmt.Sprintf("%v", spec[field])) + "%"
		q = q.Where("meta->>? ILIKE ?", field, pattern)
	}

	var rows []documentRow
	if err := q.Order("key").Find(&rows).Error; err != nil {
		err = normalizeError(err)
		s.observeOperation("filter", "", time.Since(start), err, 0, nil)
		return nil, fmt.Errorf("querying table %q: %w", s.cfg.TableName, err)
	}

	docs := make([]docstore.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}

	s.observeOperation("filter", "", time.Since(start), nil, int64(len(docs)), map[string]interface{}{
		"fields": len(spec),
	})
	return docs, nil
}

// toRow converts a pipeline document into its relational shape. The
// reserved identity entry is extracted from a copy of the metadata and
// becomes the row key; the caller's metadata map is never modified. A
// non-string value under the reserved key is a conversion error.
func toRow(doc docstore.Document) (documentRow, error) {
	meta := docstore.CloneMeta(doc.Meta)

	var key string
	if raw, ok := meta[docstore.IdentityKey]; ok {
		id, ok := raw.(string)
		if !ok {
			return documentRow{}, fmt.Errorf("%w: metadata key %q holds %T, expected string",
				docstore.ErrConversion, docstore.IdentityKey, raw)
		}
		key = id
		delete(meta, docstore.IdentityKey)
	}

	content := doc.Content
	return documentRow{
		Key:     key,
		Content: &content,
		Meta:    meta,
	}, nil
}

// toDocument converts a row back into the pipeline shape. The row key is
// merged into a metadata copy under the reserved identity key; a null
// content column surfaces the textual missing sentinel.
func toDocument(row documentRow) docstore.Document {
	meta := docstore.CloneMeta(row.Meta)
	meta[docstore.IdentityKey] = row.Key

	content := missingContentSentinel
	if row.Content != nil {
		content = *row.Content
	}

	return docstore.Document{Content: content, Meta: meta}
}

// sortedFields returns the spec's field names in lexicographic order so
// generated queries are deterministic.
func sortedFields(spec docstore.FilterSpec) []string {
	fields := make([]string, 0, len(spec))
	for field := range spec {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern escapes the ILIKE wildcard characters in a literal
// value so filter values match literally.
func escapeLikePattern(value string) string {
	return likeEscaper.Replace(value)
}

// normalizeError maps a GORM error onto the docstore taxonomy so ORM error
// types never cross the store boundary.
func normalizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", docstore.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", docstore.ErrWrite, err)
	default:
		return fmt.Errorf("%w: %v", docstore.ErrConnection, err)
	}
}
