package arango

import (
	"context"
	"errors"
	"testing"

	"github.com/docpipe/stores/v1/docstore"
)

func TestUpdateNonStringIdentityReportsConversion(t *testing.T) {
	// Conversion fails before any server round-trip, so a bare store is
	// enough to exercise the accounting.
	s := &Store{cfg: &Config{CollectionName: "documents"}}

	updated, err := s.Update(context.Background(), []docstore.Document{
		{Content: "x", Meta: map[string]any{"id": 42}},
	})

	if updated != 0 {
		t.Errorf("expected 0 updates, got %d", updated)
	}
	if !docstore.IsConversion(err) {
		t.Fatalf("expected a conversion error, got %v", err)
	}

	var batchErr *docstore.BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected a *docstore.BatchError, got %T", err)
	}
	if len(batchErr.Items) != 1 {
		t.Fatalf("expected 1 failed item, got %d", len(batchErr.Items))
	}
	if batchErr.Items[0].Index != 0 {
		t.Errorf("expected failure at index 0, got %d", batchErr.Items[0].Index)
	}
}

func TestUpdateWithoutIdentitySkipsSilently(t *testing.T) {
	s := &Store{cfg: &Config{CollectionName: "documents"}}

	updated, err := s.Update(context.Background(), []docstore.Document{
		{Content: "anonymous", Meta: map[string]any{"topic": "a"}},
	})

	if err != nil {
		t.Fatalf("identity-less documents must be skipped, not failed: %v", err)
	}
	if updated != 0 {
		t.Errorf("expected 0 updates, got %d", updated)
	}
}
