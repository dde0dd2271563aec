package docstore

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBatchError_UnwrapMatchesSentinels(t *testing.T) {
	batch := &BatchError{
		Op: "write",
		Items: []ItemError{
			{Index: 0, Err: fmt.Errorf("%w: bad meta", ErrConversion)},
			{Index: 2, ID: "doc-3", Err: fmt.Errorf("%w: duplicate key", ErrWrite)},
		},
	}

	if !errors.Is(batch, ErrConversion) {
		t.Error("expected errors.Is to match ErrConversion")
	}
	if !errors.Is(batch, ErrWrite) {
		t.Error("expected errors.Is to match ErrWrite")
	}
	if errors.Is(batch, ErrNotFound) {
		t.Error("did not expect errors.Is to match ErrNotFound")
	}
}

func TestBatchError_MessageListsItems(t *testing.T) {
	batch := &BatchError{
		Op: "update",
		Items: []ItemError{
			{Index: 1, ID: "doc-2", Err: ErrUpdateConflict},
		},
	}

	msg := batch.Error()
	if !strings.Contains(msg, "update") {
		t.Errorf("message missing operation name: %s", msg)
	}
	if !strings.Contains(msg, "doc-2") {
		t.Errorf("message missing document id: %s", msg)
	}
}

func TestBatchError_AsFromWrapped(t *testing.T) {
	batch := &BatchError{Op: "write", Items: []ItemError{{Index: 0, Err: ErrWrite}}}
	wrapped := fmt.Errorf("flushing buffer: %w", batch)

	var got *BatchError
	if !errors.As(wrapped, &got) {
		t.Fatal("expected errors.As to recover *BatchError")
	}
	if len(got.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(got.Items))
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsNotFound(fmt.Errorf("get: %w", ErrNotFound)) {
		t.Error("IsNotFound should match wrapped ErrNotFound")
	}
	if !IsConnection(fmt.Errorf("count: %w", ErrConnection)) {
		t.Error("IsConnection should match wrapped ErrConnection")
	}
	if !IsConversion(fmt.Errorf("to record: %w", ErrConversion)) {
		t.Error("IsConversion should match wrapped ErrConversion")
	}
	if !IsUpdateConflict(fmt.Errorf("update: %w", ErrUpdateConflict)) {
		t.Error("IsUpdateConflict should match wrapped ErrUpdateConflict")
	}
	if IsNotFound(ErrConnection) {
		t.Error("IsNotFound should not match ErrConnection")
	}
}
