package docstore

import "testing"

func TestIdentity_Present(t *testing.T) {
	doc := Document{Meta: map[string]any{"id": "doc-1", "topic": "a"}}
	if got := Identity(doc); got != "doc-1" {
		t.Errorf("expected doc-1, got %q", got)
	}
}

func TestIdentity_Absent(t *testing.T) {
	doc := Document{Meta: map[string]any{"topic": "a"}}
	if got := Identity(doc); got != "" {
		t.Errorf("expected empty identity, got %q", got)
	}
}

func TestIdentity_NilMeta(t *testing.T) {
	if got := Identity(Document{}); got != "" {
		t.Errorf("expected empty identity, got %q", got)
	}
}

func TestIdentity_NonString(t *testing.T) {
	doc := Document{Meta: map[string]any{"id": 42}}
	if got := Identity(doc); got != "" {
		t.Errorf("expected empty identity for non-string id, got %q", got)
	}
}

func TestCloneMeta_Independent(t *testing.T) {
	orig := map[string]any{"id": "doc-1", "topic": "a"}
	clone := CloneMeta(orig)

	clone["topic"] = "b"
	delete(clone, "id")

	if orig["topic"] != "a" {
		t.Errorf("original mutated: topic=%v", orig["topic"])
	}
	if _, ok := orig["id"]; !ok {
		t.Error("original lost its id key")
	}
}

func TestCloneMeta_Nil(t *testing.T) {
	clone := CloneMeta(nil)
	if clone == nil {
		t.Fatal("expected non-nil map")
	}
	if len(clone) != 0 {
		t.Errorf("expected empty map, got %v", clone)
	}
}
