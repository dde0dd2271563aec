package docstore

// IdentityKey is the reserved metadata key that carries a document's
// identity while it travels through the pipeline. Backends extract it into
// their native primary key on write and restore it on read.
const IdentityKey = "id"

// Document is the pipeline-facing document representation.
// It is a transient, request-scoped value: stores never retain a reference
// to it or to its Meta map beyond the call that received it.
type Document struct {
	// Content is the document text.
	Content string `json:"content"`

	// Meta holds arbitrary caller-defined metadata. The identity, when
	// present, lives here under IdentityKey as a string.
	Meta map[string]any `json:"meta,omitempty"`
}

// FilterSpec maps metadata field names to expected values.
// A nil or empty spec matches every document in the collection.
// Backends combine per-field predicates with logical AND and match values
// as case-insensitive substrings of the stored field text.
type FilterSpec map[string]any

// Identity returns the document's identity from its metadata, or the empty
// string when no string identity is present. A non-string value under the
// reserved key also yields the empty string here; backend codecs report
// that case as ErrConversion, so operations that must fail on a malformed
// identity convert the document before consulting Identity.
func Identity(doc Document) string {
	if doc.Meta == nil {
		return ""
	}
	id, ok := doc.Meta[IdentityKey].(string)
	if !ok {
		return ""
	}
	return id
}

// CloneMeta returns a shallow copy of a metadata map. Conversions operate
// on the copy so the caller's original map is never mutated.
func CloneMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
