package arango

import (
	"fmt"

	"github.com/docpipe/stores/v1/docstore"
)

// missingContentSentinel is substituted for a record's content when the
// stored field is absent or null, so callers always receive a content
// value.
const missingContentSentinel = "<nil>"

// storeRecord is the ArangoDB-native document shape. The pipeline identity
// maps to the collection key; it is never nested inside Meta.
type storeRecord struct {
	Key     string         `json:"_key,omitempty"`
	Content *string        `json:"content,omitempty"`
	Meta    map[string]any `json:"meta"`
}

// toStoreRecord converts a pipeline document into its ArangoDB shape.
//
// The reserved identity entry is extracted from a copy of the metadata and
// becomes the record key; the caller's metadata map is never modified. A
// document without an identity yields an empty key and the server assigns
// one on insert. A non-string value under the reserved key cannot become a
// collection key and is a conversion error.
func toStoreRecord(doc docstore.Document) (storeRecord, error) {
	meta := docstore.CloneMeta(doc.Meta)

	var key string
	if raw, ok := meta[docstore.IdentityKey]; ok {
		id, ok := raw.(string)
		if !ok {
			return storeRecord{}, fmt.Errorf("%w: metadata key %q holds %T, expected string",
				docstore.ErrConversion, docstore.IdentityKey, raw)
		}
		key = id
		delete(meta, docstore.IdentityKey)
	}

	content := doc.Content
	return storeRecord{
		Key:     key,
		Content: &content,
		Meta:    meta,
	}, nil
}

// toDocument converts an ArangoDB record back into the pipeline shape.
//
// The record key is merged into a copy of the metadata under the reserved
// identity key; on a name collision the record's own key wins. Records
// whose content field is absent or null surface the textual missing
// sentinel instead of an empty value.
func toDocument(rec storeRecord) docstore.Document {
	meta := docstore.CloneMeta(rec.Meta)
	meta[docstore.IdentityKey] = rec.Key

	content := missingContentSentinel
	if rec.Content != nil {
		content = *rec.Content
	}

	return docstore.Document{
		Content: content,
		Meta:    meta,
	}
}
