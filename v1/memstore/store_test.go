package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/stores/v1/docstore"
)

func TestWriteAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Write(ctx, []docstore.Document{
		{Content: "hello", Meta: map[string]any{"id": "doc-1", "topic": "a"}},
	})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Content)
	assert.Equal(t, "doc-1", doc.Meta["id"])
	assert.Equal(t, "a", doc.Meta["topic"])
}

func TestWrite_AssignsIdentityWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "no id", Meta: map[string]any{"topic": "a"}},
	}))

	docs, err := store.Filter(ctx, nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0].Meta["id"], "store must assign an identity on insert")
	assert.Equal(t, "a", docs[0].Meta["topic"])
}

func TestWrite_DoesNotMutateCallerMetadata(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	meta := map[string]any{"id": "doc-1", "topic": "a"}
	require.NoError(t, store.Write(ctx, []docstore.Document{{Content: "x", Meta: meta}}))

	assert.Equal(t, "doc-1", meta["id"], "caller metadata must keep its identity entry")
	assert.Len(t, meta, 2)
}

func TestWrite_PartialBatchReportsFailures(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "first", Meta: map[string]any{"id": "doc-1"}},
	}))

	err := store.Write(ctx, []docstore.Document{
		{Content: "dup", Meta: map[string]any{"id": "doc-1"}},
		{Content: "ok", Meta: map[string]any{"id": "doc-2"}},
		{Content: "bad", Meta: map[string]any{"id": 7}},
	})

	var batchErr *docstore.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Len(t, batchErr.Items, 2)
	assert.True(t, errors.Is(err, docstore.ErrWrite))
	assert.True(t, errors.Is(err, docstore.ErrConversion))

	// The healthy document in the middle of the batch still landed.
	doc, err := store.Get(ctx, "doc-2")
	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Content)
}

func TestGet_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, docstore.IsNotFound(err))
}

func TestUpdate_UnknownIdentityReturnsZeroAndCreatesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	updated, err := store.Update(ctx, []docstore.Document{
		{Content: "ghost", Meta: map[string]any{"id": "unknown"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "update must never create documents")
}

func TestUpdate_NonStringIdentityReportsConversion(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	updated, err := store.Update(ctx, []docstore.Document{
		{Content: "bad", Meta: map[string]any{"id": 42}},
	})

	assert.Equal(t, 0, updated)
	assert.True(t, docstore.IsConversion(err), "a non-string identity must surface as a conversion failure, not a silent skip")

	var batchErr *docstore.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Len(t, batchErr.Items, 1)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUpdate_SkipsDocumentsWithoutIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "v1", Meta: map[string]any{"id": "doc-1", "topic": "a"}},
	}))

	updated, err := store.Update(ctx, []docstore.Document{
		{Content: "anonymous", Meta: map[string]any{"topic": "b"}},
		{Content: "v2", Meta: map[string]any{"id": "doc-1", "rank": 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "v2", doc.Content)
	assert.Equal(t, "a", doc.Meta["topic"], "patch merges into existing metadata")
	assert.Equal(t, 2, doc.Meta["rank"])
}

func TestDelete_IgnoreMissing(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	assert.NoError(t, store.Delete(ctx, []string{"missing"}, true))

	err := store.Delete(ctx, []string{"missing"}, false)
	assert.True(t, docstore.IsNotFound(err))
}

func TestDelete_RemovesDocuments(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "one", Meta: map[string]any{"id": "doc-1"}},
		{Content: "two", Meta: map[string]any{"id": "doc-2"}},
	}))

	require.NoError(t, store.Delete(ctx, []string{"doc-1"}, false))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = store.Get(ctx, "doc-1")
	assert.True(t, docstore.IsNotFound(err))
}

func TestFilter_TopicScenario(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "first", Meta: map[string]any{"id": "doc-1", "topic": "a"}},
		{Content: "second", Meta: map[string]any{"id": "doc-2", "topic": "b"}},
		{Content: "third", Meta: map[string]any{"id": "doc-3", "topic": "a"}},
	}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	docs, err := store.Filter(ctx, docstore.FilterSpec{"topic": "a"})
	require.NoError(t, err)

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, docstore.Identity(doc))
	}
	assert.ElementsMatch(t, []string{"doc-1", "doc-3"}, ids)
}

func TestFilter_EmptySpecMatchesAll(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "one", Meta: map[string]any{"id": "doc-1", "topic": "a"}},
		{Content: "two", Meta: map[string]any{"id": "doc-2", "topic": "b"}},
	}))

	docs, err := store.Filter(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "report", Meta: map[string]any{"id": "doc-1", "topic": "Quarterly Finance"}},
	}))

	docs, err := store.Filter(ctx, docstore.FilterSpec{"topic": "finance"})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestFilter_NoMatchesYieldsEmptySlice(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "one", Meta: map[string]any{"id": "doc-1", "topic": "a"}},
	}))

	docs, err := store.Filter(ctx, docstore.FilterSpec{"topic": "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestFilter_MultipleFieldsANDCombined(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Write(ctx, []docstore.Document{
		{Content: "one", Meta: map[string]any{"id": "doc-1", "topic": "a", "lang": "en"}},
		{Content: "two", Meta: map[string]any{"id": "doc-2", "topic": "a", "lang": "de"}},
	}))

	docs, err := store.Filter(ctx, docstore.FilterSpec{"topic": "a", "lang": "de"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docstore.Identity(docs[0]))
}
