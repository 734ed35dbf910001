package search_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/search"
)

func buildTree(t *testing.T, sections ...doctree.Section) *doctree.Tree {
	t.Helper()
	tree, err := doctree.Build(&doctree.Manifest{Sections: sections})
	require.NoError(t, err)
	return tree
}

func nestedTree(t *testing.T) *doctree.Tree {
	return buildTree(t,
		doctree.Section{Title: "Guide", Items: []*doctree.Node{
			{ID: "a", Title: "A", File: "a.md", Children: []*doctree.Node{
				{ID: "a1", Title: "A1", File: "a1.md", Children: []*doctree.Node{
					{ID: "a1x", Title: "A1x", File: "a1x.md"},
				}},
				{ID: "a2", Title: "A2", File: "a2.md"},
			}},
			{ID: "b", Title: "B", File: "b.md"},
		}},
		doctree.Section{Title: "Reference", Items: []*doctree.Node{
			{ID: "c", Title: "C", Description: "see", File: "c.md"},
		}},
	)
}

func TestBuildIndex_FlattensLosslessly(t *testing.T) {
	t.Parallel()

	tree := nestedTree(t)
	idx := search.BuildIndex(tree)

	entries := idx.Entries()
	require.Len(t, entries, tree.Len())
	assert.Equal(t, tree.Len(), idx.Len())

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
		assert.Empty(t, e.Content)
	}
	assert.Equal(t, []string{"a", "a1", "a1x", "a2", "b", "c"}, ids)

	c, ok := idx.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "Reference", c.SectionTitle)
	assert.Equal(t, "see", c.Description)
	assert.Equal(t, "c.md", c.File)

	a1x, _ := idx.Lookup("a1x")
	assert.Equal(t, "Guide", a1x.SectionTitle)
}

func TestRecordContent(t *testing.T) {
	t.Parallel()

	t.Run("cleans and stores content", func(t *testing.T) {
		t.Parallel()
		idx := search.BuildIndex(nestedTree(t))
		idx.RecordContent("b", "# Heading\n\nSome **bold** text.")

		e, _ := idx.Lookup("b")
		assert.Equal(t, "Heading Some bold text.", e.Content)
		assert.Equal(t, 1, idx.Loaded())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		idx := search.BuildIndex(nestedTree(t))
		raw := "## Setup\n\n- step one\n- step two\n"
		idx.RecordContent("a2", raw)
		first, _ := idx.Lookup("a2")
		idx.RecordContent("a2", raw)
		second, _ := idx.Lookup("a2")
		assert.Equal(t, first.Content, second.Content)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		t.Parallel()
		idx := search.BuildIndex(nestedTree(t))
		idx.RecordContent("nope", "text")
		assert.Equal(t, 0, idx.Loaded())
		_, ok := idx.Lookup("nope")
		assert.False(t, ok)
	})

	t.Run("entries snapshot is detached", func(t *testing.T) {
		t.Parallel()
		idx := search.BuildIndex(nestedTree(t))
		entries := idx.Entries()
		entries[0].Content = "mutated"
		e, _ := idx.Lookup(entries[0].ID)
		assert.Empty(t, e.Content)
	})
}

func TestRecordContent_Concurrent(t *testing.T) {
	t.Parallel()

	idx := search.BuildIndex(nestedTree(t))
	var wg sync.WaitGroup
	for _, id := range []string{"a", "a1", "a1x", "a2", "b", "c"} {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			idx.RecordContent(id, "content for "+id)
		}(id)
		go func() {
			defer wg.Done()
			_ = search.Search(idx, "content")
		}()
	}
	wg.Wait()
	assert.Equal(t, 6, idx.Loaded())
}
