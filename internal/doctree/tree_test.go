package doctree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/doctree"
)

func sampleManifest() *doctree.Manifest {
	return &doctree.Manifest{
		Sections: []doctree.Section{
			{
				Title: "Getting Started",
				Icon:  "fas fa-rocket",
				Items: []*doctree.Node{
					{ID: "intro", Title: "Introduction", File: "intro.md"},
					{
						ID: "install", Title: "Installation", File: "install.md",
						Children: []*doctree.Node{
							{ID: "install-linux", Title: "Linux", File: "install-linux.md"},
							{
								ID: "install-mac", Title: "macOS", File: "install-mac.md",
								Children: []*doctree.Node{
									{ID: "install-brew", Title: "Homebrew", File: "install-brew.md"},
								},
							},
						},
					},
				},
			},
			{
				Title: "Reference",
				Items: []*doctree.Node{
					{ID: "api", Title: "API", Description: "Endpoints", File: "api.md"},
				},
			},
		},
	}
}

func mustBuild(t *testing.T) *doctree.Tree {
	t.Helper()
	tree, err := doctree.Build(sampleManifest())
	require.NoError(t, err)
	return tree
}

func TestBuild_FindByIDRoundTrip(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t)
	ids := []string{"intro", "install", "install-linux", "install-mac", "install-brew", "api"}
	for _, id := range ids {
		n, ok := tree.FindByID(id)
		require.True(t, ok, "id %q", id)
		assert.Equal(t, id, n.ID)
	}
	assert.Equal(t, len(ids), tree.Len())

	_, ok := tree.FindByID("missing")
	assert.False(t, ok)
	assert.False(t, tree.Contains("missing"))
}

func TestBuild_Kind(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t)
	install, _ := tree.FindByID("install")
	linux, _ := tree.FindByID("install-linux")
	assert.Equal(t, doctree.Branch, install.Kind())
	assert.Equal(t, doctree.Leaf, linux.Kind())
	assert.Equal(t, "branch", install.Kind().String())
}

func TestFirstDocument(t *testing.T) {
	t.Parallel()

	t.Run("first item of first section", func(t *testing.T) {
		t.Parallel()
		n, ok := mustBuild(t).FirstDocument()
		require.True(t, ok)
		assert.Equal(t, "intro", n.ID)
	})

	t.Run("none without documents", func(t *testing.T) {
		t.Parallel()
		tree, err := doctree.Build(&doctree.Manifest{})
		require.NoError(t, err)
		_, ok := tree.FirstDocument()
		assert.False(t, ok)
	})

	t.Run("none when first section is empty", func(t *testing.T) {
		t.Parallel()
		tree, err := doctree.Build(&doctree.Manifest{Sections: []doctree.Section{
			{Title: "Empty"},
			{Title: "Full", Items: []*doctree.Node{{ID: "a", File: "a.md"}}},
		}})
		require.NoError(t, err)
		_, ok := tree.FirstDocument()
		assert.False(t, ok)
	})
}

func TestAncestorsOf(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t)

	var got []string
	for _, n := range tree.AncestorsOf("install-brew") {
		got = append(got, n.ID)
	}
	assert.Equal(t, []string{"install", "install-mac"}, got)

	assert.Empty(t, tree.AncestorsOf("intro"))
	assert.Empty(t, tree.AncestorsOf("missing"))
}

func TestSectionOf(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t)
	sec, ok := tree.SectionOf("install-brew")
	require.True(t, ok)
	assert.Equal(t, "Getting Started", sec.Title)

	sec, ok = tree.SectionOf("api")
	require.True(t, ok)
	assert.Equal(t, "Reference", sec.Title)
}

func TestWalk_DepthFirstManifestOrder(t *testing.T) {
	t.Parallel()

	tree := mustBuild(t)
	var order []string
	var depths []int
	tree.Walk(func(sec doctree.Section, n *doctree.Node, depth int) bool {
		order = append(order, n.ID)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"intro", "install", "install-linux", "install-mac", "install-brew", "api"}, order)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 0}, depths)

	var visited int
	tree.Walk(func(doctree.Section, *doctree.Node, int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestBuild_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest *doctree.Manifest
		location string
		reason   string
	}{
		{
			name: "missing id",
			manifest: &doctree.Manifest{Sections: []doctree.Section{
				{Items: []*doctree.Node{{File: "a.md"}}},
			}},
			location: "sections[0].items[0]",
			reason:   "missing id",
		},
		{
			name: "missing file on nested node",
			manifest: &doctree.Manifest{Sections: []doctree.Section{
				{Items: []*doctree.Node{{ID: "a", File: "a.md", Children: []*doctree.Node{{ID: "b"}}}}},
			}},
			location: "sections[0].items[0].items[0]",
			reason:   "missing file",
		},
		{
			name: "duplicate id across sections",
			manifest: &doctree.Manifest{Sections: []doctree.Section{
				{Items: []*doctree.Node{{ID: "a", File: "a.md"}}},
				{Items: []*doctree.Node{{ID: "a", File: "other.md"}}},
			}},
			location: "sections[1].items[0]",
			reason:   `duplicate id "a" (first defined at sections[0].items[0])`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := doctree.Build(tt.manifest)
			var malformed *doctree.MalformedManifestError
			require.True(t, errors.As(err, &malformed))
			require.Len(t, malformed.Problems, 1)
			assert.Equal(t, tt.location, malformed.Problems[0].Location)
			assert.Equal(t, tt.reason, malformed.Problems[0].Reason)
		})
	}
}

func TestBuild_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := doctree.Build(&doctree.Manifest{Sections: []doctree.Section{
		{Items: []*doctree.Node{{}, {ID: "x", File: "x.md"}, {ID: "x", File: "y.md"}}},
	}})
	var malformed *doctree.MalformedManifestError
	require.ErrorAs(t, err, &malformed)
	assert.Len(t, malformed.Problems, 3)
	assert.Contains(t, err.Error(), "3 problems")
}

func TestBuild_CopiesManifest(t *testing.T) {
	t.Parallel()

	m := sampleManifest()
	tree, err := doctree.Build(m)
	require.NoError(t, err)

	m.Sections[0].Items[0].Title = "changed"
	n, _ := tree.FindByID("intro")
	assert.Equal(t, "Introduction", n.Title)
}

func TestDocumentNotFoundError(t *testing.T) {
	t.Parallel()

	err := &doctree.DocumentNotFoundError{ID: "nope"}
	assert.Equal(t, `document "nope" not found`, err.Error())
}
