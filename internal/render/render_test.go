package render_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/render"
)

func TestRender_Basic(t *testing.T) {
	t.Parallel()

	page, err := render.New().Render("# Getting Started\n\nSome **bold** text.\n")
	require.NoError(t, err)

	assert.Contains(t, page.HTML, `<h1 id="getting-started">Getting Started</h1>`)
	assert.Contains(t, page.HTML, "<strong>bold</strong>")
	assert.Equal(t, "Getting Started", page.Title)
}

func TestRender_TOC(t *testing.T) {
	t.Parallel()

	md := strings.Join([]string{
		"# Guide",
		"## Install",
		"### On `linux`",
		"#### Too deep",
		"## Configure",
	}, "\n\n")

	page, err := render.New().Render(md)
	require.NoError(t, err)

	assert.Equal(t, []render.Heading{
		{Level: 1, ID: "guide", Text: "Guide"},
		{Level: 2, ID: "install", Text: "Install"},
		{Level: 3, ID: "on-linux", Text: "On linux"},
		{Level: 2, ID: "configure", Text: "Configure"},
	}, page.TOC)
}

func TestRender_NoHeadings(t *testing.T) {
	t.Parallel()

	page, err := render.New().Render("just text")
	require.NoError(t, err)
	assert.Empty(t, page.Title)
	assert.NotNil(t, page.TOC)
	assert.Empty(t, page.TOC)
}

func TestRender_DocLinks(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"setup": true}
	r := render.New(render.WithDocLinks(func(id string) bool { return known[id] }))

	page, err := r.Render("See [Setup](#setup), [below](#later) and [site](https://example.com).")
	require.NoError(t, err)

	assert.Contains(t, page.HTML, `<a href="#setup" data-doc="setup">Setup</a>`)
	assert.Contains(t, page.HTML, `<a href="#later">below</a>`)
	assert.Contains(t, page.HTML, `<a href="https://example.com">site</a>`)
}

func TestRender_ImagePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    *render.Renderer
		want string
	}{
		{"default rewrite", render.New(), `src="./src/assets/diagram.png"`},
		{"custom rewrite", render.New(render.WithImagePrefix("../../", "/static/")), `src="/static/assets/diagram.png"`},
		{"disabled", render.New(render.WithImagePrefix("", "")), `src="../../assets/diagram.png"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, err := tt.r.Render("![Diagram](../../assets/diagram.png)")
			require.NoError(t, err)
			assert.Contains(t, page.HTML, tt.want)
		})
	}

	page, err := render.New().Render("![Logo](images/logo.png)")
	require.NoError(t, err)
	assert.Contains(t, page.HTML, `src="images/logo.png"`)
}

func TestRender_GFMAndCode(t *testing.T) {
	t.Parallel()

	md := "| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfunc main() {}\n```\n"
	page, err := render.New().Render(md)
	require.NoError(t, err)

	assert.Contains(t, page.HTML, "<table>")
	assert.Contains(t, page.HTML, "<pre")
	assert.Contains(t, page.HTML, "main")
}

func TestRender_Concurrent(t *testing.T) {
	t.Parallel()

	r := render.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := r.Render("# Title\n\n## Part")
			assert.NoError(t, err)
			assert.Len(t, page.TOC, 2)
		}()
	}
	wg.Wait()
}
