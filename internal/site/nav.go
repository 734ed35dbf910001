package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/navigation"
)

// RenderNav renders the sidebar for a navigation snapshot as nested
// <ul><li> HTML. Branches in the expansion set get the "expanded" class and
// the current document gets "active".
func RenderNav(tree *doctree.Tree, snap navigation.Snapshot) string {
	expanded := make(map[string]bool, len(snap.Expanded))
	for _, id := range snap.Expanded {
		expanded[id] = true
	}

	var b strings.Builder
	for _, sec := range tree.Sections() {
		b.WriteString(`<div class="nav-section">` + "\n")
		fmt.Fprintf(&b, `<div class="nav-section-title">%s%s</div>`+"\n", iconHTML(sec.Icon), html.EscapeString(sec.Title))
		renderItems(&b, sec.Items, snap.Current, expanded)
		b.WriteString("</div>\n")
	}
	return b.String()
}

func iconHTML(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(`<i class="%s"></i> `, html.EscapeString(icon))
}

func renderItems(b *strings.Builder, items []*doctree.Node, current string, expanded map[string]bool) {
	if len(items) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, n := range items {
		id := html.EscapeString(n.ID)
		title := html.EscapeString(n.Title)
		active := ""
		if n.ID == current {
			active = ` class="active"`
		}

		switch n.Kind() {
		case doctree.Leaf:
			fmt.Fprintf(b, `<li class="file"><a href="#%s" data-doc="%s"%s>%s</a></li>`+"\n", id, id, active, title)
		case doctree.Branch:
			state := ""
			if expanded[n.ID] {
				state = " expanded"
			}
			fmt.Fprintf(b, `<li class="dir%s"><span class="dir-toggle" data-toggle="%s"></span><a href="#%s" data-doc="%s"%s>%s</a>`+"\n", state, id, id, id, active, title)
			renderItems(b, n.Children, current, expanded)
			b.WriteString("</li>\n")
		}
	}
	b.WriteString("</ul>\n")
}
