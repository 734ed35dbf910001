package search

import (
	"html"
	"regexp"
	"strings"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// matcher holds the per-query state shared by filtering, excerpting and
// highlighting so a query is lowered and compiled once.
type matcher struct {
	lower string
	re    *regexp.Regexp
}

func newMatcher(query string) *matcher {
	return &matcher{
		lower: strings.ToLower(query),
		re:    regexp.MustCompile("(?i)" + regexp.QuoteMeta(query)),
	}
}

func (m *matcher) matches(s string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), m.lower)
}

// highlight escapes s for HTML and wraps every match in a mark element.
func (m *matcher) highlight(s string) string {
	locs := m.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return html.EscapeString(s)
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(html.EscapeString(s[last:loc[0]]))
		b.WriteString(markOpen)
		b.WriteString(html.EscapeString(s[loc[0]:loc[1]]))
		b.WriteString(markClose)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(s[last:]))
	return b.String()
}

// Highlight wraps every case-insensitive occurrence of query in s with
// <mark></mark>, escaping the rest of s as HTML. The query is matched
// literally. An empty query returns s unchanged.
func Highlight(s, query string) string {
	if query == "" {
		return s
	}
	return newMatcher(query).highlight(s)
}
