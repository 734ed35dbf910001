package search

import (
	"html"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// excerpt picks the snippet shown under a result: a matching description,
// then a window around the first content match, then the plain description,
// then the placeholder.
func (e *Engine) excerpt(entry Entry, m *matcher) string {
	hasDesc := strings.TrimSpace(entry.Description) != ""
	switch {
	case hasDesc && m.matches(entry.Description):
		return m.highlight(entry.Description)
	case strings.TrimSpace(entry.Content) != "":
		return e.contentExcerpt(entry.Content, m)
	case hasDesc:
		return html.EscapeString(entry.Description)
	default:
		return html.EscapeString(e.placeholder())
	}
}

func (e *Engine) contentExcerpt(content string, m *matcher) string {
	runes := []rune(content)

	loc := m.re.FindStringIndex(content)
	if loc == nil {
		limit := e.fallbackChars()
		if len(runes) > limit {
			return html.EscapeString(string(runes[:limit])) + ellipsis
		}
		return html.EscapeString(content)
	}

	ctx := e.contextChars()
	matchStart := utf8.RuneCountInString(content[:loc[0]])
	matchEnd := matchStart + utf8.RuneCountInString(content[loc[0]:loc[1]])
	start := max(0, matchStart-ctx)
	end := min(len(runes), matchEnd+ctx)

	window := runes[start:end]
	lo, hi := 0, len(window)
	relStart, relEnd := matchStart-start, matchEnd-start

	var prefix, suffix string
	if start > 0 {
		prefix = ellipsis
		// Drop a word cut in half by the window, but never the match itself.
		if runes[start-1] != ' ' && runes[start] != ' ' {
			if sp := indexSpace(window[:relStart]); sp >= 0 {
				lo = sp + 1
			}
		}
	}
	if end < len(runes) {
		suffix = ellipsis
		if runes[end] != ' ' && runes[end-1] != ' ' {
			if sp := lastIndexSpace(window[relEnd:]); sp >= 0 {
				hi = relEnd + sp
			}
		}
	}

	snippet := strings.TrimSpace(string(window[lo:hi]))
	return prefix + m.highlight(snippet) + suffix
}

func indexSpace(rs []rune) int {
	for i, r := range rs {
		if r == ' ' {
			return i
		}
	}
	return -1
}

func lastIndexSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}
