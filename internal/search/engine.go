package search

import (
	"fmt"
	"strings"
)

// Tier is the priority bucket a result falls into. Results are ordered by
// tier and never re-scored inside one.
type Tier int

const (
	TierTitle Tier = iota
	TierDescription
	TierContent
)

func (t Tier) String() string {
	switch t {
	case TierTitle:
		return "title"
	case TierDescription:
		return "description"
	case TierContent:
		return "content"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// MarshalText renders the tier by name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Result is one search hit, ready for display. HighlightedTitle and Excerpt
// are HTML fragments.
type Result struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	HighlightedTitle string `json:"highlighted_title"`
	Excerpt          string `json:"excerpt"`
	SectionTitle     string `json:"section"`
	File             string `json:"file"`
	Tier             Tier   `json:"tier"`
}

const (
	DefaultContextChars  = 50
	DefaultFallbackChars = 100
	DefaultPlaceholder   = "No description available"
)

// Engine runs queries against an Index. The zero value uses the defaults.
type Engine struct {
	// ContextChars is how many characters of content to keep on each side
	// of the first match in an excerpt.
	ContextChars int
	// FallbackChars is the length of the content prefix shown when the
	// content itself does not contain the query.
	FallbackChars int
	// Placeholder is shown for results with neither description nor content.
	Placeholder string
	// Limit caps the number of results; zero means no cap.
	Limit int
}

var defaultEngine = &Engine{}

// Search runs query against idx with the default engine settings.
func Search(idx *Index, query string) []Result {
	return defaultEngine.Search(idx, query)
}

// Search matches query against the title, description and content of every
// entry in idx. A blank query returns nil, meaning no search is active; a
// query without hits returns an empty, non-nil slice.
func (e *Engine) Search(idx *Index, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return e.SearchEntries(idx.Entries(), query)
}

// SearchEntries is Search over an explicit entry list. Entry order is the
// tie-break inside each tier.
func (e *Engine) SearchEntries(entries []Entry, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	m := newMatcher(query)

	var tiers [3][]Entry
	for _, entry := range entries {
		switch {
		case m.matches(entry.Title):
			tiers[TierTitle] = append(tiers[TierTitle], entry)
		case m.matches(entry.Description):
			tiers[TierDescription] = append(tiers[TierDescription], entry)
		case m.matches(entry.Content):
			tiers[TierContent] = append(tiers[TierContent], entry)
		}
	}

	results := make([]Result, 0, len(tiers[0])+len(tiers[1])+len(tiers[2]))
	for tier, group := range tiers {
		for _, entry := range group {
			if e.Limit > 0 && len(results) == e.Limit {
				return results
			}
			results = append(results, Result{
				ID:               entry.ID,
				Title:            entry.Title,
				HighlightedTitle: m.highlight(entry.Title),
				Excerpt:          e.excerpt(entry, m),
				SectionTitle:     entry.SectionTitle,
				File:             entry.File,
				Tier:             Tier(tier),
			})
		}
	}
	return results
}

func (e *Engine) contextChars() int {
	if e.ContextChars > 0 {
		return e.ContextChars
	}
	return DefaultContextChars
}

func (e *Engine) fallbackChars() int {
	if e.FallbackChars > 0 {
		return e.FallbackChars
	}
	return DefaultFallbackChars
}

func (e *Engine) placeholder() string {
	if e.Placeholder != "" {
		return e.Placeholder
	}
	return DefaultPlaceholder
}
