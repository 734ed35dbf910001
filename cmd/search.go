package cmd

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/progress"
	"github.com/ziadkadry99/docsite/internal/search"
	"github.com/ziadkadry99/docsite/internal/site"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation from the terminal",
	Long: `Loads every document listed in the manifest and runs a tiered search:
title matches first, then description matches, then content matches.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 10, "maximum number of results (0 for all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("titles-only", false, "skip loading document content")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := args[0]

	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	titlesOnly, _ := cmd.Flags().GetBool("titles-only")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	s, err := loadSite(cfg, logger)
	if err != nil {
		return err
	}

	if !titlesOnly {
		res, err := s.Preload(ctx, cfg.PreloadConcurrency, progress.NewReporter("Loading documents"))
		if err != nil {
			msg := site.Describe(err)
			return fmt.Errorf("%s: %s", msg.Title, msg.Message)
		}
		if res.Failed > 0 {
			logger.Warn("some documents could not be loaded", "failed", res.Failed)
		}
	}

	results := s.Search(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printSearchResultsJSON(out, query, results)
	}
	printSearchResults(out, results)
	return nil
}

type searchResultJSON struct {
	Rank    int    `json:"rank"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Section string `json:"section,omitempty"`
	File    string `json:"file"`
	Tier    string `json:"tier"`
	Excerpt string `json:"excerpt"`
}

func printSearchResultsJSON(w io.Writer, query string, results []search.Result) error {
	out := make([]searchResultJSON, 0, len(results))
	for i, r := range results {
		out = append(out, searchResultJSON{
			Rank:    i + 1,
			ID:      r.ID,
			Title:   r.Title,
			Section: r.SectionTitle,
			File:    r.File,
			Tier:    r.Tier.String(),
			Excerpt: stripMarks(r.Excerpt),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"query": query, "results": out})
}

func printSearchResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "Found %d results:\n\n", len(results))
	for i, r := range results {
		section := ""
		if r.SectionTitle != "" {
			section = fmt.Sprintf(" [%s]", r.SectionTitle)
		}
		fmt.Fprintf(w, "  %d. %s%s\n", i+1, r.Title, section)
		fmt.Fprintf(w, "     id: %s  file: %s  matched: %s\n", r.ID, r.File, r.Tier)
		fmt.Fprintf(w, "     %s\n\n", stripMarks(r.Excerpt))
	}
}

var markTag = regexp.MustCompile(`</?mark>`)

// stripMarks drops highlight tags and unescapes the fragment for terminal output.
func stripMarks(fragment string) string {
	return html.UnescapeString(markTag.ReplaceAllString(fragment, ""))
}
