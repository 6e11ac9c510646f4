// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present renders ranked papers as a text table, JSON, or CSL-YAML.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/paper-rank/pkg/types"
)

// Output formats accepted by Write.
const (
	FormatNameTable = "table"
	FormatNameJSON  = "json"
	FormatNameCSL   = "csl"
)

// Write renders papers in the named format.
func Write(format string, papers []types.RankedPaper, w io.Writer) error {
	switch format {
	case "", FormatNameTable:
		FormatTable(papers, w)
		return nil
	case FormatNameJSON:
		return FormatJSON(papers, w)
	case FormatNameCSL:
		return FormatCSL(papers, w)
	default:
		return fmt.Errorf("unknown output format %q (want table, json, or csl)", format)
	}
}

// FormatTable writes papers as a human-readable table, best first.
func FormatTable(papers []types.RankedPaper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %-24s  %s\n",
		"Rank", "Title", "Authors", "Date", "Journal", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 133))

	for i, rp := range papers {
		p := rp.Paper
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %-24s  %.3f\n",
			i+1, truncate(p.Title, 60), formatAuthors(p.Authors), p.DateString(),
			truncate(p.JournalName, 24), rp.Score.Total)
	}
	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// jsonPaper is the JSON form of a ranked paper: the content fields plus the
// derived link, display date, snippet, and score card.
type jsonPaper struct {
	types.Paper
	URL     string          `json:"url,omitempty"`
	DateStr string          `json:"date_str,omitempty"`
	Snippet string          `json:"snippet,omitempty"`
	Score   types.ScoreCard `json:"score"`
}

// FormatJSON writes papers as an indented JSON array.
func FormatJSON(papers []types.RankedPaper, w io.Writer) error {
	out := make([]jsonPaper, len(papers))
	for i, rp := range papers {
		out[i] = jsonPaper{
			Paper:   rp.Paper,
			URL:     rp.Paper.URL(),
			DateStr: rp.Paper.DateString(),
			Snippet: rp.Paper.Snippet(types.SnippetMaxSize),
			Score:   rp.Score,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
