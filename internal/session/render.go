// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/publication-engine/internal/page"
	"github.com/pdiddy/publication-engine/internal/query"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// FormatList writes the display items as human-readable field blocks.
// Titles are run through the session highlighter against the queried name,
// and authors carry their resolved profile URLs when urls has them.
func (s *Session) FormatList(w io.Writer, items []types.GroupedItem, urls map[string]string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No publications match the current filters.")
		return
	}

	for _, it := range items {
		if it.IsHeader() {
			fmt.Fprintf(w, "\n== %s ==\n\n", it.Header)
			continue
		}

		p := it.Pub
		fmt.Fprintf(w, "Title: %s\n", s.Highlighter.Highlight(p.Title, s.name))

		authorParts := make([]string, len(p.Authors))
		for i, a := range p.Authors {
			if u := urls[a]; u != "" {
				authorParts[i] = fmt.Sprintf("%s <%s>", a, u)
			} else {
				authorParts[i] = a
			}
		}
		fmt.Fprintf(w, "Authors: %s\n", strings.Join(authorParts, ", "))

		year := "N/A"
		if p.Year > 0 {
			year = fmt.Sprintf("%d", p.Year)
		}
		fmt.Fprintf(w, "Year: %s | Type: %s\n", year, query.TypeLabel(p.Type))
		if p.Venue != "" {
			fmt.Fprintf(w, "Venue: %s\n", p.Venue)
		}
		if p.Institution != "" {
			fmt.Fprintf(w, "Institution: %s\n", p.Institution)
		}
		if p.DOI != "" {
			fmt.Fprintf(w, "DOI: https://doi.org/%s\n", p.DOI)
		}
		fmt.Fprintln(w)
	}
}

// FormatControls writes the pagination row: « ‹ 1 … 4 [5] 6 … 10 › ».
// Disabled navigation arrows are rendered parenthesized. A suppressed
// control set (one page or less) writes nothing.
func FormatControls(w io.Writer, c page.Controls, current, total int) {
	if len(c.Items) == 0 {
		return
	}

	var parts []string
	arrow := func(enabled bool, sym string) string {
		if enabled {
			return sym
		}
		return "(" + sym + ")"
	}
	parts = append(parts, arrow(c.First, "«"), arrow(c.Prev, "‹"))
	for _, it := range c.Items {
		switch {
		case it.Ellipsis:
			parts = append(parts, "…")
		case it.Active:
			parts = append(parts, fmt.Sprintf("[%d]", it.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", it.Page))
		}
	}
	parts = append(parts, arrow(c.Next, "›"), arrow(c.Last, "»"))

	fmt.Fprintf(w, "Page %d of %d   %s\n", current, total, strings.Join(parts, " "))
}

// FormatJSON writes the display items as indented JSON.
func FormatJSON(w io.Writer, items []types.GroupedItem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// FormatHistogram writes the publications-per-year distribution as an
// aligned bar chart.
func FormatHistogram(w io.Writer, counts []query.YearCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(w, "Publications per year:")
	for _, yc := range counts {
		fmt.Fprintf(w, "  %4d  %3d  %s\n", yc.Year, yc.Count, strings.Repeat("#", yc.Count))
	}
}
