// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a filtered publication sequence to BibTeX text
// and to a paginated, PDF-like document layout. Only the record-to-entry
// mapping lives here; byte-level rendering belongs to the caller.
package export

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/publication-engine/pkg/types"
)

// BibEntry is one BibTeX entry. Empty fields are omitted from the output.
type BibEntry struct {
	Key        string
	Type       string
	Author     string
	Title      string
	Journal    string
	Volume     string
	Year       string
	URL        string
	DOI        string
	EprintType string
	Eprint     string
	Timestamp  string
	BibURL     string
	BibSource  string
}

// NewBibEntry maps a publication onto a BibTeX entry. The entry key is the
// DOI tail when a DOI exists, the slugified title otherwise, and a random
// identifier as a last resort.
func NewBibEntry(p *types.Publication) BibEntry {
	e := BibEntry{
		Key:     bibKey(p),
		Type:    "article",
		Title:   p.Title,
		Journal: p.Venue,
		Volume:  p.Volume,
		URL:     p.URL,
		DOI:     p.DOI,
	}
	if len(p.Authors) > 0 {
		e.Author = strings.Join(p.Authors, " and ")
	}
	if p.Year > 0 {
		e.Year = strconv.Itoa(p.Year)
	}
	return e
}

// String renders the entry in DBLP's field-aligned style.
func (e BibEntry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{DBLP:%s,\n", e.Type, e.Key)

	fields := []struct {
		name  string
		value string
	}{
		{"author", e.Author},
		{"title", e.Title},
		{"journal", e.Journal},
		{"volume", e.Volume},
		{"year", e.Year},
		{"url", e.URL},
		{"doi", e.DOI},
		{"eprinttype", e.EprintType},
		{"eprint", e.Eprint},
		{"timestamp", e.Timestamp},
		{"biburl", e.BibURL},
		{"bibsource", e.BibSource},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&b, "  %-12s = {%s},\n", f.name, f.value)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// ToBibTeX renders every non-header item of the display sequence as a
// BibTeX entry and concatenates them.
func ToBibTeX(items []types.GroupedItem) string {
	var b strings.Builder
	for _, it := range items {
		if it.IsHeader() {
			continue
		}
		b.WriteString(NewBibEntry(it.Pub).String())
		b.WriteString("\n")
	}
	return b.String()
}

var slugSpace = regexp.MustCompile(`\s+`)

func bibKey(p *types.Publication) string {
	if p.DOI != "" {
		parts := strings.Split(p.DOI, "/")
		return parts[len(parts)-1]
	}
	if p.Title != "" {
		return strings.ToLower(slugSpace.ReplaceAllString(strings.TrimSpace(p.Title), "_"))
	}
	return fmt.Sprintf("entry_%08x", rand.Uint32())
}
