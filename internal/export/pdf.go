// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/publication-engine/internal/query"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// Vertical layout constants, in the same units the PDF renderer uses.
const (
	pageTop      = 10
	headerStep   = 10
	fieldStep    = 6
	doiStep      = 10
	blockSpacing = 4
	pageBreakY   = 270
)

// Line is one laid-out text line with its vertical offset on the page.
type Line struct {
	Text     string
	Y        int
	Bold     bool
	FontSize int
	LinkURL  string
}

// Page is one page of laid-out lines.
type Page struct {
	Lines []Line
}

// Document is the paginated layout of an export: what a PDF renderer would
// draw, minus the bytes.
type Document struct {
	Pages []Page
}

// BuildDocument lays out the display sequence: group headers as bold
// section breaks, publications as fixed field blocks, with a page break
// whenever the vertical offset passes the threshold.
func BuildDocument(items []types.GroupedItem) Document {
	var (
		doc  Document
		page Page
		y    = pageTop
	)

	emit := func(l Line) {
		l.Y = y
		page.Lines = append(page.Lines, l)
	}

	for _, it := range items {
		if it.IsHeader() {
			emit(Line{Text: it.Header, Bold: true, FontSize: 12})
			y += headerStep
			continue
		}

		p := it.Pub
		emit(Line{Text: "Title: " + p.Title, FontSize: 10})
		y += fieldStep
		emit(Line{Text: "Authors: " + strings.Join(p.Authors, ", "), FontSize: 10})
		y += fieldStep
		emit(Line{Text: "Year: " + yearOrNA(p.Year), FontSize: 10})
		y += fieldStep
		emit(Line{Text: "Type: " + query.TypeLabel(p.Type), FontSize: 10})
		y += fieldStep
		if p.Venue != "" {
			emit(Line{Text: "Venue: " + p.Venue, FontSize: 10})
			y += fieldStep
		}
		if p.DOI != "" {
			emit(Line{Text: "DOI: " + p.DOI, FontSize: 10, LinkURL: "https://doi.org/" + p.DOI})
			y += doiStep
		}

		y += blockSpacing
		if y > pageBreakY {
			doc.Pages = append(doc.Pages, page)
			page = Page{}
			y = pageTop
		}
	}

	if len(page.Lines) > 0 {
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}

// WriteText renders the document as plain text with page separators.
// Bold lines become underlined section headings.
func (d Document) WriteText(w io.Writer) error {
	for i, page := range d.Pages {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n--- page %d ---\n\n", i+1); err != nil {
				return err
			}
		}
		for _, l := range page.Lines {
			if _, err := fmt.Fprintln(w, l.Text); err != nil {
				return err
			}
			if l.Bold {
				if _, err := fmt.Fprintln(w, strings.Repeat("=", len(l.Text))); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func yearOrNA(year int) string {
	if year == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", year)
}
