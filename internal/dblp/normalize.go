// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dblp

import (
	"strings"

	"github.com/pdiddy/publication-engine/pkg/types"
)

// normalize converts raw hits into Publications and applies the exact-author
// and year-ceiling filters. A publication survives only when its year is
// known and at most the current calendar year, and at least one of its
// authors equals the queried name after trimming and case folding.
func (c *Client) normalize(hits []hit, name string) []types.Publication {
	queried := strings.ToLower(strings.TrimSpace(name))
	currentYear := c.Now().Year()

	var pubs []types.Publication
	for _, h := range hits {
		pub := toPublication(h.Info)
		if pub.Year == 0 || pub.Year > currentYear {
			continue
		}
		if !hasExactAuthor(pub.Authors, queried) {
			continue
		}
		pubs = append(pubs, pub)
	}
	return pubs
}

// toPublication maps one hit info payload onto the canonical record.
func toPublication(info hitInfo) types.Publication {
	pubType := info.Type
	if pubType == "" {
		pubType = "unknown"
	}

	authors := make([]string, 0, len(info.Authors.Author))
	for _, a := range info.Authors.Author {
		if a.Text != "" {
			authors = append(authors, a.Text)
		}
	}

	return types.Publication{
		Title:   string(info.Title),
		Authors: authors,
		Year:    yearOf(info.Year),
		Type:    pubType,
		Venue:   string(info.Venue),
		Volume:  string(info.Volume),
		DOI:     info.DOI,
		URL:     info.URL,
	}
}

func hasExactAuthor(authors []string, queried string) bool {
	for _, a := range authors {
		if strings.ToLower(strings.TrimSpace(a)) == queried {
			return true
		}
	}
	return false
}
