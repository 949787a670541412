// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the publication-engine
// pipeline: the canonical Publication record, the grouped display sequence,
// and per-stage configuration.
package types

// Publication is one canonical bibliographic record produced from a raw
// source hit. Publications are immutable once normalized; display passes
// derive new sequences instead of mutating the fetched set.
type Publication struct {
	// Title is the publication title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source order. May be empty.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year, or 0 when the source value was
	// missing or unparseable.
	Year int `json:"year" yaml:"year"`

	// Type is the raw category tag from the source ("unknown" when absent).
	Type string `json:"type" yaml:"type"`

	// Venue is the journal or conference name. May be empty.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Volume is the journal volume when the source provides one.
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`

	// DOI is the bare DOI without resolver prefix. May be empty.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the source's electronic-edition link. May be empty.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Institution is the affiliation resolved by enrichment. Empty until
	// enrichment has been attempted.
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
}

// GroupedItem is one element of the display sequence: either a publication
// or a synthetic group header. Exactly one of the two is set.
type GroupedItem struct {
	// Header is the group label when this item is a header.
	Header string `json:"header,omitempty" yaml:"header,omitempty"`

	// Pub is the publication when this item is not a header.
	Pub *Publication `json:"pub,omitempty" yaml:"pub,omitempty"`
}

// IsHeader reports whether the item is a group header.
func (g GroupedItem) IsHeader() bool { return g.Pub == nil }

// HeaderItem returns a GroupedItem carrying a group label.
func HeaderItem(label string) GroupedItem { return GroupedItem{Header: label} }

// PubItem returns a GroupedItem carrying a publication.
func PubItem(p *Publication) GroupedItem { return GroupedItem{Pub: p} }
