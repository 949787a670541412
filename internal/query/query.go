// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query applies filter, sort, and grouping passes to a fetched
// publication set, producing the ordered display sequence. Every pass
// derives a fresh sequence; the fetched set is never mutated.
package query

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/publication-engine/pkg/types"
)

// Sort keys.
const (
	SortByYear  = "year"
	SortByTitle = "title"
)

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Grouping modes. An empty GroupBy skips grouping entirely; GroupByNone
// still produces a single "All Publications" header.
const (
	GroupByYear   = "year"
	GroupByType   = "type"
	GroupByAuthor = "author"
	GroupByNone   = "none"
)

// Options selects the filter, sort, and grouping passes. Zero values
// degrade each pass to a no-op: YearFilter 0 keeps all years, an empty
// SortBy skips sorting, an empty GroupBy skips grouping.
type Options struct {
	YearFilter int
	SortBy     string
	SortOrder  string
	GroupBy    string
}

// Apply runs the pipeline in fixed order: filter, then sort, then group.
// The order matters: grouping partitions the already-sorted sequence, so
// members inside each group keep their sorted relative order.
func Apply(all []types.Publication, opts Options) []types.GroupedItem {
	pubs := filterByYear(all, opts.YearFilter)
	sortPublications(pubs, opts)
	return group(pubs, opts.GroupBy)
}

// filterByYear keeps publications matching the filter year, or all of them
// when the filter is unset. It always copies so later passes cannot touch
// the caller's slice.
func filterByYear(all []types.Publication, year int) []types.Publication {
	pubs := make([]types.Publication, 0, len(all))
	for _, p := range all {
		if year == 0 || p.Year == year {
			pubs = append(pubs, p)
		}
	}
	return pubs
}

// sortPublications stably sorts in place by the selected key. Missing years
// compare as 0 and missing titles as the empty string; descending order
// negates the comparison.
func sortPublications(pubs []types.Publication, opts Options) {
	if opts.SortBy != SortByYear && opts.SortBy != SortByTitle {
		return
	}

	multiplier := 1
	if opts.SortOrder == OrderDesc {
		multiplier = -1
	}

	// Collators are not safe for concurrent use, so build one per pass.
	col := collate.New(language.Und)

	sort.SliceStable(pubs, func(i, j int) bool {
		var cmp int
		switch opts.SortBy {
		case SortByYear:
			cmp = pubs[i].Year - pubs[j].Year
		case SortByTitle:
			cmp = col.CompareString(pubs[i].Title, pubs[j].Title)
		}
		return multiplier*cmp < 0
	})
}

// group partitions publications by their group key and flattens each group
// to a header followed by its members. Group keys are ordered by descending
// string comparison; this is lexicographic, not numeric, so year grouping
// only looks newest-first while all keys have the same digit width.
func group(pubs []types.Publication, groupBy string) []types.GroupedItem {
	if groupBy == "" {
		items := make([]types.GroupedItem, len(pubs))
		for i := range pubs {
			items[i] = types.PubItem(&pubs[i])
		}
		return items
	}

	type bucket struct {
		key     string
		members []*types.Publication
	}

	index := make(map[string]int)
	var buckets []bucket
	for i := range pubs {
		key := groupKey(pubs[i], groupBy)
		bi, ok := index[key]
		if !ok {
			bi = len(buckets)
			index[key] = bi
			buckets = append(buckets, bucket{key: key})
		}
		buckets[bi].members = append(buckets[bi].members, &pubs[i])
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].key > buckets[j].key
	})

	items := make([]types.GroupedItem, 0, len(pubs)+len(buckets))
	for _, b := range buckets {
		items = append(items, types.HeaderItem(b.key))
		for _, p := range b.members {
			items = append(items, types.PubItem(p))
		}
	}
	return items
}

// groupKey computes the group label for one publication.
func groupKey(p types.Publication, groupBy string) string {
	switch groupBy {
	case GroupByYear:
		if p.Year > 0 {
			return strconv.Itoa(p.Year)
		}
		return "Unknown Year"
	case GroupByType:
		return TypeLabel(p.Type)
	case GroupByAuthor:
		if len(p.Authors) > 0 {
			return p.Authors[0]
		}
		return "Unknown Author"
	default:
		return "All Publications"
	}
}

// typeLabels maps raw source category tags to display labels.
var typeLabels = map[string]string{
	"Journal Articles":                "Journal Articles",
	"Conference and Workshop Papers":  "Conference and Workshop Papers",
	"Informal and Other Publications": "Informal and Other Publications",
}

// TypeLabel returns the display label for a raw publication type tag.
func TypeLabel(rawType string) string {
	if label, ok := typeLabels[rawType]; ok {
		return label
	}
	return "Other Publications"
}
