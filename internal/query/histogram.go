// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"sort"

	"github.com/pdiddy/publication-engine/pkg/types"
)

// YearCount is one bar of the publications-per-year distribution.
type YearCount struct {
	Year  int
	Count int
}

// PublicationsPerYear counts publications by year, ascending. Publications
// with an unknown year are excluded.
func PublicationsPerYear(pubs []types.Publication) []YearCount {
	byYear := make(map[int]int)
	for _, p := range pubs {
		if p.Year > 0 {
			byYear[p.Year]++
		}
	}

	counts := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		counts = append(counts, YearCount{Year: year, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})
	return counts
}
