// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package page slices a display sequence into pages and models the windowed
// page-number controls shown around the current page.
package page

import "github.com/pdiddy/publication-engine/pkg/types"

// TotalPages returns ceil(itemCount/pageSize). A non-positive page size
// counts as one page per item set.
func TotalPages(itemCount, pageSize int) int {
	if itemCount <= 0 {
		return 0
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Slice returns the items of the 1-based page: the half-open range
// [(page-1)*pageSize, page*pageSize) clamped to the sequence. Pages past
// the end are empty.
func Slice(items []types.GroupedItem, page, pageSize int) []types.GroupedItem {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ShowPageNumber reports whether the control for page i is visible: the
// first page, the last page, and the window of one page around the current
// page are always shown.
func ShowPageNumber(i, current, total int) bool {
	return i == 1 || i == total || (i >= current-1 && i <= current+1)
}

// ShowEllipsis reports whether an ellipsis marker appears at position i:
// after the first page when the window has moved past it, and before the
// last page when the window has not yet reached it.
func ShowEllipsis(i, current, total int) bool {
	return (i == 2 && current > 4) || (i == total-1 && current < total-3)
}

// Item is one element of the pagination control row: a numbered page button
// or an ellipsis marker.
type Item struct {
	Page     int
	Ellipsis bool
	Active   bool
}

// Controls models the full pagination row. A single page (or none) yields
// the zero value: no items and every navigation control disabled.
type Controls struct {
	// First, Prev, Next, Last report whether the corresponding
	// navigation control is enabled.
	First bool
	Prev  bool
	Next  bool
	Last  bool

	Items []Item
}

// BuildControls computes the control row for the current page. Navigation
// backwards is enabled off the first page, forwards off the last.
func BuildControls(current, total int) Controls {
	if total <= 1 {
		return Controls{}
	}

	c := Controls{
		First: current > 1,
		Prev:  current > 1,
		Next:  current < total,
		Last:  current < total,
	}
	for i := 1; i <= total; i++ {
		switch {
		case ShowPageNumber(i, current, total):
			c.Items = append(c.Items, Item{Page: i, Active: i == current})
		case ShowEllipsis(i, current, total):
			c.Items = append(c.Items, Item{Ellipsis: true})
		}
	}
	return c
}
