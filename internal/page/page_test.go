package page

import (
	"fmt"
	"testing"

	"github.com/pdiddy/publication-engine/pkg/types"
)

func itemsFixture(n int) []types.GroupedItem {
	items := make([]types.GroupedItem, n)
	for i := range items {
		items[i] = types.HeaderItem(fmt.Sprintf("item-%d", i))
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestSliceReconstructsSequence(t *testing.T) {
	items := itemsFixture(23)
	size := 5
	total := TotalPages(len(items), size)

	var rebuilt []types.GroupedItem
	for p := 1; p <= total; p++ {
		rebuilt = append(rebuilt, Slice(items, p, size)...)
	}
	if len(rebuilt) != len(items) {
		t.Fatalf("rebuilt %d items, want %d", len(rebuilt), len(items))
	}
	for i := range items {
		if rebuilt[i].Header != items[i].Header {
			t.Fatalf("rebuilt[%d] = %q, want %q", i, rebuilt[i].Header, items[i].Header)
		}
	}
}

func TestSliceOutOfRange(t *testing.T) {
	items := itemsFixture(5)
	if got := Slice(items, 3, 5); got != nil {
		t.Errorf("Slice past the end = %v, want nil", got)
	}
	if got := Slice(items, 0, 5); got != nil {
		t.Errorf("Slice page 0 = %v, want nil", got)
	}
}

func TestShowPageNumber(t *testing.T) {
	// current=5, total=10: visible pages are 1, 4, 5, 6, 10.
	wantVisible := map[int]bool{1: true, 4: true, 5: true, 6: true, 10: true}
	for i := 1; i <= 10; i++ {
		if got := ShowPageNumber(i, 5, 10); got != wantVisible[i] {
			t.Errorf("ShowPageNumber(%d, 5, 10) = %v, want %v", i, got, wantVisible[i])
		}
	}
}

func TestShowEllipsis(t *testing.T) {
	tests := []struct {
		i, current, total int
		want              bool
	}{
		{2, 5, 10, true},   // window has moved past page 2
		{2, 4, 10, false},  // current must exceed 4
		{9, 5, 10, true},   // window not yet near the end
		{9, 7, 10, false},  // current >= total-3
		{5, 5, 10, false},  // only positions 2 and total-1 carry ellipses
	}
	for _, tt := range tests {
		if got := ShowEllipsis(tt.i, tt.current, tt.total); got != tt.want {
			t.Errorf("ShowEllipsis(%d, %d, %d) = %v, want %v", tt.i, tt.current, tt.total, got, tt.want)
		}
	}
}

func TestBuildControlsMiddlePage(t *testing.T) {
	c := BuildControls(5, 10)
	if !c.First || !c.Prev || !c.Next || !c.Last {
		t.Errorf("middle page should enable all navigation: %+v", c)
	}

	// Expect: 1, …, 4, [5], 6, …, 10.
	var shape []string
	for _, it := range c.Items {
		switch {
		case it.Ellipsis:
			shape = append(shape, "...")
		case it.Active:
			shape = append(shape, fmt.Sprintf("[%d]", it.Page))
		default:
			shape = append(shape, fmt.Sprintf("%d", it.Page))
		}
	}
	want := []string{"1", "...", "4", "[5]", "6", "...", "10"}
	if len(shape) != len(want) {
		t.Fatalf("control shape = %v, want %v", shape, want)
	}
	for i := range want {
		if shape[i] != want[i] {
			t.Fatalf("control shape = %v, want %v", shape, want)
		}
	}
}

func TestBuildControlsEdges(t *testing.T) {
	first := BuildControls(1, 10)
	if first.First || first.Prev {
		t.Errorf("page 1 must disable first/prev: %+v", first)
	}
	if !first.Next || !first.Last {
		t.Errorf("page 1 must enable next/last: %+v", first)
	}

	last := BuildControls(10, 10)
	if last.Next || last.Last {
		t.Errorf("last page must disable next/last: %+v", last)
	}
}

func TestBuildControlsSinglePageSuppressed(t *testing.T) {
	c := BuildControls(1, 1)
	if len(c.Items) != 0 || c.First || c.Prev || c.Next || c.Last {
		t.Errorf("single page must suppress all controls: %+v", c)
	}
}
