package export

import (
	"strings"
	"testing"

	"github.com/pdiddy/publication-engine/pkg/types"
)

func TestNewBibEntryKeyFromDOI(t *testing.T) {
	p := &types.Publication{Title: "A Study", DOI: "10.1145/3292500.3330919"}
	e := NewBibEntry(p)
	if e.Key != "3292500.3330919" {
		t.Errorf("Key = %q, want DOI tail", e.Key)
	}
}

func TestNewBibEntryKeyFromTitle(t *testing.T) {
	p := &types.Publication{Title: "A  Study of\tThings"}
	e := NewBibEntry(p)
	if e.Key != "a_study_of_things" {
		t.Errorf("Key = %q, want slugified title", e.Key)
	}
}

func TestNewBibEntryRandomKeyFallback(t *testing.T) {
	e := NewBibEntry(&types.Publication{})
	if !strings.HasPrefix(e.Key, "entry_") || len(e.Key) != len("entry_")+8 {
		t.Errorf("Key = %q, want random entry_ fallback", e.Key)
	}
}

func TestBibEntryStringOmitsEmptyFields(t *testing.T) {
	p := &types.Publication{
		Title:   "A Study",
		Authors: []string{"Jane Smith", "Bob Ray"},
		Year:    2021,
		DOI:     "10.1000/xyz",
	}
	s := NewBibEntry(p).String()

	if !strings.Contains(s, "author       = {Jane Smith and Bob Ray},") {
		t.Errorf("missing author field:\n%s", s)
	}
	if !strings.Contains(s, "year         = {2021},") {
		t.Errorf("missing year field:\n%s", s)
	}
	for _, absent := range []string{"journal", "volume", "url", "eprint", "timestamp", "biburl", "bibsource"} {
		if strings.Contains(s, absent+" ") {
			t.Errorf("field %q should be omitted when empty:\n%s", absent, s)
		}
	}
	if !strings.HasPrefix(s, "@article{DBLP:xyz,") {
		t.Errorf("unexpected entry head:\n%s", s)
	}
}

func TestToBibTeXSkipsHeaders(t *testing.T) {
	pub := types.Publication{Title: "A Study", Year: 2020}
	items := []types.GroupedItem{
		types.HeaderItem("2020"),
		types.PubItem(&pub),
	}
	s := ToBibTeX(items)
	if strings.Count(s, "@article") != 1 {
		t.Errorf("want exactly one entry, got:\n%s", s)
	}
	if strings.Contains(s, "{2020,") {
		t.Errorf("group header leaked into output:\n%s", s)
	}
}
