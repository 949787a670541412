package institution

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pdiddy/publication-engine/pkg/types"
)

const workJSON = `{
  "authorships": [
    {"author": {"display_name": "Someone Else"}, "institutions": [{"display_name": "Wrong Lab"}]},
    {"author": {"display_name": "Jane Smith"}, "institutions": [{"display_name": "Example University"}, {"display_name": "Second Affiliation"}]}
  ]
}`

func newTestClient(ts *httptest.Server) *Client {
	c := New(ts.Client(), types.InstitutionConfig{Email: "test@example.com"})
	c.WorksBase = ts.URL
	return c
}

func TestEnrichAppliesInstitutionToWholeBatch(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, workJSON)
	}))
	defer ts.Close()

	pubs := []types.Publication{
		{Title: "Old", Year: 2015, DOI: "10.1000/old"},
		{Title: "New", Year: 2022, DOI: "10.1000/new"},
		{Title: "No DOI", Year: 2023},
	}
	enriched := newTestClient(ts).Enrich(context.Background(), pubs, "jane smith")

	if gotPath != "/doi:10.1000/new" {
		t.Errorf("looked up %q, want the DOI of the most recent publication", gotPath)
	}
	for i, p := range enriched {
		if p.Institution != "Example University" {
			t.Errorf("enriched[%d].Institution = %q, want applied to every publication", i, p.Institution)
		}
	}
	for i, p := range pubs {
		if p.Institution != "" {
			t.Errorf("input batch mutated at %d: %q", i, p.Institution)
		}
	}
}

func TestEnrichNoEligiblePublicationSkipsNetwork(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, workJSON)
	}))
	defer ts.Close()

	pubs := []types.Publication{
		{Title: "A"},            // no DOI, no year
		{Title: "B", Year: 2020}, // no DOI
	}
	enriched := newTestClient(ts).Enrich(context.Background(), pubs, "Jane Smith")

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("endpoint called %d times, want 0", n)
	}
	for i, p := range enriched {
		if p.Institution != NoData {
			t.Errorf("enriched[%d].Institution = %q, want %q", i, p.Institution, NoData)
		}
	}
}

func TestEnrichFailuresDegradeToNoData(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"authorships": "oops`)
		}},
		{"no matching authorship", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"authorships":[{"author":{"display_name":"Someone Else"},"institutions":[]}]}`)
		}},
		{"matching authorship without institutions", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"authorships":[{"author":{"display_name":"Jane Smith"},"institutions":[]}]}`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			pubs := []types.Publication{{Title: "A", Year: 2022, DOI: "10.1000/x"}}
			enriched := newTestClient(ts).Enrich(context.Background(), pubs, "Jane Smith")
			if enriched[0].Institution != NoData {
				t.Errorf("Institution = %q, want %q", enriched[0].Institution, NoData)
			}
		})
	}
}

func TestEnrichSendsMailto(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, workJSON)
	}))
	defer ts.Close()

	pubs := []types.Publication{{Title: "A", Year: 2022, DOI: "10.1000/x"}}
	newTestClient(ts).Enrich(context.Background(), pubs, "Jane Smith")
	if !strings.Contains(gotQuery, "mailto=test%40example.com") {
		t.Errorf("query = %q, want mailto parameter", gotQuery)
	}
}
