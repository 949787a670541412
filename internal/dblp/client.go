// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dblp queries the DBLP search API and normalizes its hit records
// into canonical Publication values at the boundary, so that no internal
// stage ever sees the source's polymorphic JSON shapes.
package dblp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/publication-engine/internal/httputil"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// Default DBLP endpoints. Client fields override them in tests.
const (
	defaultSearchBase     = "https://dblp.org/search/publ/api"
	defaultAuthorBase     = "https://dblp.org/search/author/api"
	defaultAuthorPageBase = "https://dblp.org/search/author"
)

// Client queries the DBLP publication and author search endpoints.
type Client struct {
	HTTP *http.Client
	Cfg  types.SourceConfig

	// SearchBase and AuthorBase are the publication and author search
	// endpoints. Tests substitute httptest servers here.
	SearchBase string
	AuthorBase string

	// Now supplies the current time for the year-ceiling filter.
	Now func() time.Time
}

// New returns a Client using the default DBLP endpoints.
func New(httpClient *http.Client, cfg types.SourceConfig) *Client {
	return &Client{
		HTTP:       httpClient,
		Cfg:        cfg,
		SearchBase: defaultSearchBase,
		AuthorBase: defaultAuthorBase,
		Now:        time.Now,
	}
}

// AuthorHit is one record from the author-search endpoint.
type AuthorHit struct {
	// Name is the raw author display name.
	Name string

	// URL is the author's profile page.
	URL string
}

// FetchPublications queries the publication-search endpoint for name and
// returns the normalized, filtered set: only publications with a known year
// no later than the current calendar year and at least one author whose
// case-insensitive trimmed name equals name. A zero-hit response yields an
// empty slice and no error.
func (c *Client) FetchPublications(ctx context.Context, name string) ([]types.Publication, error) {
	maxResults := c.Cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 1000
	}

	params := url.Values{
		"q":      {name},
		"format": {"json"},
		"h":      {fmt.Sprintf("%d", maxResults)},
	}

	var sr searchResponse
	if err := httputil.GetJSON(ctx, c.HTTP, c.SearchBase+"?"+params.Encode(), c.Cfg.UserAgent, &sr); err != nil {
		return nil, fmt.Errorf("DBLP publication search: %w", err)
	}

	return c.normalize(sr.Result.Hits.Hit, name), nil
}

// SearchAuthors queries the author-search endpoint with a bounded result
// count and returns the raw hits for the resolver to match against.
func (c *Client) SearchAuthors(ctx context.Context, name string) ([]AuthorHit, error) {
	maxResults := c.Cfg.AuthorMaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"q":      {name},
		"format": {"json"},
		"h":      {fmt.Sprintf("%d", maxResults)},
	}

	var sr searchResponse
	if err := httputil.GetJSON(ctx, c.HTTP, c.AuthorBase+"?"+params.Encode(), c.Cfg.UserAgent, &sr); err != nil {
		return nil, fmt.Errorf("DBLP author search: %w", err)
	}

	hits := make([]AuthorHit, 0, len(sr.Result.Hits.Hit))
	for _, h := range sr.Result.Hits.Hit {
		hits = append(hits, AuthorHit{Name: string(h.Info.Author), URL: h.Info.URL})
	}
	return hits, nil
}

// SearchPageURL builds the human-facing author-search page URL used as the
// resolution fallback when no profile can be matched.
func SearchPageURL(name string) string {
	return defaultAuthorPageBase + "?q=" + url.QueryEscape(name)
}
