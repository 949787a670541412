// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package institution enriches a fetched publication batch with the
// researcher's affiliation, looked up on OpenAlex by the DOI of their most
// recent publication.
package institution

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pdiddy/publication-engine/internal/httputil"
	"github.com/pdiddy/publication-engine/internal/names"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// NoData is the institution value applied when no affiliation can be
// resolved for the batch.
const NoData = "No Institution Data Available"

const defaultWorksBase = "https://api.openalex.org/works"

// Client queries the OpenAlex works endpoint.
type Client struct {
	HTTP *http.Client
	Cfg  types.InstitutionConfig

	// WorksBase is the works endpoint. Tests substitute an httptest server.
	WorksBase string
}

// New returns a Client using the default OpenAlex endpoint.
func New(httpClient *http.Client, cfg types.InstitutionConfig) *Client {
	return &Client{HTTP: httpClient, Cfg: cfg, WorksBase: defaultWorksBase}
}

// Enrich resolves one institution name for the whole batch and returns a new
// slice with it applied to every publication. The lookup work is the most
// recent publication carrying both a DOI and a year; with no such
// publication the batch is marked NoData without any network call. The
// matched authorship is the one whose normalized display name equals the
// normalized query name, and its first listed institution wins.
//
// Applying one institution to the entire batch assumes all of a person's
// publications share their most recent affiliation. Enrich never fails:
// network and parse errors degrade to NoData for the batch.
func (c *Client) Enrich(ctx context.Context, pubs []types.Publication, authorName string) []types.Publication {
	latest := latestWithDOI(pubs)
	if latest == nil {
		return applyInstitution(pubs, NoData)
	}

	reqURL := c.WorksBase + "/doi:" + latest.DOI
	if c.Cfg.Email != "" {
		reqURL += "?mailto=" + url.QueryEscape(c.Cfg.Email)
	}

	var work workResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.Cfg.UserAgent, &work); err != nil {
		return applyInstitution(pubs, NoData)
	}

	return applyInstitution(pubs, institutionFor(work, authorName))
}

// latestWithDOI returns the most recent publication that has both a DOI and
// a known year, or nil. Ties keep the earlier batch position.
func latestWithDOI(pubs []types.Publication) *types.Publication {
	var latest *types.Publication
	for i := range pubs {
		p := &pubs[i]
		if p.DOI == "" || p.Year == 0 {
			continue
		}
		if latest == nil || p.Year > latest.Year {
			latest = p
		}
	}
	return latest
}

func institutionFor(work workResponse, authorName string) string {
	queried := names.Normalize(authorName)
	for _, as := range work.Authorships {
		if names.Normalize(as.Author.DisplayName) != queried {
			continue
		}
		if len(as.Institutions) > 0 && as.Institutions[0].DisplayName != "" {
			return as.Institutions[0].DisplayName
		}
		break
	}
	return NoData
}

func applyInstitution(pubs []types.Publication, name string) []types.Publication {
	enriched := make([]types.Publication, len(pubs))
	copy(enriched, pubs)
	for i := range enriched {
		enriched[i].Institution = name
	}
	return enriched
}

// OpenAlex works API JSON structures.
type workResponse struct {
	Authorships []authorship `json:"authorships"`
}

type authorship struct {
	Author       author        `json:"author"`
	Institutions []institution `json:"institutions"`
}

type author struct {
	DisplayName string `json:"display_name"`
}

type institution struct {
	DisplayName string `json:"display_name"`
}
