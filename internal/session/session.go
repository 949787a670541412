// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the state of one publication-browsing session and
// orchestrates the pipeline stages: fetch, enrich, filter/sort/group,
// paginate, and render. All state lives on the Session value; there are no
// package-level singletons.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/publication-engine/internal/authors"
	"github.com/pdiddy/publication-engine/internal/dblp"
	"github.com/pdiddy/publication-engine/internal/institution"
	"github.com/pdiddy/publication-engine/internal/names"
	"github.com/pdiddy/publication-engine/internal/page"
	"github.com/pdiddy/publication-engine/internal/query"
	"github.com/pdiddy/publication-engine/pkg/types"
)

// ErrEmptyName rejects a blank researcher name before any network call.
var ErrEmptyName = errors.New("researcher name is empty")

// ErrNoMatch reports that the source returned no publication whose author
// list contains the exact queried name.
var ErrNoMatch = errors.New("no publications found for the exact author name")

// Session is the mutable state of one browsing session. The fetched set is
// created fresh on every Fetch and never mutated afterwards; Apply derives
// the display sequence from it each time.
type Session struct {
	Source      *dblp.Client
	Resolver    *authors.Resolver
	Enricher    *institution.Client
	Highlighter names.Highlighter

	name     string
	all      []types.Publication
	filtered []types.GroupedItem
}

// New wires a Session from the pipeline configuration.
func New(cfg types.PipelineConfig, httpClient *http.Client) *Session {
	source := dblp.New(httpClient, cfg.Source)
	return &Session{
		Source:   source,
		Resolver: authors.NewResolver(source),
		Enricher: institution.New(httpClient, cfg.Institution),
	}
}

// Fetch queries the source for name's publications, applies the
// exact-author and year-ceiling filters, and enriches the batch with
// institution data. A blank name returns ErrEmptyName before any network
// call; an empty filtered set returns ErrNoMatch. On failure the previous
// fetch result is discarded.
//
// A new Fetch does not cancel an in-flight one; whichever lands last
// overwrites the session state.
func (s *Session) Fetch(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	s.name = trimmed
	s.all = nil
	s.filtered = nil

	if trimmed == "" {
		return ErrEmptyName
	}

	pubs, err := s.Source.FetchPublications(ctx, trimmed)
	if err != nil {
		return fmt.Errorf("fetching publications: %w", err)
	}
	if len(pubs) == 0 {
		return fmt.Errorf("%w %q", ErrNoMatch, trimmed)
	}

	s.all = s.Enricher.Enrich(ctx, pubs, trimmed)
	return nil
}

// Name returns the queried researcher name.
func (s *Session) Name() string { return s.name }

// Publications returns the fetched, enriched set.
func (s *Session) Publications() []types.Publication { return s.all }

// SetPublications replaces the fetched set, e.g. when loading a saved list
// file instead of querying the source.
func (s *Session) SetPublications(name string, pubs []types.Publication) {
	s.name = name
	s.all = pubs
	s.filtered = nil
}

// Apply recomputes the display sequence from the fetched set and returns
// it. The fetched set itself is left untouched.
func (s *Session) Apply(opts query.Options) []types.GroupedItem {
	s.filtered = query.Apply(s.all, opts)
	return s.filtered
}

// Filtered returns the display sequence from the last Apply.
func (s *Session) Filtered() []types.GroupedItem { return s.filtered }

// PageItems returns the items of the 1-based page and the matching
// pagination controls.
func (s *Session) PageItems(pageNum, pageSize int) ([]types.GroupedItem, page.Controls) {
	total := page.TotalPages(len(s.filtered), pageSize)
	return page.Slice(s.filtered, pageNum, pageSize), page.BuildControls(pageNum, total)
}

// ResolvePageAuthors resolves profile URLs for every distinct author
// appearing on the given page items. Lookups fan out concurrently and fall
// back independently, so the returned map always has an entry per name.
func (s *Session) ResolvePageAuthors(ctx context.Context, items []types.GroupedItem) map[string]string {
	var authorNames []string
	for _, it := range items {
		if it.IsHeader() {
			continue
		}
		authorNames = append(authorNames, it.Pub.Authors...)
	}
	return s.Resolver.ResolveAll(ctx, authorNames)
}
