// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors resolves author display names to profile URLs through a
// tiered match against the author-search endpoint, with a session-scoped
// cache in front.
package authors

import (
	"context"
	"sync"

	"github.com/pdiddy/publication-engine/internal/dblp"
	"github.com/pdiddy/publication-engine/internal/names"
)

// Resolver maps author display names to profile URLs. The cache is
// append-only and lives for the session; entries are never invalidated
// because the name-to-URL mapping is treated as stable for that long.
type Resolver struct {
	source *dblp.Client

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver returns a Resolver backed by the given source client.
func NewResolver(source *dblp.Client) *Resolver {
	return &Resolver{
		source: source,
		cache:  make(map[string]string),
	}
}

// ProfileURL resolves name to a profile URL. The strategy is tiered: cached
// value, then an exact match among author-search hits, then an initials
// match, then the constructed search-page URL. Endpoint failures and empty
// responses fall back to the search-page URL as well, so ProfileURL never
// fails. Every outcome is cached under the original name string.
//
// Two concurrent calls for the same uncached name may both query the
// endpoint; the cache deduplicates nothing beyond the initial check. That
// race is accepted: both calls resolve to the same value.
func (r *Resolver) ProfileURL(ctx context.Context, name string) string {
	r.mu.Lock()
	if cached, ok := r.cache[name]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	profileURL := r.lookup(ctx, name)

	r.mu.Lock()
	r.cache[name] = profileURL
	r.mu.Unlock()
	return profileURL
}

func (r *Resolver) lookup(ctx context.Context, name string) string {
	hits, err := r.source.SearchAuthors(ctx, name)
	if err != nil || len(hits) == 0 {
		return dblp.SearchPageURL(name)
	}

	for _, h := range hits {
		if names.MatchesExactly(h.Name, name) {
			return h.URL
		}
	}
	for _, h := range hits {
		if names.MatchesByInitials(h.Name, name) {
			return h.URL
		}
	}
	return dblp.SearchPageURL(name)
}

// ResolveAll resolves every distinct name concurrently and returns the
// name-to-URL map. Each resolution falls back independently; one failing
// lookup never blocks or cancels the others.
func (r *Resolver) ResolveAll(ctx context.Context, authorNames []string) map[string]string {
	distinct := make([]string, 0, len(authorNames))
	seen := make(map[string]bool, len(authorNames))
	for _, n := range authorNames {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		distinct = append(distinct, n)
	}

	type resolved struct {
		name string
		url  string
	}

	ch := make(chan resolved, len(distinct))
	var wg sync.WaitGroup
	for _, n := range distinct {
		wg.Add(1)
		go func(n string) {
			defer wg.Done()
			ch <- resolved{name: n, url: r.ProfileURL(ctx, n)}
		}(n)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	urls := make(map[string]string, len(distinct))
	for res := range ch {
		urls[res.name] = res.url
	}
	return urls
}
