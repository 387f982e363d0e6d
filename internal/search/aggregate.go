package search

import (
	"context"
	"strings"
	"sync"
)

// Lookup carries the per-category query options passed to the store.
type Lookup struct {
	Limit         int
	IncludeDrafts bool // events: include draft/test status rows
	UpcomingOnly  bool // events: restrict to starts_at >= now
}

// Store is the entity store consumed by the aggregator. Each category
// lookup is an independent call: a bounded, case-insensitive substring
// match over the category's text columns, ordered by the store's
// default ranking.
type Store interface {
	SearchCategory(ctx context.Context, c Category, query string, opts Lookup) ([]Item, error)
}

// Profile bundles the tunables that differ between instances of the
// search surface (quick global search vs. the admin database browser).
type Profile struct {
	MinQueryLen  int
	Caps         map[Category]int
	UpcomingOnly bool
}

// DefaultCap is the per-category result cap when a profile doesn't
// override it.
const DefaultCap = 5

// Cap returns the result cap for a category.
func (p Profile) Cap(c Category) int {
	if n, ok := p.Caps[c]; ok && n > 0 {
		return n
	}
	return DefaultCap
}

// MinLen returns the minimum trimmed query length, defaulting to 2.
func (p Profile) MinLen() int {
	if p.MinQueryLen > 0 {
		return p.MinQueryLen
	}
	return 2
}

// Aggregator fans a query out to every searchable category and merges
// the per-category results into a ResultSet. Lookups run concurrently
// and fail independently: an errored category contributes an empty
// list, never aborts the search.
type Aggregator struct {
	store   Store
	profile Profile
	onError func(c Category, err error)
}

// NewAggregator creates an aggregator over the given store.
// onError receives per-category lookup failures and may be nil.
func NewAggregator(store Store, profile Profile, onError func(Category, error)) *Aggregator {
	return &Aggregator{store: store, profile: profile, onError: onError}
}

// Profile returns the aggregator's configuration.
func (a *Aggregator) Profile() Profile {
	return a.profile
}

// Search runs the fan-out for one query and returns the merged,
// visibility-filtered result set. A query below the minimum length
// returns an empty set without touching the store. Pure read: recent
// records are never mutated here.
func (a *Aggregator) Search(ctx context.Context, query string, privileged bool) ResultSet {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < a.profile.MinLen() {
		return NewResultSet()
	}

	// One slot per category so goroutines never share a map.
	results := make([][]Item, len(Categories))

	var wg sync.WaitGroup
	for i, c := range Categories {
		if c == CategoryUser && !privileged {
			continue
		}
		wg.Add(1)
		go func(slot int, c Category) {
			defer wg.Done()
			opts := Lookup{
				Limit:         a.profile.Cap(c),
				IncludeDrafts: privileged,
				UpcomingOnly:  a.profile.UpcomingOnly,
			}
			items, err := a.store.SearchCategory(ctx, c, query, opts)
			if err != nil {
				if a.onError != nil {
					a.onError(c, err)
				}
				return
			}
			if limit := a.profile.Cap(c); len(items) > limit {
				items = items[:limit]
			}
			results[slot] = items
		}(i, c)
	}
	wg.Wait()

	rs := NewResultSet()
	for i, c := range Categories {
		if len(results[i]) > 0 {
			rs[c] = results[i]
		}
	}
	return ApplyVisibility(rs, privileged)
}
