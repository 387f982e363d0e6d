package search

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// fakeStore returns canned results per category and records which
// categories were queried.
type fakeStore struct {
	mu      sync.Mutex
	results map[Category][]Item
	errs    map[Category]error
	queried []Category
}

func (s *fakeStore) SearchCategory(_ context.Context, c Category, _ string, opts Lookup) ([]Item, error) {
	s.mu.Lock()
	s.queried = append(s.queried, c)
	s.mu.Unlock()

	if err := s.errs[c]; err != nil {
		return nil, err
	}
	items := s.results[c]
	if len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

func (s *fakeStore) queriedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queried)
}

func makeItems(c Category, n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), Category: c, Name: c.String()}
	}
	return items
}

func TestSearchShortQuerySkipsStore(t *testing.T) {
	store := &fakeStore{results: map[Category][]Item{
		CategoryArtist: makeItems(CategoryArtist, 3),
	}}
	agg := NewAggregator(store, Profile{}, nil)

	for _, q := range []string{"", "a", " a ", "  "} {
		rs := agg.Search(context.Background(), q, true)
		if !rs.Empty() {
			t.Errorf("query %q: expected empty result set, got %d items", q, rs.Total())
		}
	}
	if n := store.queriedCount(); n != 0 {
		t.Errorf("expected no store calls for short queries, got %d", n)
	}
}

func TestSearchCapsPerCategory(t *testing.T) {
	store := &fakeStore{results: map[Category][]Item{
		CategoryArtist: makeItems(CategoryArtist, 50),
		CategoryVenue:  makeItems(CategoryVenue, 2),
	}}
	agg := NewAggregator(store, Profile{Caps: map[Category]int{CategoryArtist: 5}}, nil)

	rs := agg.Search(context.Background(), "jazz", true)
	if got := len(rs[CategoryArtist]); got != 5 {
		t.Errorf("artists: expected 5 results (cap), got %d", got)
	}
	if got := len(rs[CategoryVenue]); got != 2 {
		t.Errorf("venues: expected 2 results, got %d", got)
	}
}

func TestSearchPartialFailure(t *testing.T) {
	store := &fakeStore{
		results: map[Category][]Item{
			CategoryArtist: makeItems(CategoryArtist, 3),
			CategoryVenue:  makeItems(CategoryVenue, 1),
		},
		errs: map[Category]error{
			CategoryOrganization: errors.New("relation unavailable"),
		},
	}

	var failed []Category
	agg := NewAggregator(store, Profile{}, func(c Category, _ error) {
		failed = append(failed, c)
	})

	rs := agg.Search(context.Background(), "jazz", false)
	if got := len(rs[CategoryArtist]); got != 3 {
		t.Errorf("artists: expected 3, got %d", got)
	}
	if got := len(rs[CategoryVenue]); got != 1 {
		t.Errorf("venues: expected 1, got %d", got)
	}
	if len(rs[CategoryOrganization]) != 0 {
		t.Errorf("organizations: expected empty on lookup failure")
	}
	if len(rs[CategoryEvent]) != 0 {
		t.Errorf("events: expected empty")
	}
	if len(failed) != 1 || failed[0] != CategoryOrganization {
		t.Errorf("expected organization failure reported, got %v", failed)
	}
}

func TestSearchUserCategoryRequiresPrivilege(t *testing.T) {
	store := &fakeStore{results: map[Category][]Item{
		CategoryUser: makeItems(CategoryUser, 4),
	}}
	agg := NewAggregator(store, Profile{}, nil)

	rs := agg.Search(context.Background(), "smith", false)
	if len(rs[CategoryUser]) != 0 {
		t.Fatalf("non-privileged viewer must never see user results")
	}
	for _, c := range store.queried {
		if c == CategoryUser {
			t.Fatalf("user category must not be queried for non-privileged viewers")
		}
	}

	rs = agg.Search(context.Background(), "smith", true)
	if got := len(rs[CategoryUser]); got != 4 {
		t.Errorf("privileged viewer: expected 4 user results, got %d", got)
	}
}

func TestSearchDraftEventsFiltered(t *testing.T) {
	store := &fakeStore{results: map[Category][]Item{
		CategoryEvent: {
			{ID: "e1", Category: CategoryEvent, Name: "Jazz Night", Status: EventStatusPublished},
			{ID: "e2", Category: CategoryEvent, Name: "Jazz Fest", Status: EventStatusDraft},
			{ID: "e3", Category: CategoryEvent, Name: "Jazz Test", Status: EventStatusTest},
		},
	}}
	agg := NewAggregator(store, Profile{}, nil)

	rs := agg.Search(context.Background(), "jazz", false)
	if got := len(rs[CategoryEvent]); got != 1 {
		t.Fatalf("expected only the published event, got %d", got)
	}
	if rs[CategoryEvent][0].ID != "e1" {
		t.Errorf("expected e1, got %s", rs[CategoryEvent][0].ID)
	}

	rs = agg.Search(context.Background(), "jazz", true)
	if got := len(rs[CategoryEvent]); got != 3 {
		t.Errorf("privileged viewer: expected all 3 events, got %d", got)
	}
}

func TestSearchProfileOptionsReachStore(t *testing.T) {
	var got []Lookup
	var mu sync.Mutex
	store := storeFunc(func(_ context.Context, c Category, _ string, opts Lookup) ([]Item, error) {
		mu.Lock()
		got = append(got, opts)
		mu.Unlock()
		return nil, nil
	})

	agg := NewAggregator(store, Profile{UpcomingOnly: true, Caps: map[Category]int{CategoryEvent: 10}}, nil)
	agg.Search(context.Background(), "jazz", false)

	if len(got) == 0 {
		t.Fatal("store never called")
	}
	for _, opts := range got {
		if !opts.UpcomingOnly {
			t.Errorf("expected UpcomingOnly to propagate")
		}
		if opts.IncludeDrafts {
			t.Errorf("IncludeDrafts must be false for non-privileged viewers")
		}
	}
}

// storeFunc adapts a function to the Store interface.
type storeFunc func(ctx context.Context, c Category, q string, opts Lookup) ([]Item, error)

func (f storeFunc) SearchCategory(ctx context.Context, c Category, q string, opts Lookup) ([]Item, error) {
	return f(ctx, c, q, opts)
}
