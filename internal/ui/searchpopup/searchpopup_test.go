package searchpopup

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/recent"
	"github.com/lvasseur/boxoffice/internal/search"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	results map[string]search.ResultSet
	profile search.Profile
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ bool) search.ResultSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if rs, ok := f.results[query]; ok {
		return rs
	}
	return search.NewResultSet()
}

func (f *fakeSearcher) Profile() search.Profile {
	return f.profile
}

func (f *fakeSearcher) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type mapStorage struct {
	values map[string]string
}

func (s *mapStorage) GetValue(key string) (string, error) {
	return s.values[key], nil
}

func (s *mapStorage) SetValue(key, value string) error {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func resultSet(c search.Category, names ...string) search.ResultSet {
	rs := search.NewResultSet()
	for _, name := range names {
		rs[c] = append(rs[c], search.Item{
			ID:       name,
			Category: c,
			Name:     name,
		})
	}
	return rs
}

func newTestModel(f *fakeSearcher) (*Model, *recent.List) {
	recents := recent.NewList(&mapStorage{})
	m := New("quick", f, recents, true, time.Millisecond)
	m.Open(80, 24)
	return m, recents
}

func typeRunes(m *Model, s string) tea.Cmd {
	var last tea.Cmd
	for _, r := range s {
		_, last = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return last
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestShortQueryNeverSearches(t *testing.T) {
	f := &fakeSearcher{}
	m, _ := newTestModel(f)

	typeRunes(m, "a")
	m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})

	if got := f.calls(); len(got) != 0 {
		t.Errorf("store queried with short query: %v", got)
	}
	if !m.showingRecents() {
		t.Error("short query should stay in recent mode")
	}
}

func TestStaleDebounceIgnored(t *testing.T) {
	f := &fakeSearcher{}
	m, _ := newTestModel(f)

	typeRunes(m, "ab")
	stale := m.debounceVersion
	typeRunes(m, "c")

	if _, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: stale}); cmd != nil {
		t.Error("stale debounce should not trigger a search")
	}

	_, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	msg := runCmd(t, cmd)
	m.Update(msg)

	if got := f.calls(); len(got) != 1 || got[0] != "abc" {
		t.Errorf("expected a single search for %q, got %v", "abc", got)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	f := &fakeSearcher{
		results: map[string]search.ResultSet{
			"ab":  resultSet(search.CategoryArtist, "old"),
			"abc": resultSet(search.CategoryArtist, "new"),
		},
	}
	m, _ := newTestModel(f)

	typeRunes(m, "ab")
	_, cmd1 := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	slow := runCmd(t, cmd1)

	typeRunes(m, "c")
	_, cmd2 := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	fast := runCmd(t, cmd2)

	m.Update(fast)
	m.Update(slow)

	items := m.Results()[search.CategoryArtist]
	if len(items) != 1 || items[0].Name != "new" {
		t.Errorf("stale response overwrote fresh results: %v", items)
	}
}

func TestEnterEmitsSelection(t *testing.T) {
	f := &fakeSearcher{
		results: map[string]search.ResultSet{
			"gala": resultSet(search.CategoryEvent, "Spring Gala"),
		},
	}
	m, recents := newTestModel(f)

	typeRunes(m, "gala")
	_, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	m.Update(runCmd(t, cmd))

	_, selCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := runCmd(t, selCmd)
	sel, ok := msg.(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", msg)
	}
	if sel.Item.Name != "Spring Gala" {
		t.Errorf("wrong selection: %v", sel.Item)
	}
	if sel.FromRecent {
		t.Error("search result selection should not be flagged as recent")
	}

	// Recording the visit is the app's job when it consumes the
	// selection message.
	if recs := recents.All(); len(recs) != 0 {
		t.Errorf("selection must not touch the recent list: %v", recs)
	}
	if m.Query() != "" {
		t.Error("selection should reset the query")
	}
}

func TestCrossSurfaceResponseIgnored(t *testing.T) {
	rs := resultSet(search.CategoryArtist, "Stale Band")
	f := &fakeSearcher{results: map[string]search.ResultSet{"ja": rs}}
	m, _ := newTestModel(f)

	typeRunes(m, "ab")
	_, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	runCmd(t, cmd)

	// A response from another popup instance can carry the same
	// request id; the surface tag must reject it regardless.
	m.Update(ResultsMsg{Surface: "browser", RequestID: m.requestID, Results: rs})
	if m.Results() != nil {
		t.Errorf("accepted another surface's response: %v", m.Results())
	}

	m.Update(DebounceMsg{Surface: "browser", Version: m.debounceVersion})
	if got := f.calls(); len(got) != 1 {
		t.Errorf("another surface's debounce triggered a search: %v", got)
	}
}

func TestRemoveRecentRecord(t *testing.T) {
	f := &fakeSearcher{}
	recents := recent.NewList(&mapStorage{})
	recents.Record(recent.Record{ID: "v1", Category: search.CategoryVenue, Name: "Arena"})
	recents.Record(recent.Record{ID: "o1", Category: search.CategoryOrganization, Name: "Acme"})

	m := New("quick", f, recents, true, time.Millisecond)
	m.Open(80, 24)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(m.rows) != 1 || m.rows[0].record.ID != "v1" {
		t.Errorf("ctrl+x should drop the selected recent, rows = %v", m.rows)
	}
	if recs := recents.All(); len(recs) != 1 || recs[0].ID != "v1" {
		t.Errorf("removal not persisted: %v", recs)
	}

	// Outside recent mode the key is inert.
	typeRunes(m, "ab")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if recs := recents.All(); len(recs) != 1 {
		t.Errorf("ctrl+x during a query must not touch recents: %v", recs)
	}
}

func TestEscResetsAndCloses(t *testing.T) {
	f := &fakeSearcher{
		results: map[string]search.ResultSet{
			"ab": resultSet(search.CategoryVenue, "Arena"),
		},
	}
	m, _ := newTestModel(f)

	typeRunes(m, "ab")
	_, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	m.Update(runCmd(t, cmd))

	_, closeCmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := runCmd(t, closeCmd).(ClosedMsg); !ok {
		t.Fatal("esc should emit ClosedMsg")
	}
	if m.Query() != "" || m.Results() != nil {
		t.Error("esc should clear query and results")
	}
}

func TestEmptyQueryShowsRecents(t *testing.T) {
	f := &fakeSearcher{}
	recents := recent.NewList(&mapStorage{})
	recents.Record(recent.Record{ID: "v1", Category: search.CategoryVenue, Name: "Arena"})
	recents.Record(recent.Record{ID: "o1", Category: search.CategoryOrganization, Name: "Acme"})

	m := New("quick", f, recents, true, time.Millisecond)
	m.Open(80, 24)

	if len(m.rows) != 2 {
		t.Fatalf("expected 2 recent rows, got %d", len(m.rows))
	}
	if m.rows[0].record.Name != "Acme" {
		t.Errorf("recents should be most recent first, got %q", m.rows[0].record.Name)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := runCmd(t, cmd)
	sel, ok := msg.(SelectedMsg)
	if !ok || sel.Item.ID != "o1" {
		t.Errorf("expected selection of first recent, got %v", msg)
	}
}

func TestRowOrderFollowsCategoryOrder(t *testing.T) {
	rs := search.NewResultSet()
	rs[search.CategoryEvent] = []search.Item{{ID: "e1", Category: search.CategoryEvent, Name: "Gala"}}
	rs[search.CategoryOrganization] = []search.Item{{ID: "o1", Category: search.CategoryOrganization, Name: "Acme"}}

	f := &fakeSearcher{results: map[string]search.ResultSet{"ac": rs}}
	m, _ := newTestModel(f)

	typeRunes(m, "ac")
	_, cmd := m.Update(DebounceMsg{Surface: m.surface, Version: m.debounceVersion})
	m.Update(runCmd(t, cmd))

	if m.rows[0].kind != rowHeader || m.rows[0].category != search.CategoryOrganization {
		t.Errorf("organizations should lead the list, got %v", m.rows[0])
	}
	if m.selectableCount() != 2 {
		t.Errorf("expected 2 selectable rows, got %d", m.selectableCount())
	}
}
