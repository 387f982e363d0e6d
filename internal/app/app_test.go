package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/config"
	"github.com/lvasseur/boxoffice/internal/identity"
	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/recent"
	"github.com/lvasseur/boxoffice/internal/search"
	"github.com/lvasseur/boxoffice/internal/state"
	"github.com/lvasseur/boxoffice/internal/ui/rolespanel"
)

// fakeStore satisfies the full Store interface with canned data.
type fakeStore struct {
	items    map[search.Category][]search.Item
	flags    []platform.Flag
	fees     platform.FeeConfig
	admins   []platform.AdminUser
	requests []platform.Request
	revokes  []string
}

func (f *fakeStore) SearchCategory(_ context.Context, c search.Category, query string, _ search.Lookup) ([]search.Item, error) {
	var items []search.Item
	for _, it := range f.items[c] {
		if strings.Contains(strings.ToLower(it.Name), strings.ToLower(query)) {
			items = append(items, it)
		}
	}
	return items, nil
}

func (f *fakeStore) GetItem(_ context.Context, c search.Category, id string) (search.Item, error) {
	for _, it := range f.items[c] {
		if it.ID == id {
			return it, nil
		}
	}
	return search.Item{}, fmt.Errorf("get %s %s: %w", c, id, platform.ErrNotFound)
}

func (f *fakeStore) ListFlags(context.Context) ([]platform.Flag, error) { return f.flags, nil }
func (f *fakeStore) SetFlag(context.Context, string, bool, string) error {
	return nil
}

func (f *fakeStore) GetFeeConfig(context.Context) (platform.FeeConfig, error) { return f.fees, nil }
func (f *fakeStore) SaveFeeConfig(_ context.Context, cfg platform.FeeConfig) error {
	f.fees = cfg
	return nil
}

func (f *fakeStore) ListAdmins(context.Context) ([]platform.AdminUser, error) {
	return f.admins, nil
}
func (f *fakeStore) GrantRole(context.Context, string, identity.Role) error { return nil }
func (f *fakeStore) RevokeRole(_ context.Context, userID string, role identity.Role) error {
	f.revokes = append(f.revokes, userID+":"+string(role))
	return nil
}

func (f *fakeStore) PendingRequests(context.Context) ([]platform.Request, error) {
	return f.requests, nil
}
func (f *fakeStore) ResolveRequest(context.Context, string, bool, string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:   "postgres://test",
		OperatorEmail: "me@example.com",
		Search: config.SearchConfig{
			Quick:   config.ProfileConfig{DebounceMs: 1, MinQueryLen: 2},
			Browser: config.ProfileConfig{DebounceMs: 1, MinQueryLen: 2},
		},
	}
}

func adminViewer() identity.Viewer {
	return identity.Viewer{
		UserID: "u1",
		Email:  "me@example.com",
		Roles:  []identity.Role{identity.RoleAdmin},
	}
}

func newTestApp(t *testing.T, store *fakeStore, viewer identity.Viewer) (Model, *state.Mock) {
	t.Helper()
	mock := state.NewMock()
	m := New(testConfig(), mock, store, viewer)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(Model), mock
}

func fn(k string) tea.KeyMsg {
	switch k {
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case "f4":
		return tea.KeyMsg{Type: tea.KeyF4}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestPanelSwitchPersists(t *testing.T) {
	m, mock := newTestApp(t, &fakeStore{}, adminViewer())

	model, _ := m.Update(fn("f2"))
	m = model.(Model)

	if m.ActivePanel() != PanelFees {
		t.Errorf("active panel = %s, want fees", m.ActivePanel())
	}
	saved, _ := mock.GetPanel()
	if saved == nil || saved.ActivePanel != "fees" {
		t.Errorf("panel switch not persisted: %v", saved)
	}
}

func TestSavedPanelRestored(t *testing.T) {
	mock := state.NewMock()
	mock.SavePanel(state.PanelState{ActivePanel: "roles"})

	m := New(testConfig(), mock, &fakeStore{}, adminViewer())
	if m.ActivePanel() != PanelRoles {
		t.Errorf("active panel = %s, want roles", m.ActivePanel())
	}
}

func TestRequestsPanelGatedByRole(t *testing.T) {
	support := identity.Viewer{UserID: "u2", Email: "s@example.com", Roles: []identity.Role{identity.RoleSupport}}
	m, _ := newTestApp(t, &fakeStore{}, support)

	model, _ := m.Update(fn("f4"))
	m = model.(Model)
	if m.ActivePanel() == PanelRequests {
		t.Error("support role must not open the request queue")
	}

	moderator := identity.Viewer{UserID: "u3", Email: "m@example.com", Roles: []identity.Role{identity.RoleModerator}}
	m2, _ := newTestApp(t, &fakeStore{}, moderator)
	model, _ = m2.Update(fn("f4"))
	if model.(Model).ActivePanel() != PanelRequests {
		t.Error("moderator should open the request queue")
	}
}

// drainCmd executes a command tree and returns the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds queued commands back into the model until none remain.
func settle(m Model, cmds []tea.Cmd) Model {
	for len(cmds) > 0 {
		cmd := cmds[0]
		cmds = cmds[1:]
		for _, msg := range drainCmd(cmd) {
			model, next := m.Update(msg)
			m = model.(Model)
			if next != nil {
				cmds = append(cmds, next)
			}
		}
	}
	return m
}

func TestSearchSelectionSetsRouteAndRecents(t *testing.T) {
	store := &fakeStore{
		items: map[search.Category][]search.Item{
			search.CategoryVenue: {{ID: "v1", Category: search.CategoryVenue, Name: "Arena"}},
		},
	}
	m, mock := newTestApp(t, store, adminViewer())

	// Open search, type a query, and let the debounced lookup settle
	model, _ := m.Update(fn("/"))
	m = model.(Model)
	var cmds []tea.Cmd
	for _, r := range "are" {
		var cmd tea.Cmd
		model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = model.(Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m = settle(m, cmds)

	// Select the only result
	model, selCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)
	if selCmd == nil {
		t.Fatal("enter should emit a selection")
	}
	model, _ = m.Update(selCmd())
	m = model.(Model)

	if !strings.Contains(m.statusMsg, "/venues/v1") {
		t.Errorf("status = %q, want venue route", m.statusMsg)
	}
	if got, _ := mock.GetValue("last_route"); got != "/venues/v1" {
		t.Errorf("last_route = %q", got)
	}
	if recs := m.recents.All(); len(recs) != 1 || recs[0].ID != "v1" {
		t.Errorf("selection not recorded: %v", recs)
	}
}

// typeQuery feeds the query into the active popup and runs the
// debounce, returning the in-flight search response without
// delivering it.
func typeQuery(t *testing.T, m Model, query string) (Model, tea.Msg) {
	t.Helper()
	var cmds []tea.Cmd
	for _, r := range query {
		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = model.(Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	var response tea.Msg
	for _, msg := range drainCmd(tea.Batch(cmds...)) {
		model, next := m.Update(msg)
		m = model.(Model)
		if next != nil {
			response = next()
		}
	}
	if response == nil {
		t.Fatal("expected an in-flight search response")
	}
	return m, response
}

func TestBrowserIgnoresStaleQuickResponse(t *testing.T) {
	store := &fakeStore{
		items: map[search.Category][]search.Item{
			search.CategoryArtist: {{ID: "a1", Category: search.CategoryArtist, Name: "Jazz Apes"}},
			search.CategoryVenue:  {{ID: "v1", Category: search.CategoryVenue, Name: "Abbey Hall"}},
		},
	}
	m, _ := newTestApp(t, store, adminViewer())

	// Quick search dispatches a lookup whose response stays in flight
	model, _ := m.Update(fn("/"))
	m = model.(Model)
	m, held := typeQuery(t, m, "ja")

	// Close quick search and run a browser query to completion
	model, closeCmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(Model)
	model, _ = m.Update(closeCmd())
	m = model.(Model)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = model.(Model)
	m, fresh := typeQuery(t, m, "ab")
	model, _ = m.Update(fresh)
	m = model.(Model)

	// The held quick response arrives last; both lookups were each
	// surface's first, so the request ids collide
	model, _ = m.Update(held)
	m = model.(Model)

	res := m.browser.Results()
	if len(res[search.CategoryVenue]) != 1 || res[search.CategoryVenue][0].ID != "v1" {
		t.Fatalf("browser lost its own results: %v", res)
	}
	if len(res[search.CategoryArtist]) != 0 {
		t.Errorf("stale quick response leaked into the browser: %v", res[search.CategoryArtist])
	}
}

func TestRecentSelectionRefreshesSnapshot(t *testing.T) {
	store := &fakeStore{
		items: map[search.Category][]search.Item{
			search.CategoryVenue: {{ID: "v1", Category: search.CategoryVenue, Name: "Arena East"}},
		},
	}
	m, _ := newTestApp(t, store, adminViewer())
	m.recents.Record(recent.Record{ID: "v1", Category: search.CategoryVenue, Name: "Arena"})

	model, _ := m.Update(fn("/"))
	m = model.(Model)
	model, selCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)
	if selCmd == nil {
		t.Fatal("enter on a recent should emit a selection")
	}
	model, refreshCmd := m.Update(selCmd())
	m = model.(Model)
	if refreshCmd == nil {
		t.Fatal("a recent selection should re-read the entity")
	}
	model, _ = m.Update(refreshCmd())
	m = model.(Model)

	recs := m.recents.All()
	if len(recs) != 1 || recs[0].Name != "Arena East" {
		t.Errorf("recent snapshot not refreshed: %v", recs)
	}
}

func TestDeletedRecentDropsFromList(t *testing.T) {
	m, _ := newTestApp(t, &fakeStore{}, adminViewer())
	m.recents.Record(recent.Record{ID: "e9", Category: search.CategoryEvent, Name: "Gone Gala"})

	model, _ := m.Update(fn("/"))
	m = model.(Model)
	model, selCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)
	model, refreshCmd := m.Update(selCmd())
	m = model.(Model)
	model, _ = m.Update(refreshCmd())
	m = model.(Model)

	if recs := m.recents.All(); len(recs) != 0 {
		t.Errorf("deleted entity should leave the recent list: %v", recs)
	}
	if !strings.Contains(m.statusMsg, "no longer exists") {
		t.Errorf("status = %q, want deletion notice", m.statusMsg)
	}
}

func TestOwnAdminRevokeConfirmFlow(t *testing.T) {
	store := &fakeStore{
		admins: []platform.AdminUser{
			{UserID: "u1", Email: "me@example.com", Name: "Me", Roles: []identity.Role{identity.RoleAdmin}},
		},
	}
	m, _ := newTestApp(t, store, adminViewer())

	// Load admins, switch to roles panel
	model, _ := m.Update(rolespanel.LoadedMsg{Admins: store.admins})
	m = model.(Model)
	model, _ = m.Update(fn("f3"))
	m = model.(Model)

	// Toggling own admin role raises a confirmation
	model, cmd := m.Update(fn("a"))
	m = model.(Model)
	if cmd == nil {
		t.Fatal("expected confirmation request")
	}
	model, _ = m.Update(cmd())
	m = model.(Model)
	if m.popup != popupConfirm {
		t.Fatal("confirm popup should be active")
	}

	// Confirm with y: popup closes and the revoke runs
	model, cmd = m.Update(fn("y"))
	m = model.(Model)
	model, cmd2 := m.Update(cmd())
	m = model.(Model)
	if cmd2 == nil {
		t.Fatal("confirmed revoke should schedule a write")
	}
	m.Update(cmd2())

	if len(store.revokes) != 1 || store.revokes[0] != "u1:admin" {
		t.Errorf("revokes = %v", store.revokes)
	}
	if m.popup != popupNone {
		t.Error("confirm popup should be dismissed")
	}
}
