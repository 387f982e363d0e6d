// Package requestspanel provides the moderation queue panel for
// user-submitted artist, venue, and event requests.
package requestspanel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/cursor"
)

// Store is the moderation queue persistence consumed by the panel.
type Store interface {
	PendingRequests(ctx context.Context) ([]platform.Request, error)
	ResolveRequest(ctx context.Context, id string, approve bool, note string) error
}

// LoadedMsg carries the pending request queue.
type LoadedMsg struct {
	Requests []platform.Request
	Err      error
}

// ResolvedMsg reports the outcome of one moderation decision.
type ResolvedMsg struct {
	ID       string
	Approved bool
	Err      error
}

// mode switches the panel between browsing and note entry.
type mode int

const (
	modeList mode = iota
	modeNote
)

// Model is the request moderation panel.
type Model struct {
	ui.Base
	store Store

	requests []platform.Request
	cursor   cursor.Cursor
	loading  bool
	errMsg   string
	status   string

	mode    mode
	approve bool // decision the note belongs to
	note    string
}

// New creates the panel.
func New(store Store) Model {
	return Model{
		store:   store,
		cursor:  cursor.New(ui.ScrollMargin),
		loading: true,
	}
}

// Load returns the command that fetches the pending queue.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return loadCmd(m.store)
}

// TakingNote reports whether the moderator is typing a note and the
// panel is consuming raw keystrokes.
func (m Model) TakingNote() bool {
	return m.mode == modeNote
}

// Requests returns the currently displayed queue.
func (m Model) Requests() []platform.Request {
	return m.requests
}

// Selected returns the request under the cursor.
func (m Model) Selected() (platform.Request, bool) {
	pos := m.cursor.Pos()
	if pos >= 0 && pos < len(m.requests) {
		return m.requests[pos], true
	}
	return platform.Request{}, false
}

func (m *Model) remove(id string) {
	for i, r := range m.requests {
		if r.ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			break
		}
	}
	m.cursor.ClampToBounds(len(m.requests))
}

func loadCmd(store Store) tea.Cmd {
	return func() tea.Msg {
		requests, err := store.PendingRequests(context.Background())
		return LoadedMsg{Requests: requests, Err: err}
	}
}

func resolveCmd(store Store, id string, approve bool, note string) tea.Cmd {
	return func() tea.Msg {
		err := store.ResolveRequest(context.Background(), id, approve, note)
		return ResolvedMsg{ID: id, Approved: approve, Err: err}
	}
}
