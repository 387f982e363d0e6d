// Package flagspanel provides the feature flag management panel.
// Toggles are optimistic: the list flips immediately and rolls back if
// the platform rejects the write.
package flagspanel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/ui"
	"github.com/lvasseur/boxoffice/internal/ui/cursor"
)

// Store is the flag persistence consumed by the panel.
type Store interface {
	ListFlags(ctx context.Context) ([]platform.Flag, error)
	SetFlag(ctx context.Context, key string, enabled bool, updatedBy string) error
}

// LoadedMsg carries the flag list (or the load failure).
type LoadedMsg struct {
	Flags []platform.Flag
	Err   error
}

// SavedMsg reports the outcome of one flag write.
type SavedMsg struct {
	Key     string
	Enabled bool
	Err     error
}

// Model is the feature flags panel.
type Model struct {
	ui.Base
	store     Store
	updatedBy string

	flags   []platform.Flag
	cursor  cursor.Cursor
	loading bool
	errMsg  string
}

// New creates the panel. updatedBy is recorded on every toggle.
func New(store Store, updatedBy string) Model {
	return Model{
		store:     store,
		updatedBy: updatedBy,
		cursor:    cursor.New(ui.ScrollMargin),
		loading:   true,
	}
}

// Load returns the command that fetches the flag list.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return loadCmd(m.store)
}

// Flags returns the currently displayed flags.
func (m Model) Flags() []platform.Flag {
	return m.flags
}

// Selected returns the flag under the cursor.
func (m Model) Selected() (platform.Flag, bool) {
	pos := m.cursor.Pos()
	if pos >= 0 && pos < len(m.flags) {
		return m.flags[pos], true
	}
	return platform.Flag{}, false
}

func (m *Model) setEnabled(key string, enabled bool) {
	for i := range m.flags {
		if m.flags[i].Key == key {
			m.flags[i].Enabled = enabled
			return
		}
	}
}

func loadCmd(store Store) tea.Cmd {
	return func() tea.Msg {
		flags, err := store.ListFlags(context.Background())
		return LoadedMsg{Flags: flags, Err: err}
	}
}

func saveCmd(store Store, key string, enabled bool, updatedBy string) tea.Cmd {
	return func() tea.Msg {
		err := store.SetFlag(context.Background(), key, enabled, updatedBy)
		return SavedMsg{Key: key, Enabled: enabled, Err: err}
	}
}
