// Package feespanel provides the fee and checkout timer configuration
// panel. Values are edited inline field by field and only persisted on
// an explicit save after validation.
package feespanel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/ui"
)

// Store is the fee configuration persistence consumed by the panel.
type Store interface {
	GetFeeConfig(ctx context.Context) (platform.FeeConfig, error)
	SaveFeeConfig(ctx context.Context, cfg platform.FeeConfig) error
}

// LoadedMsg carries the stored fee configuration.
type LoadedMsg struct {
	Config platform.FeeConfig
	Err    error
}

// SavedMsg reports the outcome of a save.
type SavedMsg struct {
	Config platform.FeeConfig
	Err    error
}

// field identifies one editable line of the panel.
type field int

const (
	fieldPercent field = iota
	fieldFixed
	fieldTimer
	fieldCount
)

// Model is the fee configuration panel.
type Model struct {
	ui.Base
	store Store

	saved platform.FeeConfig // last persisted values
	draft platform.FeeConfig // values being edited

	field   field
	editing bool
	buffer  string

	loading bool
	status  string
	errMsg  string
}

// New creates the panel.
func New(store Store) Model {
	return Model{store: store, loading: true}
}

// Load returns the command that fetches the stored configuration.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.status = ""
	return loadCmd(m.store)
}

// Config returns the current draft values.
func (m Model) Config() platform.FeeConfig {
	return m.draft
}

// Editing reports whether a field edit is in progress and the panel
// is consuming raw keystrokes.
func (m Model) Editing() bool {
	return m.editing
}

// Dirty reports whether the draft differs from the stored values.
func (m Model) Dirty() bool {
	return m.draft != m.saved
}

func loadCmd(store Store) tea.Cmd {
	return func() tea.Msg {
		cfg, err := store.GetFeeConfig(context.Background())
		return LoadedMsg{Config: cfg, Err: err}
	}
}

func saveCmd(store Store, cfg platform.FeeConfig) tea.Cmd {
	return func() tea.Msg {
		err := store.SaveFeeConfig(context.Background(), cfg)
		return SavedMsg{Config: cfg, Err: err}
	}
}
